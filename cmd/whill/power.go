package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robotalks/whill.go/pkg/whill"
)

func newPowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "power on|off",
		Short:     "Turn the device on or off",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(dev *whill.Device) error {
				var err error
				if args[0] == "on" {
					_, err = dev.SendPowerOn()
				} else {
					_, err = dev.SendPowerOff()
				}
				if err == nil {
					fmt.Println("OK")
				}
				return err
			})
		},
	}
}
