package main

import (
	"github.com/spf13/cobra"

	"github.com/robotalks/whill.go/pkg/cli/drive"
	fx "github.com/robotalks/whill.go/pkg/framework"
	"github.com/robotalks/whill.go/pkg/whill/env"
)

func newDriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drive",
		Short: "Drive with the keyboard",
		Long: `Drive with arrow keys. u/d changes speed by 10%, j and v switch between
joystick and velocity commands, q powers off and quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Default().NewEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.StartStream(); err != nil {
				return err
			}
			runner := fx.NewRunner().Go(e.Runners...)
			defer func() {
				runner.Stop()
				runner.Wait()
			}()
			return drive.Run(e.Device)
		},
	}
}
