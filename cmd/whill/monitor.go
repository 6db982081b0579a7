package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robotalks/whill.go/pkg/cli/sh"
	fx "github.com/robotalks/whill.go/pkg/framework"
	"github.com/robotalks/whill.go/pkg/msgs"
	"github.com/robotalks/whill.go/pkg/whill"
	"github.com/robotalks/whill.go/pkg/whill/env"
)

func newMonitorCmd() *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Print telemetry as it arrives",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Default().NewEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			e.Handle(whill.HandleEventFunc(func(dev *whill.Device, kind whill.EventKind) {
				printEvent(dev, kind, outputJSON)
			}))
			if err := e.StartStream(); err != nil {
				return err
			}
			return fx.NewRunner().HandleSignals().Go(e.Runners...).Wait()
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Print output in JSON")
	return cmd
}

func printEvent(dev *whill.Device, kind whill.EventKind, outputJSON bool) {
	t := dev.Telemetry()
	var msg msgs.Message
	var text string
	switch kind {
	case whill.EventDataSet1:
		msg, text = msgs.StatusFrom(t), sh.FormatStatus(t)
	case whill.EventDataSet0:
		msg = msgs.SpeedProfilesFrom(t)
		text = sh.FormatProfile(t.LatestSpeedMode, t.SpeedProfiles[t.LatestSpeedMode])
	case whill.EventPowerOn:
		msg, text = &msgs.PowerOn{}, "power on"
	default:
		return
	}
	if !outputJSON {
		fmt.Println(text)
		return
	}
	out, err := json.Marshal(struct {
		Type string       `json:"type"`
		Msg  msgs.Message `json:"msg"`
	}{msg.MessageName(), msg})
	if err != nil {
		return
	}
	fmt.Println(string(out))
}
