package main

import (
	"github.com/spf13/cobra"

	fx "github.com/robotalks/whill.go/pkg/framework"
	"github.com/robotalks/whill.go/pkg/whill/env"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Stream telemetry and accept commands over MQTT/WebSocket",
		Example: `  whill serve --port /dev/ttyUSB0 --mqtt mqtt://localhost:1883/whill/
  whill serve --ws :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Default().NewEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.StartStream(); err != nil {
				return err
			}
			return fx.NewRunner().HandleSignals().Go(e.Runners...).Wait()
		},
	}
}
