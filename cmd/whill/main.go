package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/robotalks/whill.go/pkg/whill/env"
)

var configFile string

func main() {
	env.SetupFlags(flag.CommandLine)

	rootCmd := &cobra.Command{
		Use:   "whill",
		Short: "WHILL Model CR serial driver",
		Long: `whill drives a WHILL Model CR over its serial port.

Configuration comes from flags, WHILL_* environment variables and an
optional YAML file given by --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// flags are parsed by cobra, mark the go FlagSet parsed for glog.
			flag.CommandLine.Parse(nil)
			if configFile != "" {
				if err := env.Default().LoadFile(configFile); err != nil {
					return fmt.Errorf("load %s: %w", configFile, err)
				}
			}
			return env.Default().Validate()
		},
	}
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")

	rootCmd.AddCommand(
		newServeCmd(),
		newShellCmd(),
		newDriveCmd(),
		newMonitorCmd(),
		newProfileCmd(),
		newPowerCmd(),
	)

	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
