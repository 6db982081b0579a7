package main

import (
	"github.com/spf13/cobra"

	"github.com/robotalks/whill.go/pkg/cli/sh"
	"github.com/robotalks/whill.go/pkg/whill/env"
)

func newShellCmd() *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:   "shell [COMMAND ARGS...]",
		Short: "Interactive shell, or run a single shell command",
		Example: `  whill shell
  whill shell joy 30 0 2s
  whill shell --json status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.Default().NewEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.StartStream(); err != nil {
				return err
			}
			s := sh.New(e)
			s.OutputJSON = outputJSON
			s.Interactive = len(args) == 0
			return s.Run(args...)
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Print output in JSON")
	return cmd
}
