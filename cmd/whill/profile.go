package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/robotalks/whill.go/pkg/cli/sh"
	"github.com/robotalks/whill.go/pkg/whill"
	"github.com/robotalks/whill.go/pkg/whill/data"
	"github.com/robotalks/whill.go/pkg/whill/env"
)

const fetchTimeout = 3 * time.Second

var speedModeNames = []string{
	"Mode 1", "Mode 2", "Mode 3", "Mode 4", "Remote (mode 5)", "Model CR (mode 6)",
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Speed profile operations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show [MODE...]",
		Short: "Read speed profiles from the device",
		RunE: func(cmd *cobra.Command, args []string) error {
			modes, err := parseModes(args)
			if err != nil {
				return err
			}
			if len(modes) == 0 {
				for mode := 0; mode < data.SpeedModes; mode++ {
					modes = append(modes, mode)
				}
			}
			return withDevice(func(dev *whill.Device) error {
				for _, mode := range modes {
					p, err := fetch(dev, mode)
					if err != nil {
						return err
					}
					fmt.Println(sh.FormatProfile(mode, p))
				}
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "copy [SRC_MODE DST_MODE]",
		Short: "Copy a speed profile to another mode, asking for modes if omitted",
		Args:  copyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modes, err := parseModes(args)
			if err != nil {
				return err
			}
			if len(modes) < 2 {
				if modes, err = selectModes(); err != nil {
					return err
				}
			}
			src, dst := modes[0], modes[1]
			return withDevice(func(dev *whill.Device) error {
				p, err := fetch(dev, src)
				if err != nil {
					return err
				}
				fmt.Println("from", sh.FormatProfile(src, p))
				if _, err := dev.SetSpeedProfile(dst, p); err != nil {
					return err
				}
				// the device reports the profile back once written.
				if p, err = fetch(dev, dst); err != nil {
					return err
				}
				fmt.Println("to  ", sh.FormatProfile(dst, p))
				return nil
			})
		},
	})
	return cmd
}

// copyArgs accepts both modes or none, the latter asks for them.
func copyArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("both SRC_MODE and DST_MODE are required, or neither")
	}
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	_, err := parseModes(args)
	return err
}

func parseModes(args []string) ([]int, error) {
	modes := make([]int, 0, len(args))
	for _, arg := range args {
		mode, err := strconv.Atoi(arg)
		if err != nil || !data.ValidSpeedMode(mode) {
			return nil, fmt.Errorf("speed mode %q: %w", arg, data.ErrSpeedMode)
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func selectModes() ([]int, error) {
	var src, dst int
	options := make([]huh.Option[int], len(speedModeNames))
	for n, name := range speedModeNames {
		options[n] = huh.NewOption(name, n)
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Copy from").
			Options(options...).
			Value(&src),
		huh.NewSelect[int]().
			Title("Copy to").
			Options(options...).
			Validate(func(v int) error {
				if v == src {
					return fmt.Errorf("pick a different mode")
				}
				return nil
			}).
			Value(&dst),
	))
	if err := form.Run(); err != nil {
		return nil, err
	}
	return []int{src, dst}, nil
}

func fetch(dev *whill.Device, mode int) (data.SpeedProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	p, err := dev.FetchSpeedProfile(ctx, mode)
	if err != nil {
		return p, fmt.Errorf("read profile of mode %d: %w", mode, err)
	}
	return p, nil
}

func withDevice(fn func(*whill.Device) error) error {
	conf := *env.Default()
	conf.Stream.Enabled = false
	conf.MQTTBrokerURL, conf.WebSocketAddr = "", ""
	e, err := conf.NewEnv()
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(e.Device)
}
