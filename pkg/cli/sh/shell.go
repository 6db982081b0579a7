// Package sh provides an interactive shell to operate a device.
package sh

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/whill.go/pkg/bridge"
	fx "github.com/robotalks/whill.go/pkg/framework"
	"github.com/robotalks/whill.go/pkg/msgs"
	"github.com/robotalks/whill.go/pkg/whill"
	"github.com/robotalks/whill.go/pkg/whill/data"
	"github.com/robotalks/whill.go/pkg/whill/env"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell *ishell.Shell
	Env   *env.Env
}

const shellKey = "$shell"

// New creates a new shell over an opened device.
func New(e *env.Env) *Shell {
	s := &Shell{
		Interactive: true,
		Shell:       ishell.New(),
		Env:         e,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(fmt.Sprintf("whill[%s] > ", e.Config.Serial.Name))
	for _, cmd := range Commands() {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Device returns the device operated by the shell.
func (s *Shell) Device() *whill.Device {
	return s.Env.Device
}

// Print prints v as JSON if OutputJSON is set, otherwise formatted by text.
func (s *Shell) Print(c *ishell.Context, v interface{}, text func() string) {
	if s.OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(text())
}

// Execute runs a command message on the device and prints the result.
func (s *Shell) Execute(c *ishell.Context, msg msgs.Message) error {
	err := bridge.Execute(s.Device(), msg)
	if err != nil {
		c.Err(err)
		return err
	}
	s.Print(c, bridge.ResultOf(msg, nil), func() string { return "OK" })
	return nil
}

// Run runs the shell while polling the device in background.
func (s *Shell) Run(args ...string) error {
	runner := fx.NewRunner()
	runner.Go(s.Env.Runners...)
	defer func() {
		runner.Stop()
		runner.Wait()
	}()

	if len(args) > 0 {
		return s.Shell.Process(args...)
	}
	if !s.Interactive {
		return fmt.Errorf("command expected")
	}
	s.Shell.Run()
	return nil
}

// Main is a helper to run the shell over a config.
func Main(conf *env.Config, outputJSON bool, args ...string) {
	e := conf.MustNewEnv()
	defer e.Close()
	s := New(e)
	s.OutputJSON = outputJSON
	s.Interactive = len(args) == 0
	if err := s.Run(args...); err != nil {
		log.Fatalln(err)
	}
}

func execCmd(name string, parse Parser) *ishell.Cmd {
	return &ishell.Cmd{
		Name: name,
		Help: helps[name],
		Func: func(c *ishell.Context) {
			msg, err := parse(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			ShellFrom(c).Execute(c, msg)
		},
	}
}

// Commands returns all shell commands.
func Commands() []*ishell.Cmd {
	names := make([]string, 0, len(Parsers))
	for name := range Parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	cmds := []*ishell.Cmd{&StatusCmd, &ProfilesCmd, &HoldStatusCmd, &ProfileCopyCmd}
	for _, name := range names {
		cmds = append(cmds, execCmd(name, Parsers[name]))
	}
	return cmds
}

// FormatStatus renders the status dataset for display.
func FormatStatus(t data.Telemetry) string {
	return fmt.Sprintf("joy=%d,%d battery=%d%% %.0fmA right=%.3frad %.3fkm/h left=%.3frad %.3fkm/h power=%v mode=%d error=%d dt=%dms",
		t.Joy.Front, t.Joy.Side,
		t.Battery.Level, t.Battery.Current,
		t.RightMotor.Angle, t.RightMotor.Speed,
		t.LeftMotor.Angle, t.LeftMotor.Speed,
		t.PowerStatus, t.SpeedModeIndicator, t.ErrorCode, t.TimeDiffMs)
}

// FormatProfile renders a speed profile for display.
func FormatProfile(mode int, p data.SpeedProfile) string {
	return fmt.Sprintf("%d: forward=%d/%d/%d reverse=%d/%d/%d turn=%d/%d/%d", mode,
		p.ForwardSpeed, p.ForwardAcceleration, p.ForwardDeceleration,
		p.ReverseSpeed, p.ReverseAcceleration, p.ReverseDeceleration,
		p.TurnSpeed, p.TurnAcceleration, p.TurnDeceleration)
}

// CopyProfile writes the cached profile of mode src into mode dst.
func CopyProfile(dev *whill.Device, src, dst int) error {
	p, err := dev.SpeedProfile(src)
	if err != nil {
		return fmt.Errorf("source mode %d: %w", src, err)
	}
	if _, err := dev.SetSpeedProfile(dst, p); err != nil {
		return fmt.Errorf("target mode %d: %w", dst, err)
	}
	return nil
}

var (
	// StatusCmd prints the latest status dataset.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"s"},
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			t := s.Device().Telemetry()
			s.Print(c, msgs.StatusFrom(t), func() string { return FormatStatus(t) })
		},
	}

	// ProfilesCmd prints cached speed profiles.
	ProfilesCmd = ishell.Cmd{
		Name: "profiles",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			t := s.Device().Telemetry()
			s.Print(c, msgs.SpeedProfilesFrom(t), func() string {
				var out string
				for mode, p := range t.SpeedProfiles {
					out += FormatProfile(mode, p) + "\n"
				}
				return out
			})
		},
	}

	// HoldStatusCmd prints the current or last hold session.
	HoldStatusCmd = ishell.Cmd{
		Name: "hold",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			st := s.Device().Holder().Status()
			s.Print(c, st, func() string {
				return fmt.Sprintf("%s %s %d,%d %s/%s", st.State, st.Control, st.Front, st.Side, st.Elapsed, st.Timeout)
			})
		},
	}

	// ProfileCopyCmd copies a speed profile to another mode.
	ProfileCopyCmd = ishell.Cmd{
		Name: "profile.copy",
		Help: "SRC_MODE DST_MODE",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("expect SRC_MODE DST_MODE"))
				return
			}
			src, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			dst, err := strconv.Atoi(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			if err := CopyProfile(ShellFrom(c).Device(), src, dst); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		},
	}
)
