package sh

import (
	"fmt"
	"strconv"
	"time"

	"github.com/robotalks/whill.go/pkg/msgs"
	"github.com/robotalks/whill.go/pkg/whill"
)

// Parser builds a command message from shell arguments.
type Parser func(args []string) (msgs.Message, error)

func parseInts(args []string, names ...string) ([]int32, error) {
	if len(args) < len(names) {
		return nil, fmt.Errorf("expect %v", names)
	}
	vals := make([]int32, len(names))
	for n, name := range names {
		v, err := strconv.ParseInt(args[n], 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		vals[n] = int32(v)
	}
	return vals, nil
}

func parseOnOff(arg string) (bool, error) {
	switch arg {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("expect on or off, got %q", arg)
}

func parseTimeoutMs(arg string) (int64, error) {
	d, err := time.ParseDuration(arg)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	return d.Milliseconds(), nil
}

func parseMotion(args []string) (front, side int32, timeoutMs int64, err error) {
	vals, err := parseInts(args, "FRONT", "SIDE")
	if err != nil {
		return 0, 0, 0, err
	}
	if len(args) > 2 {
		if timeoutMs, err = parseTimeoutMs(args[2]); err != nil {
			return 0, 0, 0, err
		}
	}
	return vals[0], vals[1], timeoutMs, nil
}

func parseHold(ctl whill.ControlType) Parser {
	return func(args []string) (msgs.Message, error) {
		if len(args) < 3 {
			return nil, fmt.Errorf("expect FRONT SIDE TIMEOUT")
		}
		front, side, timeoutMs, err := parseMotion(args)
		if err != nil {
			return nil, err
		}
		return &msgs.Hold{Control: ctl.String(), Front: front, Side: side, TimeoutMs: timeoutMs}, nil
	}
}

func noArgs(msg msgs.Message) Parser {
	return func([]string) (msgs.Message, error) {
		return msg.NewMessage(), nil
	}
}

func parseOnOffMsg(fn func(bool) msgs.Message) Parser {
	return func(args []string) (msgs.Message, error) {
		if len(args) < 1 {
			return nil, fmt.Errorf("expect on or off")
		}
		on, err := parseOnOff(args[0])
		if err != nil {
			return nil, err
		}
		return fn(on), nil
	}
}

// Parsers are the device commands by shell command name.
var Parsers = map[string]Parser{
	"joy": func(args []string) (msgs.Message, error) {
		front, side, timeoutMs, err := parseMotion(args)
		return &msgs.Joystick{Front: front, Side: side, TimeoutMs: timeoutMs}, err
	},
	"vel": func(args []string) (msgs.Message, error) {
		front, side, timeoutMs, err := parseMotion(args)
		return &msgs.Velocity{Front: front, Side: side, TimeoutMs: timeoutMs}, err
	},
	"hold.joy": parseHold(whill.ControlJoystick),
	"hold.vel": parseHold(whill.ControlVelocity),
	"stop":     noArgs(&msgs.Stop{}),
	"release":  noArgs(&msgs.Release{}),
	"unhold":   noArgs(&msgs.Unhold{}),
	"power": parseOnOffMsg(func(on bool) msgs.Message {
		return &msgs.Power{On: on}
	}),
	"battery.vout": parseOnOffMsg(func(on bool) msgs.Message {
		return &msgs.BatteryVoltageOut{On: on}
	}),
	"battery.saving": func(args []string) (msgs.Message, error) {
		vals, err := parseInts(args, "LEVEL")
		if err != nil {
			return nil, err
		}
		m := &msgs.BatterySaving{LowLevel: vals[0], Buzzer: true}
		if len(args) > 1 {
			if m.Buzzer, err = parseOnOff(args[1]); err != nil {
				return nil, err
			}
		}
		return m, nil
	},
	"stream.start": func(args []string) (msgs.Message, error) {
		vals, err := parseInts(args, "INTERVAL_MS", "DATASET")
		if err != nil {
			return nil, err
		}
		m := &msgs.StreamStart{IntervalMs: vals[0], DataSet: vals[1]}
		if len(args) > 2 {
			mode, err := parseInts(args[2:], "SPEED_MODE")
			if err != nil {
				return nil, err
			}
			m.SpeedMode = mode[0]
		}
		return m, nil
	},
	"stream.stop": noArgs(&msgs.StreamStop{}),
	"profile.set": func(args []string) (msgs.Message, error) {
		vals, err := parseInts(args, "MODE",
			"FWD_SPEED", "FWD_ACCEL", "FWD_DECEL",
			"REV_SPEED", "REV_ACCEL", "REV_DECEL",
			"TURN_SPEED", "TURN_ACCEL", "TURN_DECEL")
		if err != nil {
			return nil, err
		}
		f := make([]uint32, 9)
		for n, v := range vals[1:] {
			if v < 0 {
				return nil, fmt.Errorf("profile field %d negative", n)
			}
			f[n] = uint32(v)
		}
		return &msgs.SetSpeedProfile{Profile: &msgs.SpeedProfile{
			SpeedMode:           vals[0],
			ForwardSpeed:        f[0],
			ForwardAcceleration: f[1],
			ForwardDeceleration: f[2],
			ReverseSpeed:        f[3],
			ReverseAcceleration: f[4],
			ReverseDeceleration: f[5],
			TurnSpeed:           f[6],
			TurnAcceleration:    f[7],
			TurnDeceleration:    f[8],
		}}, nil
	},
}

// Help texts of Parsers.
var helps = map[string]string{
	"joy":            "FRONT SIDE [TIMEOUT]",
	"vel":            "FRONT SIDE [TIMEOUT]",
	"hold.joy":       "FRONT SIDE TIMEOUT",
	"hold.vel":       "FRONT SIDE TIMEOUT",
	"power":          "on|off",
	"battery.vout":   "on|off",
	"battery.saving": "LEVEL [on|off]",
	"stream.start":   "INTERVAL_MS DATASET [SPEED_MODE]",
	"profile.set":    "MODE FWD_SPEED FWD_ACCEL FWD_DECEL REV_SPEED REV_ACCEL REV_DECEL TURN_SPEED TURN_ACCEL TURN_DECEL",
}
