// Package bridge executes remote commands on a device.
package bridge

import (
	"errors"
	"fmt"
	"time"

	"github.com/robotalks/whill.go/pkg/msgs"
	"github.com/robotalks/whill.go/pkg/whill"
	"github.com/robotalks/whill.go/pkg/whill/data"
)

// Accepted ranges of remote commands.
const (
	JoystickMin       = -100
	JoystickMax       = 100
	VelocityFrontMin  = -500
	VelocityFrontMax  = 1500
	VelocitySideMin   = -750
	VelocitySideMax   = 750
	StreamIntervalMin = 10
	StreamIntervalMax = 0xffff
	LowBatteryMin     = 1
	LowBatteryMax     = 90
)

// ErrOutOfRange indicates a command argument is outside the accepted range.
var ErrOutOfRange = errors.New("out of range")

// Commander is the part of whill.Device used by bridges.
type Commander interface {
	SendJoystick(front, side int) (int, error)
	SendVelocity(front, side int16) (int, error)
	SendStop() (int, error)
	ReleaseJoystick() (int, error)
	SetPower(on bool) (int, error)
	SendPowerOn() (int, error)
	StartStream(intervalMs uint16, dataset data.DataSet, speedMode int) (int, error)
	StopStream() (int, error)
	SetSpeedProfile(speedMode int, p data.SpeedProfile) (int, error)
	SetBatterySaving(lowLevel int, buzzer bool) (int, error)
	SetBatteryVoltageOut(on bool) (int, error)
	HoldJoy(front, side int, timeout time.Duration) error
	HoldVelocity(front, side int16, timeout time.Duration) error
	Unhold()
	WaitHold()
}

var _ Commander = (*whill.Device)(nil)

func checkRange(name string, v, min, max int32) error {
	if v < min || v > max {
		return fmt.Errorf("%s %d not in [%d, %d]: %w", name, v, min, max, ErrOutOfRange)
	}
	return nil
}

func checkTimeout(ms int64) error {
	if ms < 0 {
		return fmt.Errorf("timeout %dms negative: %w", ms, ErrOutOfRange)
	}
	return nil
}

// Validate checks the arguments of a command message without executing it.
func Validate(msg msgs.Message) error {
	switch m := msg.(type) {
	case *msgs.Joystick:
		return validateJoystick(m.Front, m.Side, m.TimeoutMs)
	case *msgs.Velocity:
		return validateVelocity(m.Front, m.Side, m.TimeoutMs)
	case *msgs.Hold:
		switch m.Control {
		case whill.ControlJoystick.String():
			return validateJoystick(m.Front, m.Side, m.TimeoutMs)
		case whill.ControlVelocity.String():
			return validateVelocity(m.Front, m.Side, m.TimeoutMs)
		}
		return fmt.Errorf("hold %q: %w", m.Control, whill.ErrInvalidControl)
	case *msgs.StreamStart:
		if err := checkRange("interval_ms", m.IntervalMs, StreamIntervalMin, StreamIntervalMax); err != nil {
			return err
		}
		if err := checkRange("data_set", m.DataSet, int32(data.DataSetProfile), int32(data.DataSetStatus)); err != nil {
			return err
		}
		return checkRange("speed_mode", m.SpeedMode, 0, data.SpeedModes-1)
	case *msgs.SetSpeedProfile:
		if m.Profile == nil {
			return fmt.Errorf("profile missing")
		}
		if err := checkRange("speed_mode", m.Profile.SpeedMode, 0, data.SpeedModes-1); err != nil {
			return err
		}
		_, err := m.Profile.ToData()
		return err
	case *msgs.BatterySaving:
		return checkRange("low_level", m.LowLevel, LowBatteryMin, LowBatteryMax)
	case *msgs.Stop, *msgs.Release, *msgs.Unhold, *msgs.Power,
		*msgs.StreamStop, *msgs.BatteryVoltageOut:
		return nil
	}
	return fmt.Errorf("%s: %w", msg.MessageName(), msgs.ErrNotCommand)
}

func validateJoystick(front, side int32, timeoutMs int64) error {
	if err := checkRange("front", front, JoystickMin, JoystickMax); err != nil {
		return err
	}
	if err := checkRange("side", side, JoystickMin, JoystickMax); err != nil {
		return err
	}
	return checkTimeout(timeoutMs)
}

func validateVelocity(front, side int32, timeoutMs int64) error {
	if err := checkRange("front", front, VelocityFrontMin, VelocityFrontMax); err != nil {
		return err
	}
	if err := checkRange("side", side, VelocitySideMin, VelocitySideMax); err != nil {
		return err
	}
	return checkTimeout(timeoutMs)
}

// Execute validates a command message and runs it on dev.
// A zero timeout on joystick and velocity commands sends once,
// otherwise the command is held.
func Execute(dev Commander, msg msgs.Message) error {
	if err := Validate(msg); err != nil {
		return err
	}
	var err error
	switch m := msg.(type) {
	case *msgs.Joystick:
		err = joystick(dev, m.Front, m.Side, m.TimeoutMs)
	case *msgs.Velocity:
		err = velocity(dev, m.Front, m.Side, m.TimeoutMs)
	case *msgs.Hold:
		if m.Control == whill.ControlJoystick.String() {
			err = joystick(dev, m.Front, m.Side, m.TimeoutMs)
		} else {
			err = velocity(dev, m.Front, m.Side, m.TimeoutMs)
		}
	case *msgs.Stop:
		unhold(dev)
		_, err = dev.SendStop()
	case *msgs.Release:
		unhold(dev)
		_, err = dev.ReleaseJoystick()
	case *msgs.Unhold:
		dev.Unhold()
	case *msgs.Power:
		if m.On {
			_, err = dev.SendPowerOn()
		} else {
			_, err = dev.SetPower(false)
		}
	case *msgs.StreamStart:
		_, err = dev.StartStream(uint16(m.IntervalMs), data.DataSet(m.DataSet), int(m.SpeedMode))
	case *msgs.StreamStop:
		_, err = dev.StopStream()
	case *msgs.SetSpeedProfile:
		p, _ := m.Profile.ToData()
		_, err = dev.SetSpeedProfile(int(m.Profile.SpeedMode), p)
	case *msgs.BatterySaving:
		_, err = dev.SetBatterySaving(int(m.LowLevel), m.Buzzer)
	case *msgs.BatteryVoltageOut:
		_, err = dev.SetBatteryVoltageOut(m.On)
	}
	return err
}

func unhold(dev Commander) {
	dev.Unhold()
	dev.WaitHold()
}

func joystick(dev Commander, front, side int32, timeoutMs int64) error {
	if timeoutMs == 0 {
		_, err := dev.SendJoystick(int(front), int(side))
		return err
	}
	return dev.HoldJoy(int(front), int(side), time.Duration(timeoutMs)*time.Millisecond)
}

func velocity(dev Commander, front, side int32, timeoutMs int64) error {
	if timeoutMs == 0 {
		_, err := dev.SendVelocity(int16(front), int16(side))
		return err
	}
	return dev.HoldVelocity(int16(front), int16(side), time.Duration(timeoutMs)*time.Millisecond)
}

// ResultOf creates the reply to a command.
func ResultOf(msg msgs.Message, err error) *msgs.Result {
	r := &msgs.Result{Command: msg.MessageName(), Ok: err == nil}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
