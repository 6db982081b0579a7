package bridge

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/whill.go/pkg/msgs"
	"github.com/robotalks/whill.go/pkg/whill/data"
)

type recorder struct {
	calls []string
	err   error
}

func (r *recorder) record(format string, args ...interface{}) (int, error) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
	return 0, r.err
}

func (r *recorder) SendJoystick(front, side int) (int, error) {
	return r.record("joy %d %d", front, side)
}

func (r *recorder) SendVelocity(front, side int16) (int, error) {
	return r.record("vel %d %d", front, side)
}

func (r *recorder) SendStop() (int, error)        { return r.record("stop") }
func (r *recorder) ReleaseJoystick() (int, error) { return r.record("release") }
func (r *recorder) SetPower(on bool) (int, error) { return r.record("power %v", on) }
func (r *recorder) SendPowerOn() (int, error)     { return r.record("power on") }
func (r *recorder) StopStream() (int, error)      { return r.record("stream stop") }

func (r *recorder) StartStream(intervalMs uint16, dataset data.DataSet, speedMode int) (int, error) {
	return r.record("stream %d %d %d", intervalMs, dataset, speedMode)
}

func (r *recorder) SetSpeedProfile(speedMode int, p data.SpeedProfile) (int, error) {
	return r.record("profile %d %v", speedMode, p.Fields())
}

func (r *recorder) SetBatterySaving(lowLevel int, buzzer bool) (int, error) {
	return r.record("saving %d %v", lowLevel, buzzer)
}

func (r *recorder) SetBatteryVoltageOut(on bool) (int, error) {
	return r.record("vout %v", on)
}

func (r *recorder) HoldJoy(front, side int, timeout time.Duration) error {
	_, err := r.record("hold joy %d %d %s", front, side, timeout)
	return err
}

func (r *recorder) HoldVelocity(front, side int16, timeout time.Duration) error {
	_, err := r.record("hold vel %d %d %s", front, side, timeout)
	return err
}

func (r *recorder) Unhold()   { r.record("unhold") }
func (r *recorder) WaitHold() { r.record("wait") }

func TestExecute(t *testing.T) {
	tests := []struct {
		msg   msgs.Message
		calls []string
	}{
		{&msgs.Joystick{Front: 100, Side: -100}, []string{"joy 100 -100"}},
		{&msgs.Joystick{Front: 10, TimeoutMs: 1500}, []string{"hold joy 10 0 1.5s"}},
		{&msgs.Velocity{Front: 1500, Side: -750}, []string{"vel 1500 -750"}},
		{&msgs.Velocity{Front: -500, TimeoutMs: 200}, []string{"hold vel -500 0 200ms"}},
		{&msgs.Hold{Control: "velocity", Front: 300, TimeoutMs: 1000}, []string{"hold vel 300 0 1s"}},
		{&msgs.Hold{Control: "joystick", Side: 5}, []string{"joy 0 5"}},
		{&msgs.Stop{}, []string{"unhold", "wait", "stop"}},
		{&msgs.Release{}, []string{"unhold", "wait", "release"}},
		{&msgs.Unhold{}, []string{"unhold"}},
		{&msgs.Power{On: true}, []string{"power on"}},
		{&msgs.Power{}, []string{"power false"}},
		{&msgs.StreamStart{IntervalMs: 10, DataSet: 1, SpeedMode: 5}, []string{"stream 10 1 5"}},
		{&msgs.StreamStop{}, []string{"stream stop"}},
		{&msgs.SetSpeedProfile{Profile: &msgs.SpeedProfile{SpeedMode: 2, ForwardSpeed: 60, TurnDeceleration: 56}},
			[]string{"profile 2 [60 0 0 0 0 0 0 0 56]"}},
		{&msgs.BatterySaving{LowLevel: 19, Buzzer: true}, []string{"saving 19 true"}},
		{&msgs.BatteryVoltageOut{On: true}, []string{"vout true"}},
	}
	for _, tc := range tests {
		t.Run(tc.msg.MessageName(), func(t *testing.T) {
			r := &recorder{}
			require.NoError(t, Execute(r, tc.msg))
			require.Equal(t, tc.calls, r.calls)
		})
	}
}

func TestExecuteRejects(t *testing.T) {
	tests := []msgs.Message{
		&msgs.Joystick{Front: 101},
		&msgs.Joystick{Side: -101},
		&msgs.Joystick{TimeoutMs: -1},
		&msgs.Velocity{Front: 1501},
		&msgs.Velocity{Front: -501},
		&msgs.Velocity{Side: 751},
		&msgs.StreamStart{IntervalMs: 9, DataSet: 1},
		&msgs.StreamStart{IntervalMs: 100, DataSet: 2},
		&msgs.StreamStart{IntervalMs: 100, SpeedMode: 6},
		&msgs.StreamStart{IntervalMs: 70000},
		&msgs.SetSpeedProfile{Profile: &msgs.SpeedProfile{SpeedMode: 6}},
		&msgs.BatterySaving{LowLevel: 0},
		&msgs.BatterySaving{LowLevel: 91},
	}
	for _, msg := range tests {
		t.Run(msg.String(), func(t *testing.T) {
			r := &recorder{}
			require.ErrorIs(t, Execute(r, msg), ErrOutOfRange)
			require.Empty(t, r.calls)
		})
	}

	r := &recorder{}
	require.Error(t, Execute(r, &msgs.SetSpeedProfile{}))
	require.Error(t, Execute(r, &msgs.SetSpeedProfile{Profile: &msgs.SpeedProfile{ForwardSpeed: 300}}))
	require.Error(t, Execute(r, &msgs.Hold{Control: "wiggle"}))
	require.ErrorIs(t, Execute(r, &msgs.Status{}), msgs.ErrNotCommand)
	require.Empty(t, r.calls)
}

func TestExecuteDeviceError(t *testing.T) {
	r := &recorder{err: errors.New("write failed")}
	require.EqualError(t, Execute(r, &msgs.Stop{}), "write failed")
}

func TestResultOf(t *testing.T) {
	res := ResultOf(&msgs.Power{}, nil)
	require.Equal(t, &msgs.Result{Command: "power", Ok: true}, res)
	res = ResultOf(&msgs.Power{}, errors.New("oops"))
	require.Equal(t, &msgs.Result{Command: "power", Error: "oops"}, res)
}
