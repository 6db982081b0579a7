package whill

import (
	"time"

	"github.com/robotalks/whill.go/pkg/whill/comm"
	"github.com/robotalks/whill.go/pkg/whill/data"
)

// PowerOnInterval separates the two power-on commands.
const PowerOnInterval = 200 * time.Millisecond

// BatterySavingLevel is the default low battery level in %.
const BatterySavingLevel = 19

const (
	userControlDisable = 0
	userControlEnable  = 1
)

func boolArg(v bool) int {
	if v {
		return 1
	}
	return 0
}

// SendJoystick sends a virtual joystick position, -100..100 on each axis,
// and takes control from the physical joystick.
func (d *Device) SendJoystick(front, side int) (int, error) {
	return d.send(comm.CmdSetJoystick, userControlDisable, front, side)
}

// SendVelocity sends target velocities for front and side directions.
func (d *Device) SendVelocity(front, side int16) (int, error) {
	fh, fl := comm.Int16Bytes(front)
	sh, sl := comm.Int16Bytes(side)
	return d.send(comm.CmdSetVelocity, userControlDisable, fh, fl, sh, sl)
}

// SendStop centers the virtual joystick.
func (d *Device) SendStop() (int, error) {
	return d.SendJoystick(0, 0)
}

// ReleaseJoystick returns control to the physical joystick.
func (d *Device) ReleaseJoystick() (int, error) {
	return d.send(comm.CmdSetJoystick, userControlEnable, 0, 0)
}

// SetPower powers the device on or off.
func (d *Device) SetPower(on bool) (int, error) {
	return d.send(comm.CmdSetPower, boolArg(on))
}

// SendPowerOn sends the power-on command twice, PowerOnInterval apart.
// The device may miss the first one while waking up.
func (d *Device) SendPowerOn() (int, error) {
	n, err := d.SetPower(true)
	if err != nil {
		return n, err
	}
	d.sleep(PowerOnInterval)
	n1, err := d.SetPower(true)
	return n + n1, err
}

// SendPowerOff powers the device off.
func (d *Device) SendPowerOff() (int, error) {
	return d.SetPower(false)
}

// StartStream asks the device to report a dataset every intervalMs.
// speedMode selects the profile reported by DataSetProfile.
func (d *Device) StartStream(intervalMs uint16, dataset data.DataSet, speedMode int) (int, error) {
	if dataset != data.DataSetProfile && dataset != data.DataSetStatus {
		return 0, ErrInvalidDataSet
	}
	if !data.ValidSpeedMode(speedMode) {
		return 0, data.ErrSpeedMode
	}
	return d.send(comm.CmdStartStream,
		int(dataset), int(intervalMs>>8), int(intervalMs&0xff), speedMode)
}

// RequestSpeedProfile streams the profile of speedMode so it shows up
// as EventDataSet0.
func (d *Device) RequestSpeedProfile(speedMode int, intervalMs uint16) (int, error) {
	return d.StartStream(intervalMs, data.DataSetProfile, speedMode)
}

// StopStream stops reporting datasets.
func (d *Device) StopStream() (int, error) {
	return d.send(comm.CmdStopStream)
}

// SetSpeedProfile writes the profile of a speed mode. The cached profile
// is only updated when the device reports it back.
func (d *Device) SetSpeedProfile(speedMode int, p data.SpeedProfile) (int, error) {
	if !data.ValidSpeedMode(speedMode) {
		return 0, data.ErrSpeedMode
	}
	fields := p.Fields()
	args := make([]int, 0, len(fields)+1)
	args = append(args, speedMode)
	for _, f := range fields {
		args = append(args, int(f))
	}
	return d.send(comm.CmdSetSpeedProfile, args...)
}

// SetBatteryVoltageOut turns the 24V battery output on or off.
func (d *Device) SetBatteryVoltageOut(on bool) (int, error) {
	return d.send(comm.CmdSetBatteryVoltageOut, boolArg(on))
}

// SetBatterySaving configures the low battery level (%) and the buzzer.
func (d *Device) SetBatterySaving(lowLevel int, buzzer bool) (int, error) {
	return d.send(comm.CmdSetBatterySaving, lowLevel, boolArg(buzzer))
}
