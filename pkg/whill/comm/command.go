package comm

import "fmt"

// CommandID identifies a host-to-device command.
type CommandID byte

// Command IDs.
const (
	CmdStartStream          CommandID = 0
	CmdStopStream           CommandID = 1
	CmdSetPower             CommandID = 2
	CmdSetJoystick          CommandID = 3
	CmdSetSpeedProfile      CommandID = 4
	CmdSetBatteryVoltageOut CommandID = 5
	CmdSetBatterySaving     CommandID = 6
	CmdSetVelocity          CommandID = 8
)

// argLengths is the number of argument bytes following the command ID.
var argLengths = map[CommandID]int{
	CmdStartStream:          4,
	CmdStopStream:           0,
	CmdSetPower:             1,
	CmdSetJoystick:          3,
	CmdSetSpeedProfile:      10,
	CmdSetBatteryVoltageOut: 1,
	CmdSetBatterySaving:     2,
	CmdSetVelocity:          5,
}

var commandNames = map[CommandID]string{
	CmdStartStream:          "StartStream",
	CmdStopStream:           "StopStream",
	CmdSetPower:             "SetPower",
	CmdSetJoystick:          "SetJoystick",
	CmdSetSpeedProfile:      "SetSpeedProfile",
	CmdSetBatteryVoltageOut: "SetBatteryVoltageOut",
	CmdSetBatterySaving:     "SetBatterySaving",
	CmdSetVelocity:          "SetVelocity",
}

// String implements fmt.Stringer.
func (id CommandID) String() string {
	if name, ok := commandNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", byte(id))
}

// ArgLength returns the required number of argument bytes.
func (id CommandID) ArgLength() (int, bool) {
	l, ok := argLengths[id]
	return l, ok
}

// Command is an encoded command payload.
type Command struct {
	ID   CommandID
	Args []byte
}

// NewCommand builds a command. Each argument must fit into a byte, either
// as unsigned (0..255) or signed (-128..127) value. Negative values are
// packed in two's complement.
func NewCommand(id CommandID, args ...int) (*Command, error) {
	l, ok := argLengths[id]
	if !ok {
		return nil, ErrUnknownCommand
	}
	if l != len(args) {
		return nil, &LengthError{ID: id, Expected: l, Actual: len(args)}
	}
	cmd := &Command{ID: id, Args: make([]byte, len(args))}
	for n, arg := range args {
		if arg < -128 || arg > 255 {
			return nil, fmt.Errorf("%s arg[%d]=%d: %w", id, n, arg, ErrArgRange)
		}
		cmd.Args[n] = byte(arg)
	}
	return cmd, nil
}

// Bytes returns the command payload (ID followed by arguments).
func (c *Command) Bytes() []byte {
	b := make([]byte, len(c.Args)+1)
	b[0] = byte(c.ID)
	copy(b[1:], c.Args)
	return b
}

// Frame wraps the command into a frame.
func (c *Command) Frame() *Frame {
	return NewFrame(c.Bytes())
}

// ParseCommand recovers a command from a frame payload.
func ParseCommand(payload []byte) (*Command, error) {
	if len(payload) == 0 {
		return nil, ErrShortFrame
	}
	id := CommandID(payload[0])
	l, ok := argLengths[id]
	if !ok {
		return nil, ErrUnknownCommand
	}
	if l != len(payload)-1 {
		return nil, &LengthError{ID: id, Expected: l, Actual: len(payload) - 1}
	}
	return &Command{ID: id, Args: append([]byte(nil), payload[1:]...)}, nil
}

// Int16Bytes splits a signed 16-bit value into big-endian bytes.
func Int16Bytes(v int16) (hi, lo int) {
	return int(byte(uint16(v) >> 8)), int(byte(v))
}
