package comm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	testCases := []struct {
		name   string
		id     CommandID
		args   []int
		expect []byte
	}{
		{"start stream", CmdStartStream, []int{1, 0x03, 0xe8, 5}, []byte{0, 1, 0x03, 0xe8, 5}},
		{"stop stream", CmdStopStream, nil, []byte{1}},
		{"power", CmdSetPower, []int{1}, []byte{2, 1}},
		{"joystick", CmdSetJoystick, []int{0, -50, 100}, []byte{3, 0, 0xce, 100}},
		{"speed profile", CmdSetSpeedProfile, []int{5, 1, 2, 3, 4, 5, 6, 7, 8, 9}, []byte{4, 5, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"battery voltage out", CmdSetBatteryVoltageOut, []int{1}, []byte{5, 1}},
		{"battery saving", CmdSetBatterySaving, []int{19, 1}, []byte{6, 19, 1}},
		{"velocity", CmdSetVelocity, []int{0, 0x03, 0xe8, 0xff, 0x38}, []byte{8, 0, 0x03, 0xe8, 0xff, 0x38}},
		{"min signed", CmdSetJoystick, []int{0, -128, 255}, []byte{3, 0, 0x80, 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := NewCommand(tc.id, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.expect, cmd.Bytes())

			// encode then decode recovers the command.
			f, err := NewReader(newChunkReader(Encode(Sign, cmd.Bytes()))).ReadFrame()
			require.NoError(t, err)
			require.True(t, f.Valid())
			parsed, err := ParseCommand(f.Payload)
			require.NoError(t, err)
			require.Equal(t, cmd.ID, parsed.ID)
			require.Equal(t, cmd.Args, parsed.Args)
		})
	}
}

func TestNewCommandErrors(t *testing.T) {
	_, err := NewCommand(CmdSetJoystick, 0, 1)
	require.True(t, errors.Is(err, ErrCommandLength))
	var lenErr *LengthError
	require.True(t, errors.As(err, &lenErr))
	require.Equal(t, 3, lenErr.Expected)
	require.Equal(t, 2, lenErr.Actual)

	_, err = NewCommand(CommandID(7))
	require.Equal(t, ErrUnknownCommand, err)

	_, err = NewCommand(CmdSetJoystick, 0, -129, 0)
	require.True(t, errors.Is(err, ErrArgRange))
	_, err = NewCommand(CmdSetJoystick, 0, 256, 0)
	require.True(t, errors.Is(err, ErrArgRange))
}

func TestParseCommandErrors(t *testing.T) {
	_, err := ParseCommand(nil)
	require.Equal(t, ErrShortFrame, err)
	_, err = ParseCommand([]byte{7})
	require.Equal(t, ErrUnknownCommand, err)
	_, err = ParseCommand([]byte{2, 1, 1})
	require.True(t, errors.Is(err, ErrCommandLength))
}

func TestInt16Bytes(t *testing.T) {
	hi, lo := Int16Bytes(1000)
	require.Equal(t, 0x03, hi)
	require.Equal(t, 0xe8, lo)
	hi, lo = Int16Bytes(-200)
	require.Equal(t, 0xff, hi)
	require.Equal(t, 0x38, lo)
	hi, lo = Int16Bytes(-1)
	require.Equal(t, 0xff, hi)
	require.Equal(t, 0xff, lo)
}

func TestCommandIDString(t *testing.T) {
	require.Equal(t, "SetVelocity", CmdSetVelocity.String())
	require.Equal(t, "Command(7)", CommandID(7).String())
}
