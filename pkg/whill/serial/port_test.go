package serial

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
)

func TestMode(t *testing.T) {
	c := Config{}
	m := c.Mode()
	require.Equal(t, DefaultBaudRate, m.BaudRate)
	require.Equal(t, 8, m.DataBits)
	require.Equal(t, serial.NoParity, m.Parity)
	require.Equal(t, serial.OneStopBit, m.StopBits)

	c.BaudRate = 115200
	require.Equal(t, 115200, c.Mode().BaudRate)
}

func TestOpenWithoutName(t *testing.T) {
	_, err := Open(Config{})
	require.Error(t, err)
}
