// Package serial opens the serial port a WHILL is attached to.
package serial

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"
)

// Port defaults.
const (
	DefaultBaudRate    = 38400
	DefaultReadTimeout = 100 * time.Millisecond
)

// Config specifies how to open the port.
type Config struct {
	Name        string        `yaml:"name"`
	BaudRate    int           `yaml:"baud_rate"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// Mode returns the line settings, 8N1.
func (c *Config) Mode() *serial.Mode {
	baud := c.BaudRate
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	return &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// Open opens the port. A read times out after ReadTimeout with no data,
// which keeps polling from blocking forever.
func Open(c Config) (serial.Port, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("serial port not specified")
	}
	mode := c.Mode()
	port, err := serial.Open(c.Name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.Name, err)
	}
	timeout := c.ReadTimeout
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	if err := port.SetReadTimeout(timeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", c.Name, err)
	}
	glog.Infof("serial %s opened at %d baud", c.Name, mode.BaudRate)
	return port, nil
}
