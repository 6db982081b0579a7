package env

import (
	"fmt"
	"log"

	"github.com/golang/glog"

	"github.com/robotalks/whill.go/pkg/bridge/mqtt"
	"github.com/robotalks/whill.go/pkg/bridge/ws"
	fx "github.com/robotalks/whill.go/pkg/framework"
	"github.com/robotalks/whill.go/pkg/whill"
	"github.com/robotalks/whill.go/pkg/whill/data"
	"github.com/robotalks/whill.go/pkg/whill/serial"
)

// Env is an opened device with its bridges.
type Env struct {
	Config  *Config
	Device  *whill.Device
	Runners []fx.Runnable

	handlers whill.EventMux
}

// NewEnv opens the serial port and creates Env.
func (c *Config) NewEnv() (*Env, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	port, err := serial.Open(c.Serial)
	if err != nil {
		return nil, err
	}
	layout, _ := data.LayoutByName(c.Layout)
	env, err := c.NewEnvWith(whill.New(port).WithLayout(layout))
	if err != nil {
		port.Close()
		return nil, err
	}
	return env, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	env, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return env
}

// NewEnvWith creates Env around an opened device.
func (c *Config) NewEnvWith(dev *whill.Device) (*Env, error) {
	env := &Env{Config: c, Device: dev}
	env.Runners = append(env.Runners, &whill.Poller{Device: dev, Interval: c.PollInterval})
	if c.MQTTBrokerURL != "" {
		b, err := mqtt.New(c.MQTTBrokerURL, c.ID, dev)
		if err != nil {
			return nil, fmt.Errorf("create MQTT bridge: %w", err)
		}
		env.Handle(b)
		env.Runners = append(env.Runners, b)
	}
	if c.WebSocketAddr != "" {
		s := &ws.Server{Addr: c.WebSocketAddr, Commander: dev}
		env.Handle(s)
		env.Runners = append(env.Runners, s)
	}
	return env, nil
}

// Handle adds h to receive all events of the device.
func (e *Env) Handle(h whill.Handler) {
	e.handlers = append(e.handlers, h)
	mux := append(whill.EventMux(nil), e.handlers...)
	for _, kind := range whill.EventKinds() {
		e.Device.Register(kind, mux)
	}
}

// StartStream starts the configured dataset stream.
func (e *Env) StartStream() error {
	s := e.Config.Stream
	if !s.Enabled {
		return nil
	}
	_, err := e.Device.StartStream(s.IntervalMs, data.DataSet(s.DataSet), s.SpeedMode)
	if err != nil {
		return fmt.Errorf("start stream: %w", err)
	}
	glog.Infof("streaming dataset %d every %dms", s.DataSet, s.IntervalMs)
	return nil
}

// Close stops streaming and closes the device.
func (e *Env) Close() error {
	var errs fx.AggregatedError
	if e.Config.Stream.Enabled {
		_, err := e.Device.StopStream()
		errs.Add(err)
	}
	errs.Add(e.Device.Close())
	return errs.Aggregate()
}
