// Package env sets up a device and its bridges from configuration.
package env

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/whill.go/pkg/whill"
	"github.com/robotalks/whill.go/pkg/whill/data"
	"github.com/robotalks/whill.go/pkg/whill/serial"
)

// StreamConfig starts a dataset stream when the device opens.
type StreamConfig struct {
	Enabled    bool   `yaml:"enabled"`
	IntervalMs uint16 `yaml:"interval_ms"`
	DataSet    int    `yaml:"data_set"`
	SpeedMode  int    `yaml:"speed_mode"`
}

// Config provides options to open a device and bridge it.
type Config struct {
	Serial serial.Config `yaml:"serial"`
	// Layout is the name of the status dataset layout.
	Layout       string        `yaml:"layout"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Stream       StreamConfig  `yaml:"stream"`

	// ID names the device on the bus.
	ID string `yaml:"id"`
	// MQTTBrokerURL enables the MQTT bridge,
	// e.g. mqtt://host:port/topic-prefix/
	MQTTBrokerURL string `yaml:"mqtt_url"`
	// WebSocketAddr enables the WebSocket server, e.g. :8080.
	WebSocketAddr string `yaml:"websocket_addr"`
}

var defaultConfig = Config{
	Serial: serial.Config{
		Name:        "/dev/ttyUSB0",
		BaudRate:    serial.DefaultBaudRate,
		ReadTimeout: serial.DefaultReadTimeout,
	},
	Layout:       data.LayoutStandard.Name,
	PollInterval: whill.DefaultPollInterval,
	Stream: StreamConfig{
		Enabled:    true,
		IntervalMs: 100,
		DataSet:    int(data.DataSetStatus),
	},
}

func init() {
	defaultConfig.ID = MachineID()
	defaultConfig.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if val := getenv("WHILL_PORT"); val != "" {
		c.Serial.Name = val
	}
	if val := getenv("WHILL_LAYOUT"); val != "" {
		c.Layout = val
	}
	if val := getenv("WHILL_MQTT_URL"); val != "" {
		c.MQTTBrokerURL = val
	}
	if val := getenv("WHILL_ID"); val != "" {
		c.ID = val
	}
}

// SetupFlags sets command line flags on fs, flag.CommandLine if nil.
func SetupFlags(fs *flag.FlagSet) {
	if fs == nil {
		fs = flag.CommandLine
	}
	c := &defaultConfig
	fs.StringVar(&c.Serial.Name, "port", c.Serial.Name, "Serial port")
	fs.IntVar(&c.Serial.BaudRate, "baud", c.Serial.BaudRate, "Serial baud rate")
	fs.DurationVar(&c.Serial.ReadTimeout, "read-timeout", c.Serial.ReadTimeout, "Serial read timeout")
	fs.StringVar(&c.Layout, "layout", c.Layout, fmt.Sprintf("Status layout %v", data.LayoutNames()))
	fs.DurationVar(&c.PollInterval, "poll-interval", c.PollInterval, "Interval between polls")
	fs.StringVar(&c.ID, "id", c.ID, "Device ID on the bus")
	fs.StringVar(&c.MQTTBrokerURL, "mqtt", c.MQTTBrokerURL, "MQTT broker URL")
	fs.StringVar(&c.WebSocketAddr, "ws", c.WebSocketAddr, "WebSocket listen address")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadFile overrides c with fields present in a YAML file.
func (c *Config) LoadFile(fn string) error {
	content, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	return c.Load(content)
}

// Load overrides c with fields present in YAML content.
func (c *Config) Load(content []byte) error {
	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.Serial.Name == "" {
		return fmt.Errorf("serial port required")
	}
	if _, err := data.LayoutByName(c.Layout); err != nil {
		return err
	}
	if c.Stream.Enabled {
		if ds := data.DataSet(c.Stream.DataSet); ds != data.DataSetProfile && ds != data.DataSetStatus {
			return fmt.Errorf("stream data_set %d: %w", c.Stream.DataSet, whill.ErrInvalidDataSet)
		}
		if !data.ValidSpeedMode(c.Stream.SpeedMode) {
			return fmt.Errorf("stream speed_mode %d: %w", c.Stream.SpeedMode, data.ErrSpeedMode)
		}
	}
	return nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
