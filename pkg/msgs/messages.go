package msgs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/golang/protobuf/proto"
)

// Message is a named, serializable message.
type Message interface {
	proto.Message
	MessageName() string
	NewMessage() Message
}

// Message names.
const (
	StatusName            = "status"
	SpeedProfilesName     = "profiles"
	PowerOnName           = "power_on"
	JoystickName          = "joystick"
	VelocityName          = "velocity"
	StopName              = "stop"
	ReleaseName           = "release"
	HoldName              = "hold"
	UnholdName            = "unhold"
	PowerName             = "power"
	StreamStartName       = "stream_start"
	StreamStopName        = "stream_stop"
	SetSpeedProfileName   = "set_speed_profile"
	BatterySavingName     = "battery_saving"
	BatteryVoltageOutName = "battery_voltage_out"
	ResultName            = "result"
)

// MessageTypes are known messages by name.
var MessageTypes = map[string]Message{
	StatusName:            (*Status)(nil),
	SpeedProfilesName:     (*SpeedProfiles)(nil),
	PowerOnName:           (*PowerOn)(nil),
	JoystickName:          (*Joystick)(nil),
	VelocityName:          (*Velocity)(nil),
	StopName:              (*Stop)(nil),
	ReleaseName:           (*Release)(nil),
	HoldName:              (*Hold)(nil),
	UnholdName:            (*Unhold)(nil),
	PowerName:             (*Power)(nil),
	StreamStartName:       (*StreamStart)(nil),
	StreamStopName:        (*StreamStop)(nil),
	SetSpeedProfileName:   (*SetSpeedProfile)(nil),
	BatterySavingName:     (*BatterySaving)(nil),
	BatteryVoltageOutName: (*BatteryVoltageOut)(nil),
	ResultName:            (*Result)(nil),
}

// ErrUnknownType indicates the message name is not registered.
type ErrUnknownType struct {
	Name string
}

// Error implements error.
func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown message type: %q", e.Name)
}

// ErrNotCommand indicates the message is a report, not a command.
var ErrNotCommand = errors.New("not a command")

// Names returns registered message names, sorted.
func Names() []string {
	names := make([]string, 0, len(MessageTypes))
	for name := range MessageTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates an empty message by name.
func New(name string) (Message, error) {
	t, ok := MessageTypes[name]
	if !ok {
		return nil, &ErrUnknownType{Name: name}
	}
	return t.NewMessage(), nil
}

// Encode serializes a message.
func Encode(msg Message) ([]byte, error) {
	return proto.Marshal(msg)
}

// Decode deserializes a message by name.
func Decode(name string, data []byte) (Message, error) {
	msg, err := New(name)
	if err != nil {
		return nil, err
	}
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return msg, nil
}
