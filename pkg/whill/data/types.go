// Package data decodes WHILL telemetry datasets.
package data

// SpeedModes is the number of selectable speed modes.
const SpeedModes = 6

// Speed mode slots.
const (
	SpeedMode1 = iota
	SpeedMode2
	SpeedMode3
	SpeedMode4
	SpeedModeRemote
	SpeedModeCR
)

// ValidSpeedMode checks mode is within 0..5.
func ValidSpeedMode(mode int) bool {
	return mode >= 0 && mode < SpeedModes
}

// Joy is the joystick position, -100..100 on each axis.
type Joy struct {
	Front int `json:"front"`
	Side  int `json:"side"`
}

// Battery is the battery state.
type Battery struct {
	// Level is the remaining capacity in %.
	Level uint8 `json:"level"`
	// Current is the current draw in mA.
	Current float64 `json:"current"`
}

// Motor is the state of one motor.
type Motor struct {
	// Angle in radians.
	Angle float64 `json:"angle"`
	// Speed in km/h.
	Speed float64 `json:"speed"`
}

// Data3D is a 3-axis reading.
type Data3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SpeedProfile is the setting of one speed mode.
type SpeedProfile struct {
	ForwardSpeed        uint8 `json:"forward_speed" yaml:"forward_speed"`
	ForwardAcceleration uint8 `json:"forward_acceleration" yaml:"forward_acceleration"`
	ForwardDeceleration uint8 `json:"forward_deceleration" yaml:"forward_deceleration"`
	ReverseSpeed        uint8 `json:"reverse_speed" yaml:"reverse_speed"`
	ReverseAcceleration uint8 `json:"reverse_acceleration" yaml:"reverse_acceleration"`
	ReverseDeceleration uint8 `json:"reverse_deceleration" yaml:"reverse_deceleration"`
	TurnSpeed           uint8 `json:"turn_speed" yaml:"turn_speed"`
	TurnAcceleration    uint8 `json:"turn_acceleration" yaml:"turn_acceleration"`
	TurnDeceleration    uint8 `json:"turn_deceleration" yaml:"turn_deceleration"`
}

// Fields returns the fields in wire order.
func (p SpeedProfile) Fields() [9]uint8 {
	return [9]uint8{
		p.ForwardSpeed, p.ForwardAcceleration, p.ForwardDeceleration,
		p.ReverseSpeed, p.ReverseAcceleration, p.ReverseDeceleration,
		p.TurnSpeed, p.TurnAcceleration, p.TurnDeceleration,
	}
}

// SpeedProfileFrom creates SpeedProfile from fields in wire order.
func SpeedProfileFrom(f []byte) SpeedProfile {
	return SpeedProfile{
		ForwardSpeed:        f[0],
		ForwardAcceleration: f[1],
		ForwardDeceleration: f[2],
		ReverseSpeed:        f[3],
		ReverseAcceleration: f[4],
		ReverseDeceleration: f[5],
		TurnSpeed:           f[6],
		TurnAcceleration:    f[7],
		TurnDeceleration:    f[8],
	}
}

// DataSet is the dataset number leading a telemetry payload.
type DataSet byte

// Datasets.
const (
	DataSetProfile DataSet = 0
	DataSetStatus  DataSet = 1
)

// PowerOnNotice leads the payload sent when the device powers on.
// It's outside the dataset number space.
const PowerOnNotice byte = 0x52

// Telemetry is everything learnt from the device.
type Telemetry struct {
	Joy                Joy     `json:"joy"`
	Battery            Battery `json:"battery"`
	RightMotor         Motor   `json:"right_motor"`
	LeftMotor          Motor   `json:"left_motor"`
	Accelerometer      Data3D  `json:"accelerometer"`
	Gyro               Data3D  `json:"gyro"`
	PowerStatus        bool    `json:"power_status"`
	SpeedModeIndicator uint8   `json:"speed_mode_indicator"`
	ErrorCode          uint8   `json:"error_code"`

	TimestampPast    int `json:"timestamp_past"`
	TimestampCurrent int `json:"timestamp_current"`
	TimeDiffMs       int `json:"time_diff_ms"`

	SeqDataSet0   uint32  `json:"seq_data_set_0"`
	SeqDataSet1   uint32  `json:"seq_data_set_1"`
	LatestDataSet DataSet `json:"latest_data_set"`
	// LatestSpeedMode is the speed mode of the last profile report.
	LatestSpeedMode int `json:"latest_speed_mode"`

	SpeedProfiles [SpeedModes]SpeedProfile `json:"speed_profiles"`
}
