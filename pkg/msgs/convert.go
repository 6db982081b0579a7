package msgs

import (
	"fmt"
	"math"

	"github.com/robotalks/whill.go/pkg/whill/data"
)

// StatusFrom converts telemetry into a Status.
func StatusFrom(t data.Telemetry) *Status {
	return &Status{
		JoyFront:       int32(t.Joy.Front),
		JoySide:        int32(t.Joy.Side),
		BatteryLevel:   uint32(t.Battery.Level),
		BatteryCurrent: t.Battery.Current,
		RightAngle:     t.RightMotor.Angle,
		RightSpeed:     t.RightMotor.Speed,
		LeftAngle:      t.LeftMotor.Angle,
		LeftSpeed:      t.LeftMotor.Speed,
		Accelerometer:  vectorFrom(t.Accelerometer),
		Gyro:           vectorFrom(t.Gyro),
		Power:          t.PowerStatus,
		SpeedMode:      uint32(t.SpeedModeIndicator),
		ErrorCode:      uint32(t.ErrorCode),
		Timestamp:      int32(t.TimestampCurrent),
		TimeDiffMs:     int32(t.TimeDiffMs),
		Seq:            t.SeqDataSet1,
	}
}

func vectorFrom(v data.Data3D) *Vector {
	return &Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// SpeedProfilesFrom converts the cached profiles of all speed modes.
func SpeedProfilesFrom(t data.Telemetry) *SpeedProfiles {
	m := &SpeedProfiles{Seq: t.SeqDataSet0}
	for mode, p := range t.SpeedProfiles {
		m.Profiles = append(m.Profiles, SpeedProfileFrom(mode, p))
	}
	return m
}

// SpeedProfileFrom converts the profile of a speed mode.
func SpeedProfileFrom(mode int, p data.SpeedProfile) *SpeedProfile {
	return &SpeedProfile{
		SpeedMode:           int32(mode),
		ForwardSpeed:        uint32(p.ForwardSpeed),
		ForwardAcceleration: uint32(p.ForwardAcceleration),
		ForwardDeceleration: uint32(p.ForwardDeceleration),
		ReverseSpeed:        uint32(p.ReverseSpeed),
		ReverseAcceleration: uint32(p.ReverseAcceleration),
		ReverseDeceleration: uint32(p.ReverseDeceleration),
		TurnSpeed:           uint32(p.TurnSpeed),
		TurnAcceleration:    uint32(p.TurnAcceleration),
		TurnDeceleration:    uint32(p.TurnDeceleration),
	}
}

// ToData converts back to data.SpeedProfile. Every field must fit a byte.
func (m *SpeedProfile) ToData() (data.SpeedProfile, error) {
	fields := []uint32{
		m.ForwardSpeed, m.ForwardAcceleration, m.ForwardDeceleration,
		m.ReverseSpeed, m.ReverseAcceleration, m.ReverseDeceleration,
		m.TurnSpeed, m.TurnAcceleration, m.TurnDeceleration,
	}
	b := make([]byte, len(fields))
	for n, f := range fields {
		if f > math.MaxUint8 {
			return data.SpeedProfile{}, fmt.Errorf("speed profile field %d out of range: %d", n, f)
		}
		b[n] = byte(f)
	}
	return data.SpeedProfileFrom(b), nil
}
