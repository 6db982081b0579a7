package data

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// Layout describes the byte layout of the live status dataset.
//
// Different firmware revisions were seen with different layouts, so the
// layout must be picked explicitly.
type Layout struct {
	Name string
	// IMU decodes accelerometer and gyro axes from the leading 12 bytes.
	IMU bool
	// Wide reads current, motor and IMU fields as 16-bit big-endian values.
	// Otherwise only the first byte of each field is read, as signed 8-bit.
	Wide bool
	// SignedJoy reads joystick axes as signed bytes.
	SignedJoy bool
	// SignedTimestamp reads the device timestamp as a signed byte.
	SignedTimestamp bool
}

// Known layouts.
var (
	// LayoutStandard has the IMU bytes reserved.
	LayoutStandard = Layout{Name: "standard", Wide: true, SignedJoy: true}
	// LayoutStandardIMU is LayoutStandard with IMU axes populated.
	LayoutStandardIMU = Layout{Name: "standard-imu", IMU: true, Wide: true, SignedJoy: true}
	// LayoutLegacy is the early layout reading single bytes.
	LayoutLegacy = Layout{Name: "legacy", IMU: true, SignedTimestamp: true}
)

// Layouts are the known layouts by name.
var Layouts = map[string]Layout{
	LayoutStandard.Name:    LayoutStandard,
	LayoutStandardIMU.Name: LayoutStandardIMU,
	LayoutLegacy.Name:      LayoutLegacy,
}

// LayoutByName finds a known layout.
func LayoutByName(name string) (Layout, error) {
	l, ok := Layouts[name]
	if !ok {
		return l, fmt.Errorf("unknown layout %q, known layouts: %v", name, LayoutNames())
	}
	return l, nil
}

// LayoutNames lists the known layout names.
func LayoutNames() []string {
	names := make([]string, 0, len(Layouts))
	for name := range Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scales.
const (
	AccelScale   = 0.122 // mg per LSB
	GyroScale    = 4.375 // mdps per LSB
	CurrentScale = 2.0   // mA per LSB
	AngleScale   = 0.001 // rad per LSB
	SpeedScale   = 0.004 // km/h per LSB
)

// Status dataset offsets, following the dataset number.
const (
	offAccelX = 0
	offAccelY = 2
	offAccelZ = 4
	offGyroX  = 6
	offGyroY  = 8
	offGyroZ  = 10

	offJoyFront       = 12
	offJoySide        = 13
	offBatteryLevel   = 14
	offBatteryCurrent = 15
	offRightAngle     = 17
	offLeftAngle      = 19
	offRightSpeed     = 21
	offLeftSpeed      = 23
	offPowerStatus    = 25
	offSpeedMode      = 26
	offErrorCode      = 27
	offTimestamp      = 28

	statusLength  = 29
	profileLength = 10
)

func (l *Layout) signed(b []byte, off int) int {
	if l.Wide {
		return int(int16(binary.BigEndian.Uint16(b[off:])))
	}
	return int(int8(b[off]))
}

func (l *Layout) decodeStatus(t *Telemetry, p []byte) error {
	if len(p) < statusLength {
		return fmt.Errorf("status dataset %d bytes: %w", len(p), ErrShortPayload)
	}
	if l.IMU {
		t.Accelerometer = Data3D{
			X: float64(l.signed(p, offAccelX)) * AccelScale,
			Y: float64(l.signed(p, offAccelY)) * AccelScale,
			Z: float64(l.signed(p, offAccelZ)) * AccelScale,
		}
		t.Gyro = Data3D{
			X: float64(l.signed(p, offGyroX)) * GyroScale,
			Y: float64(l.signed(p, offGyroY)) * GyroScale,
			Z: float64(l.signed(p, offGyroZ)) * GyroScale,
		}
	}
	if l.SignedJoy {
		t.Joy = Joy{Front: int(int8(p[offJoyFront])), Side: int(int8(p[offJoySide]))}
	} else {
		t.Joy = Joy{Front: int(p[offJoyFront]), Side: int(p[offJoySide])}
	}
	t.Battery = Battery{
		Level:   p[offBatteryLevel],
		Current: float64(l.signed(p, offBatteryCurrent)) * CurrentScale,
	}
	t.RightMotor = Motor{
		Angle: float64(l.signed(p, offRightAngle)) * AngleScale,
		Speed: float64(l.signed(p, offRightSpeed)) * SpeedScale,
	}
	t.LeftMotor = Motor{
		Angle: float64(l.signed(p, offLeftAngle)) * AngleScale,
		Speed: float64(l.signed(p, offLeftSpeed)) * SpeedScale,
	}
	t.PowerStatus = p[offPowerStatus] != 0
	t.SpeedModeIndicator = p[offSpeedMode]
	t.ErrorCode = p[offErrorCode]

	t.TimestampPast = t.TimestampCurrent
	if l.SignedTimestamp {
		t.TimestampCurrent = int(int8(p[offTimestamp]))
	} else {
		t.TimestampCurrent = int(p[offTimestamp])
	}
	t.TimeDiffMs = TimeDiff(t.TimestampPast, t.TimestampCurrent)
	return nil
}
