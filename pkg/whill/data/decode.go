package data

import (
	"errors"
	"fmt"
)

var (
	// ErrShortPayload indicates the payload is shorter than the dataset layout.
	ErrShortPayload = errors.New("short payload")
	// ErrSpeedMode indicates a speed mode outside 0..5.
	ErrSpeedMode = errors.New("invalid speed mode")
)

// Result tells what a payload turned out to be.
type Result int

// Decode results.
const (
	Unhandled Result = iota
	ProfileReport
	StatusReport
	PowerOn
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case ProfileReport:
		return "ProfileReport"
	case StatusReport:
		return "StatusReport"
	case PowerOn:
		return "PowerOn"
	default:
		return "Unhandled"
	}
}

// Decode interprets a validated frame payload (checksum excluded) and
// updates t. Unhandled is returned for unknown leading bytes and t is left
// untouched. On error t is left untouched as well.
func (l *Layout) Decode(t *Telemetry, payload []byte) (Result, error) {
	if len(payload) == 0 {
		return Unhandled, ErrShortPayload
	}
	switch payload[0] {
	case byte(DataSetProfile):
		if err := decodeProfile(t, payload[1:]); err != nil {
			return Unhandled, err
		}
		t.SeqDataSet0++
		t.LatestDataSet = DataSetProfile
		return ProfileReport, nil
	case byte(DataSetStatus):
		if err := l.decodeStatus(t, payload[1:]); err != nil {
			return Unhandled, err
		}
		t.SeqDataSet1++
		t.LatestDataSet = DataSetStatus
		return StatusReport, nil
	case PowerOnNotice:
		return PowerOn, nil
	}
	return Unhandled, nil
}

func decodeProfile(t *Telemetry, p []byte) error {
	if len(p) < profileLength {
		return fmt.Errorf("profile dataset %d bytes: %w", len(p), ErrShortPayload)
	}
	mode := int(p[0])
	if !ValidSpeedMode(mode) {
		return fmt.Errorf("profile dataset mode %d: %w", mode, ErrSpeedMode)
	}
	t.SpeedProfiles[mode] = SpeedProfileFrom(p[1:profileLength])
	t.LatestSpeedMode = mode
	return nil
}

// TimeDiff calculates milliseconds between two device timestamps. The
// counter wraps within 0..200.
func TimeDiff(past, current int) int {
	diff := current - past
	if diff >= 100 || diff <= -100 {
		diff = (201 - past) + current
	}
	return diff
}
