package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFrame indicates the byte read is not a frame sign and was discarded.
	ErrNoFrame = errors.New("no frame")
	// ErrIdle indicates nothing was received before the read timeout.
	ErrIdle = errors.New("idle")
	// ErrShortFrame indicates the stream went idle in the middle of a frame.
	ErrShortFrame = errors.New("short frame")
	// ErrUnknownCommand indicates the command ID has no entry in the length table.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArgRange indicates an argument doesn't fit into a single byte.
	ErrArgRange = errors.New("argument out of range")
	// ErrCommandLength is matched by every *LengthError.
	ErrCommandLength = errors.New("command length mismatch")
)

// LengthError reports a command built with the wrong number of arguments.
type LengthError struct {
	ID       CommandID
	Expected int
	Actual   int
}

// Error implements error.
func (e *LengthError) Error() string {
	return fmt.Sprintf("command %s expects %d args, got %d", e.ID, e.Expected, e.Actual)
}

// Is matches ErrCommandLength.
func (e *LengthError) Is(target error) bool {
	return target == ErrCommandLength
}
