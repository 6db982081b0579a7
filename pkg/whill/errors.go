package whill

import "errors"

var (
	// ErrInvalidDataSet indicates a dataset number other than 0 or 1.
	ErrInvalidDataSet = errors.New("invalid dataset")
	// ErrInvalidControl indicates an unknown hold control type.
	ErrInvalidControl = errors.New("invalid control type")
)
