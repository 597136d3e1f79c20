package countdown

import "errors"

var (
	// ErrInvalidArgument is returned when a countdown is started with a negative total.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrClosed is returned by commands issued after the engine was closed.
	ErrClosed = errors.New("countdown engine closed")
)
