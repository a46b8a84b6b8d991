package sponge

import "github.com/pkg/errors"

var (
	// ErrInvalidState is returned when an operation is called in the wrong
	// phase, such as absorbing after finalization or asking for a second
	// digest.
	ErrInvalidState = errors.New("sponge: invalid state")

	// ErrInvalidConfiguration is returned for an unsupported combination of
	// state width, capacity and output length.
	ErrInvalidConfiguration = errors.New("sponge: invalid configuration")
)
