package domain

import "errors"

// Sentinel errors shared across the application.
var (
	// ErrEmptyPool is returned when no cards are eligible for the
	// requested language and direction.
	ErrEmptyPool = errors.New("no cards available")

	// ErrUnknownMode is returned for an unrecognized quiz mode.
	ErrUnknownMode = errors.New("unknown quiz mode")

	// ErrUnknownDirection is returned for an unrecognized quiz direction.
	ErrUnknownDirection = errors.New("unknown quiz direction")
)
