package mixer

import "errors"

var (
	// ErrInvalidPortBinding marks a port binding whose shape does not match its kind.
	ErrInvalidPortBinding = errors.New("invalid port binding")

	// ErrInvalidChannelStrip marks a channel strip variant missing a required plugin slot.
	ErrInvalidChannelStrip = errors.New("invalid channel strip")
)

// ErrIncompleteRecord marks a persisted record with a missing or null field.
var ErrIncompleteRecord = errors.New("incomplete record")
