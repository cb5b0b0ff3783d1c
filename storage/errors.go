package storage

import "errors"

var (
	// ErrOutOfRange signals an offset outside of the live elements.
	ErrOutOfRange = errors.New("storage: offset out of range")
	// ErrCorrupt is reported by Check if an engine invariant does not hold.
	ErrCorrupt = errors.New("storage: invariant violated")
)
