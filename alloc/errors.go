package alloc

import "errors"

var (
	// ErrAllocation signals that an allocator could not provide storage.
	ErrAllocation = errors.New("alloc: cannot allocate storage")
	// ErrLength signals a request for more slots than an allocator's MaxSize.
	ErrLength = errors.New("alloc: length exceeds maximum size")
)
