package alloc

import "errors"

var (
	// ErrAllocFailed signals that an allocator could not satisfy a request.
	ErrAllocFailed = errors.New("alloc: allocation failed")
	// ErrInvalidRequest signals a nonsensical slot count (negative).
	ErrInvalidRequest = errors.New("alloc: invalid slot count")
)
