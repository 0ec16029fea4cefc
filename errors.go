package smallvec

import "errors"

var (
	// ErrIndexOutOfBounds signals a position outside the live element range.
	ErrIndexOutOfBounds = errors.New("smallvec: index out of bounds")
	// ErrCapacityExceeded signals a size beyond the representable maximum
	// (see Vector.MaxLen).
	ErrCapacityExceeded = errors.New("smallvec: size exceeds maximum capacity")
	// ErrIllegalArguments signals invalid operation parameters.
	ErrIllegalArguments = errors.New("smallvec: illegal arguments")
)
