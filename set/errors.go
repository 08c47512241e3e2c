package set

import "errors"

var (
	// ErrAllocFailure marks a failed buffer allocation. Add fails
	// atomically with it; Remove swallows it because shrinking is
	// optional.
	ErrAllocFailure = errors.New("set: allocation failure")

	// ErrOutOfRange marks an indexed access outside [0, Len()).
	ErrOutOfRange = errors.New("set: index out of range")
)
