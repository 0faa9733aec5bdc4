package pointset

import "errors"

var (
	// ErrInvalidCapacity is returned by New for a capacity below 1
	ErrInvalidCapacity = errors.New("pointset: invalid capacity")

	// ErrEmptyBuffer is returned by DropPoint when nothing is stored
	ErrEmptyBuffer = errors.New("pointset: buffer is empty")

	// ErrIndexOutOfRange is returned by GetPoint for an index outside [0, Len())
	ErrIndexOutOfRange = errors.New("pointset: index out of range")
)
