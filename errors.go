package kernelbridge

import (
	"errors"
	"fmt"
)

// Decode failure taxonomy. Every decode error wraps exactly one of these
// sentinels inside a [*DecodeError], so callers can branch with errors.Is
// while still seeing which shape and element index failed.
var (
	// ErrShapeMismatch reports an element count that does not equal the
	// requested shape's arity.
	ErrShapeMismatch = errors.New("kernelbridge: element count does not match shape")

	// ErrHole reports a missing element inside an input array. Holes are
	// never defaulted.
	ErrHole = errors.New("kernelbridge: hole in input array")

	// ErrNotCoercible reports an array element that cannot become a number.
	ErrNotCoercible = errors.New("kernelbridge: element is not coercible to a number")

	// ErrUnsupportedInput reports a host value whose category is
	// incompatible with the requested shape.
	ErrUnsupportedInput = errors.New("kernelbridge: input value incompatible with shape")
)

// DecodeError describes a failed decode: the shape that was requested,
// the element index at fault (-1 when the failure is not element
// specific), and the underlying sentinel.
type DecodeError struct {
	Kind  Kind
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("decode %s: element %d: %v", e.Kind, e.Index, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(kind Kind, index int, err error) *DecodeError {
	return &DecodeError{Kind: kind, Index: index, Err: err}
}
