package scratchmlp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// The three failure classes of the numerical core. Call sites wrap them with
// the failing operation and the offending dimensions, so callers can test
// with errors.Is and still see what went wrong.
var (
	// ErrInvalidArgument reports malformed caller input, such as a layer
	// size sequence with fewer than two entries.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShapeMismatch reports incompatible matrix dimensions.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrPrecondition reports an operation invoked in the wrong model
	// state, such as a backward pass without a prior forward pass.
	ErrPrecondition = errors.New("precondition violation")
)

// sameShape verifies that a and b have identical dimensions.
func sameShape(op string, a, b mat.Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("%s: got %dx%d and %dx%d: %w", op, ar, ac, br, bc, ErrShapeMismatch)
	}
	return nil
}
