package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOrder is returned for orders outside [MinOrder, MaxOrder].
	ErrInvalidOrder = errors.New("invalid order")

	// ErrInvariantViolation marks a construction that produced a matrix it
	// should not have (repeated or missing values, unbalanced lines). It is a
	// defect in a generator, never a user error.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrMalformedMatrix is returned when a matrix is empty or not square.
	ErrMalformedMatrix = errors.New("malformed matrix")

	// ErrUnsupportedMethod is returned when a construction does not apply to the order's class.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrUnknownVariant is returned for a symmetry outside the eight dihedral variants.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrNotMagic is returned by Verify when any file fails verification.
	ErrNotMagic = errors.New("not a magic square")

	// ErrDrift is returned by Check when stored reports no longer match a fresh synthesis.
	ErrDrift = errors.New("stored reports drifted")
)

// InvalidOrderError carries the rejected order and the accepted range.
type InvalidOrderError struct {
	Order int
	Min   int
	Max   int
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("%s: %d is outside [%d,%d]", ErrInvalidOrder, e.Order, e.Min, e.Max)
}

// Unwrap lets errors.Is match ErrInvalidOrder.
func (e *InvalidOrderError) Unwrap() error {
	return ErrInvalidOrder
}

// InvariantError describes which invariant a generated matrix broke.
type InvariantError struct {
	Order  int
	Method string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: order %d (%s): %s", ErrInvariantViolation, e.Order, e.Method, e.Detail)
}

// Unwrap lets errors.Is match ErrInvariantViolation.
func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}
