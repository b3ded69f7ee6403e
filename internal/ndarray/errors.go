package ndarray

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package wraps exactly one of them,
// so callers can branch with errors.Is.
var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

// ShapeError provides detailed information about a rejected shape or index.
type ShapeError struct {
	Op      string // Operation that failed (e.g. "reshape", "at")
	Shape   Shape  // Shape of the receiver at the time of failure
	Details string // Additional details
	Err     error  // One of the package sentinels
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %v (shape %v)", e.Op, e.Err, e.Shape)
	}
	return fmt.Sprintf("%s: %s (shape %v): %v", e.Op, e.Details, e.Shape, e.Err)
}

// Unwrap returns the sentinel error class.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

func outOfRange(op string, shape Shape, format string, args ...any) error {
	return &ShapeError{Op: op, Shape: shape.Clone(), Details: fmt.Sprintf(format, args...), Err: ErrOutOfRange}
}

func invalidArgument(op string, shape Shape, format string, args ...any) error {
	return &ShapeError{Op: op, Shape: shape.Clone(), Details: fmt.Sprintf(format, args...), Err: ErrInvalidArgument}
}

func invalidState(op string, shape Shape, format string, args ...any) error {
	return &ShapeError{Op: op, Shape: shape.Clone(), Details: fmt.Sprintf(format, args...), Err: ErrInvalidState}
}
