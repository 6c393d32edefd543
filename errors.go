package sg

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations. Every failing call returns a
// *ContractError wrapping one of these, so callers test with errors.Is.
var (
	// ErrOpacityRange is returned when an opacity is outside [0, 1].
	ErrOpacityRange = errors.New("sg: opacity out of range [0, 1]")

	// ErrNegative is returned when a size, line width or corner is negative.
	ErrNegative = errors.New("sg: value must be non-negative")

	// ErrTransformed is returned when resizing a shape that has been rotated or scaled.
	ErrTransformed = errors.New("sg: shape has been transformed")

	// ErrDerivedSize is returned when resizing a shape whose size is computed
	// from its content (text, polygons, compounds).
	ErrDerivedSize = errors.New("sg: size is derived from content")

	// ErrNilShape is returned when a nil shape is passed to a compound.
	ErrNilShape = errors.New("sg: nil shape")

	// ErrCycle is returned when a compound would become its own descendant.
	ErrCycle = errors.New("sg: compound cannot contain itself")

	// ErrIndexRange is returned for an element or vertex index out of range.
	ErrIndexRange = errors.New("sg: index out of range")

	// ErrPixelRange is returned for pixel access outside an image.
	ErrPixelRange = errors.New("sg: pixel coordinates out of range")

	// ErrImageLoad is returned when an image file is missing or cannot be decoded.
	ErrImageLoad = errors.New("sg: cannot load image")
)

// ContractError describes a rejected call: the operation, the offending
// value, and the sentinel cause.
type ContractError struct {
	Op    string
	Value any
	Err   error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s(%v): %v", e.Op, e.Value, e.Err)
}

// Unwrap returns the sentinel cause.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// violation builds a ContractError and reports it at warn level.
func violation(op string, value any, err error) error {
	Logger().Warn("sg: rejected call", "op", op, "value", value, "err", err)
	return &ContractError{Op: op, Value: value, Err: err}
}
