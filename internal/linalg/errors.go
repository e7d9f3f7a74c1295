package linalg

import "errors"

var (
	// ErrDimensionMismatch is raised when operands have incompatible dimensions.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrEmptyMatrix is raised when a matrix with no columns is multiplied.
	ErrEmptyMatrix = errors.New("linalg: matrix has no columns")

	// ErrOutOfRange is raised for an element or column index outside the bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")
)
