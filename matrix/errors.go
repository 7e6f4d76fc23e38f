// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every precondition failure in this package panics with an error wrapping
// one of these sentinels; tests recover and match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is raised when a size is outside [1, MaxSize], the literal
	// count does not equal n*n, or a 1×1 matrix is asked for a submatrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotHomogeneous indicates MulTuple on a matrix that is not 4×4.
	ErrNotHomogeneous = errors.New("matrix: tuple multiplication requires a 4x4 matrix")

	// ErrSingular is raised by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opAt        = "At"
	opMul       = "Mul"
	opMulTuple  = "MulTuple"
	opSubmatrix = "Submatrix"
	opInverse   = "Inverse"
	opIdentity  = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must only pass a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
