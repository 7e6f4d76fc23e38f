// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & accessors.
//
// Purpose:
//   - Hold N² float32 cells in one contiguous buffer, offset = row*N + col.
//   - Keep values immutable after construction: there is no Set; every
//     operation allocates its result.
//
// Complexity quicksheet:
//   - New/MustNew: O(N²); Identity: O(N²); At: O(1); Equal: O(N²).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an immutable square grid of float32 values.
//   - n is the side length (1..MaxSize).
//   - data holds n*n cells in row-major order.
//
// The zero Matrix has n == 0 and is not a valid operand.
type Matrix struct {
	n    int       // side length
	data []float32 // row-major cells, len == n*n
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix{}

// New builds an n×n matrix from a row-major literal.
//
// Implementation:
//   - Stage 1: validate 1 ≤ n ≤ MaxSize and len(values) == n*n.
//   - Stage 2: copy values into a private buffer so the caller's slice can
//     be reused without aliasing the matrix.
//
// Errors:
//   - ErrBadShape (wrapped with the offending sizes).
//
// Complexity: O(n²).
func New(n int, values ...float32) (Matrix, error) {
	if !validSize(n) {
		return Matrix{}, matrixErrorf(opNew, fmt.Errorf("size %d: %w", n, ErrBadShape))
	}
	if len(values) != n*n {
		return Matrix{}, matrixErrorf(opNew, fmt.Errorf("%d values for %dx%d: %w", len(values), n, n, ErrBadShape))
	}
	buf := make([]float32, n*n)
	copy(buf, values)

	return Matrix{n: n, data: buf}, nil
}

// MustNew is New for literals known at compile time; it panics on a bad shape.
func MustNew(n int, values ...float32) Matrix {
	m, err := New(n, values...)
	if err != nil {
		panic(err)
	}

	return m
}

// Identity returns the n×n identity matrix. It is built fresh on each call;
// there is no shared identity value to mutate.
// Complexity: O(n²).
func Identity(n int) Matrix {
	if !validSize(n) {
		panic(matrixErrorf(opIdentity, fmt.Errorf("size %d: %w", n, ErrBadShape)))
	}
	m := zero(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// zero allocates an n×n matrix of zeros for internal builders. n is trusted.
func zero(n int) Matrix {
	return Matrix{n: n, data: make([]float32, n*n)}
}

// Size returns the side length N.
func (m Matrix) Size() int { return m.n }

// At returns the cell at (row, col).
// Panics with ErrOutOfRange unless 0 ≤ row, col < N.
// Complexity: O(1).
func (m Matrix) At(row, col int) float32 {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		panic(matrixErrorf(opAt, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.n, m.n, ErrOutOfRange)))
	}

	return m.data[row*m.n+col]
}

// Equal reports whether m and o have the same size and every pair of cells
// differs by less than DefaultEpsilon. Transform chains accumulate rounding
// error, so bitwise equality is never what callers want.
func (m Matrix) Equal(o Matrix) bool {
	return ApproxEqual(m, o, DefaultEpsilon)
}

// ApproxEqual is Equal with a caller-chosen absolute tolerance.
// Matrices of different sizes are never equal.
func ApproxEqual(a, b Matrix, eps float32) bool {
	if a.n != b.n {
		return false
	}
	var d float32
	for i := range a.data {
		d = a.data[i] - b.data[i]
		if d < 0 {
			d = -d
		}
		if d >= eps {
			return false
		}
	}

	return true
}

// Values returns a copy of the cells in row-major order.
func (m Matrix) Values() []float32 {
	out := make([]float32, len(m.data))
	copy(out, m.data)

	return out
}

// String renders one bracketed row per line, e.g. "[1, 0]\n[0, 1]\n".
func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

