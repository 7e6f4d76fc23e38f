// SPDX-License-Identifier: MIT

// Package matrix - products and transpose.
//
// Determinism:
//   - Fixed loop orders (i→j→k) so results are bit-reproducible across runs.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/rtc/tuple"
)

// Mul returns the matrix product m·o, result[i,j] = Σ_k m[i,k]·o[k,j].
//
// Behavior highlights:
//   - Composition reads right to left: in T = C·B·A, A is applied first.
//   - Operands are never mutated.
//
// Panics:
//   - ErrDimensionMismatch when sizes differ.
//
// Complexity: O(N³).
func (m Matrix) Mul(o Matrix) Matrix {
	if m.n != o.n {
		panic(matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", m.n, m.n, o.n, o.n, ErrDimensionMismatch)))
	}
	n := m.n
	res := zero(n)
	var (
		i, j, k int
		sum     float32
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += m.data[i*n+k] * o.data[k*n+j]
			}
			res.data[i*n+j] = sum
		}
	}

	return res
}

// MulTuple treats t as a single column and returns m·t.
// Only defined for 4×4 matrices, since every tuple is homogeneous 4-wide.
//
// Panics:
//   - ErrNotHomogeneous when N != 4.
//
// Complexity: O(16).
func (m Matrix) MulTuple(t tuple.Tuple) tuple.Tuple {
	if m.n != HomogeneousSize {
		panic(matrixErrorf(opMulTuple, fmt.Errorf("size %d: %w", m.n, ErrNotHomogeneous)))
	}
	d := m.data

	return tuple.Tuple{
		X: d[0]*t.X + d[1]*t.Y + d[2]*t.Z + d[3]*t.W,
		Y: d[4]*t.X + d[5]*t.Y + d[6]*t.Z + d[7]*t.W,
		Z: d[8]*t.X + d[9]*t.Y + d[10]*t.Z + d[11]*t.W,
		W: d[12]*t.X + d[13]*t.Y + d[14]*t.Z + d[15]*t.W,
	}
}

// Transpose returns mᵀ, result[i,j] = m[j,i].
// Cells are moved, never recomputed, so Transpose(Identity(n)) is exactly
// Identity(n).
// Complexity: O(N²).
func (m Matrix) Transpose() Matrix {
	n := m.n
	res := zero(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[j*n+i] = m.data[i*n+j]
		}
	}

	return res
}

// divided returns m with every cell divided by s. Internal to Inverse.
func (m Matrix) divided(s float32) Matrix {
	res := zero(m.n)
	for i, v := range m.data {
		res.data[i] = v / s
	}

	return res
}
