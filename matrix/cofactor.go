// SPDX-License-Identifier: MIT

// Package matrix - submatrix, minor, cofactor, determinant & inverse.
//
// Purpose:
//   - Implement the determinant by Laplace (cofactor) expansion along row 0,
//     recursing on (N-1)×(N-1) submatrices down to the 2×2 closed form.
//   - Implement the inverse by the adjugate method: transpose of the cofactor
//     matrix divided by the determinant.
//
// Notes:
//   - Recursion depth is bounded by MaxSize, enforced at construction.
//   - IsInvertible tests det != 0 exactly, not within epsilon. A matrix with a
//     tiny nonzero determinant is accepted and yields a large, unstable inverse.
package matrix

import "fmt"

// Submatrix returns the (N-1)×(N-1) matrix left after deleting row `row` and
// column `col`; the remaining cells keep their relative order.
//
// Panics:
//   - ErrBadShape for N == 1 (nothing would remain).
//   - ErrOutOfRange for indices outside [0, N).
//
// Complexity: O(N²).
func (m Matrix) Submatrix(row, col int) Matrix {
	if m.n < 2 {
		panic(matrixErrorf(opSubmatrix, fmt.Errorf("size %d: %w", m.n, ErrBadShape)))
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		panic(matrixErrorf(opSubmatrix, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.n, m.n, ErrOutOfRange)))
	}
	n := m.n
	res := zero(n - 1)
	k := 0
	var i, j int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			res.data[k] = m.data[i*n+j]
			k++
		}
	}

	return res
}

// Minor returns the determinant of Submatrix(row, col).
func (m Matrix) Minor(row, col int) float32 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns Minor(row, col), negated when row+col is odd.
// A zero minor stays +0 after negation.
func (m Matrix) Cofactor(row, col int) float32 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return 0 - minor
	}

	return minor
}

// Determinant returns det(m).
//
// Implementation:
//   - N == 1: the single cell.
//   - N == 2: a·d − b·c.
//   - N ≥ 3: Σ_j m[0,j]·Cofactor(0,j).
//
// Complexity: O(N!) multiplications; at most 4! for MaxSize.
func (m Matrix) Determinant() float32 {
	switch m.n {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var det float32
	for j := 0; j < m.n; j++ {
		det += m.data[j] * m.Cofactor(0, j)
	}

	return det
}

// IsInvertible reports Determinant() != 0 (exact comparison).
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns m⁻¹ so that m.Mul(m.Inverse()) ≈ Identity(N).
//
// Implementation:
//   - Stage 1: build the cofactor matrix C, C[i,j] = Cofactor(i,j).
//   - Stage 2: det = Σ_j m[0,j]·C[0,j] (row 0 of C is already the expansion).
//   - Stage 3: fail on det == 0; otherwise return Cᵀ / det (the adjugate
//     scaled by 1/det).
//
// Panics:
//   - ErrSingular when det == 0. Callers are expected to check IsInvertible
//     first when the matrix is not known to be invertible.
//
// Complexity: N² cofactors of size N-1.
func (m Matrix) Inverse() Matrix {
	n := m.n
	if n == 1 {
		if m.data[0] == 0 {
			panic(matrixErrorf(opInverse, ErrSingular))
		}
		return MustNew(1, 1/m.data[0])
	}

	cof := zero(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cof.data[i*n+j] = m.Cofactor(i, j)
		}
	}

	var det float32
	for j = 0; j < n; j++ {
		det += m.data[j] * cof.data[j]
	}
	if det == 0 {
		panic(matrixErrorf(opInverse, ErrSingular))
	}

	return cof.Transpose().divided(det)
}
