// SPDX-License-Identifier: MIT

// Package matrix implements the small square-matrix engine behind every
// geometric transform in rtc.
//
// 🚀 What does it cover?
//
//	A Matrix is an immutable N×N grid of float32 cells (1 ≤ N ≤ 4) stored in a
//	flat row-major buffer, offset = row*N + col. Every operation returns a new
//	Matrix; nothing mutates in place, so values are safe to share between
//	goroutines without locks.
//
// ✨ Operations:
//   - construction from a row-major literal (New / MustNew), Identity(n)
//   - At(row, col), Size()
//   - Equal with a fixed absolute tolerance (tuple.Epsilon = 1e-5)
//   - Mul (matrix × matrix), MulTuple (4×4 × homogeneous tuple)
//   - Transpose, Submatrix, Minor, Cofactor
//   - Determinant by Laplace expansion along row 0
//   - IsInvertible (exact det != 0) and Inverse (adjugate / determinant)
//
// ⚙️ Usage:
//
//	a := matrix.MustNew(2,
//		1, 5,
//		-3, 2,
//	)
//	det := a.Determinant() // 17
//	if a.IsInvertible() {
//		inv := a.Inverse()
//		_ = a.Mul(inv).Equal(matrix.Identity(2)) // true
//	}
//
// Failure policy:
//
//	This is a numerics kernel. Precondition violations (wrong literal count,
//	index out of range, inverting a singular matrix, MulTuple on a non-4×4)
//	panic with an error wrapping one of the sentinels in errors.go, so a
//	recover()ing caller can still match them with errors.Is. New is the only
//	error-returning constructor, for callers that build matrices from input.
//
// Complexity:
//   - Mul: O(N³); Determinant: O(N!) by cofactor expansion, fine for N ≤ 4;
//     Inverse: N² cofactors, each one an (N-1) determinant.
package matrix
