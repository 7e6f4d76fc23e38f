// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide fixed fixtures (the literal matrices the properties are stated on).
//   • Recover panics and match them against package sentinels.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rtc/matrix"
)

// requirePanicsIs runs fn and requires a panic whose value is an error
// matching target via errors.Is.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}

// requireMatrixEqual fails with both matrices printed when they differ
// beyond matrix.DefaultEpsilon.
func requireMatrixEqual(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.True(t, want.Equal(got), "want:\n%sgot:\n%s", want, got)
}

// invertible4 is the 4×4 fixture with a known inverse (det = 532).
func invertible4() matrix.Matrix {
	return matrix.MustNew(4,
		-5, 2, 6, -8,
		1, -5, 1, 8,
		7, 7, -6, -7,
		1, -3, 7, 4,
	)
}

// fixtures4 returns a handful of invertible 4×4 matrices for property checks.
func fixtures4() []matrix.Matrix {
	return []matrix.Matrix{
		invertible4(),
		matrix.MustNew(4,
			8, -5, 9, 2,
			7, 5, 6, 1,
			-6, 0, 9, 6,
			-3, 0, -9, -4,
		),
		matrix.MustNew(4,
			9, 3, 0, 9,
			-5, -2, -6, -3,
			-4, 9, 6, 4,
			-7, 6, 6, 2,
		),
		matrix.MustNew(4,
			3, -9, 7, 3,
			3, -8, 2, -9,
			-4, 4, 4, 1,
			-6, 5, -1, 1,
		),
	}
}
