package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rtc/matrix"
)

func TestDeterminant_2x2(t *testing.T) {
	assert.Equal(t, float32(17), matrix.MustNew(2, 1, 5, -3, 2).Determinant())
}

func TestDeterminant_1x1(t *testing.T) {
	assert.Equal(t, float32(-7), matrix.MustNew(1, -7).Determinant())
}

func TestSubmatrix(t *testing.T) {
	a := matrix.MustNew(3,
		1, 5, 0,
		-3, 2, 7,
		0, 6, -3,
	)
	requireMatrixEqual(t, matrix.MustNew(2, -3, 2, 0, 6), a.Submatrix(0, 2))

	b := matrix.MustNew(4,
		-6, 1, 1, 6,
		-8, 5, 8, 6,
		-1, 0, 8, 2,
		-7, 1, -1, 1,
	)
	want := matrix.MustNew(3,
		-6, 1, 6,
		-8, 8, 6,
		-7, -1, 1,
	)
	got := b.Submatrix(2, 1)
	require.Equal(t, 3, got.Size())
	requireMatrixEqual(t, want, got)
}

func TestSubmatrix_Preconditions(t *testing.T) {
	requirePanicsIs(t, matrix.ErrBadShape, func() { _ = matrix.MustNew(1, 3).Submatrix(0, 0) })
	requirePanicsIs(t, matrix.ErrOutOfRange, func() { _ = matrix.Identity(3).Submatrix(3, 0) })
	requirePanicsIs(t, matrix.ErrOutOfRange, func() { _ = matrix.Identity(3).Submatrix(0, -1) })
}

func TestMinorAndCofactor_3x3(t *testing.T) {
	a := matrix.MustNew(3,
		3, 5, 0,
		2, -1, -7,
		6, -1, 5,
	)
	assert.Equal(t, float32(25), a.Submatrix(1, 0).Determinant())
	assert.Equal(t, float32(25), a.Minor(1, 0))
	assert.Equal(t, float32(-12), a.Minor(0, 0))
	assert.Equal(t, float32(-12), a.Cofactor(0, 0))
	assert.Equal(t, float32(-25), a.Cofactor(1, 0))
}

func TestDeterminant_3x3(t *testing.T) {
	a := matrix.MustNew(3,
		1, 2, 6,
		-5, 8, -4,
		2, 6, 4,
	)
	assert.Equal(t, float32(56), a.Cofactor(0, 0))
	assert.Equal(t, float32(12), a.Cofactor(0, 1))
	assert.Equal(t, float32(-46), a.Cofactor(0, 2))
	assert.Equal(t, float32(-196), a.Determinant())
}

func TestDeterminant_4x4(t *testing.T) {
	a := matrix.MustNew(4,
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	)
	assert.Equal(t, float32(690), a.Cofactor(0, 0))
	assert.Equal(t, float32(447), a.Cofactor(0, 1))
	assert.Equal(t, float32(210), a.Cofactor(0, 2))
	assert.Equal(t, float32(51), a.Cofactor(0, 3))
	assert.Equal(t, float32(-4071), a.Determinant())
}

func TestIsInvertible(t *testing.T) {
	a := matrix.MustNew(4,
		6, 4, 4, 4,
		5, 5, 7, 6,
		4, -9, 3, -7,
		9, 1, 7, -6,
	)
	assert.Equal(t, float32(-2120), a.Determinant())
	assert.True(t, a.IsInvertible())

	b := matrix.MustNew(4,
		-4, 2, -2, -3,
		9, 6, 2, 6,
		0, -5, 1, -5,
		0, 0, 0, 0,
	)
	assert.Equal(t, float32(0), b.Determinant())
	assert.False(t, b.IsInvertible())
	requirePanicsIs(t, matrix.ErrSingular, func() { _ = b.Inverse() })
}

func TestInverse_4x4(t *testing.T) {
	a := invertible4()
	b := a.Inverse()

	assert.Equal(t, float32(532), a.Determinant())
	assert.Equal(t, float32(-160), a.Cofactor(2, 3))
	assert.InDelta(t, -160.0/532.0, b.At(3, 2), 1e-6)
	assert.Equal(t, float32(105), a.Cofactor(3, 2))
	assert.InDelta(t, 105.0/532.0, b.At(2, 3), 1e-6)

	want := matrix.MustNew(4,
		0.21805, 0.45113, 0.24060, -0.04511,
		-0.80827, -1.45677, -0.44361, 0.52068,
		-0.07895, -0.22368, -0.05263, 0.19737,
		-0.52256, -0.81391, -0.30075, 0.30639,
	)
	requireMatrixEqual(t, want, b)
}

func TestInverse_MoreFixtures(t *testing.T) {
	want2 := matrix.MustNew(4,
		-0.15385, -0.15385, -0.28205, -0.53846,
		-0.07692, 0.12308, 0.02564, 0.03077,
		0.35897, 0.35897, 0.43590, 0.92308,
		-0.69231, -0.69231, -0.76923, -1.92308,
	)
	requireMatrixEqual(t, want2, fixtures4()[1].Inverse())

	want3 := matrix.MustNew(4,
		-0.04074, -0.07778, 0.14444, -0.22222,
		-0.07778, 0.03333, 0.36667, -0.33333,
		-0.02901, -0.14630, -0.10926, 0.12963,
		0.17778, 0.06667, -0.26667, 0.33333,
	)
	requireMatrixEqual(t, want3, fixtures4()[2].Inverse())
}

func TestInverse_ProductIsIdentity(t *testing.T) {
	for _, a := range fixtures4() {
		requireMatrixEqual(t, matrix.Identity(4), a.Mul(a.Inverse()))
		requireMatrixEqual(t, matrix.Identity(4), a.Inverse().Mul(a))
	}
	two := matrix.MustNew(2, 1, 5, -3, 2)
	requireMatrixEqual(t, matrix.Identity(2), two.Mul(two.Inverse()))
	three := matrix.MustNew(3, 1, 2, 6, -5, 8, -4, 2, 6, 4)
	requireMatrixEqual(t, matrix.Identity(3), three.Mul(three.Inverse()))
	requireMatrixEqual(t, matrix.MustNew(1, 0.25), matrix.MustNew(1, 4).Inverse())
	requirePanicsIs(t, matrix.ErrSingular, func() { _ = matrix.MustNew(1, 0).Inverse() })
}

func TestInverse_UndoesProduct(t *testing.T) {
	a := fixtures4()[3]
	b := matrix.MustNew(4,
		8, 2, 2, 2,
		3, -1, 7, 0,
		7, 0, 5, 4,
		6, -2, 0, 5,
	)
	c := a.Mul(b)
	requireMatrixEqual(t, a, c.Mul(b.Inverse()))
}

func TestInverse_Identity(t *testing.T) {
	for n := 1; n <= matrix.MaxSize; n++ {
		requireMatrixEqual(t, matrix.Identity(n), matrix.Identity(n).Inverse())
	}
}

func TestInverse_TransposeCommutes(t *testing.T) {
	a := matrix.MustNew(4,
		6, 4, 4, 4,
		5, 5, 7, 6,
		4, -9, 3, -7,
		9, 1, 7, -6,
	)
	requireMatrixEqual(t, a.Transpose().Inverse(), a.Inverse().Transpose())
}
