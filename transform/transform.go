// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/rtc/matrix"
)

// size is the side length of every transform matrix.
const size = matrix.HomogeneousSize

// Identity returns the 4×4 identity transform.
func Identity() matrix.Matrix { return matrix.Identity(size) }

// Translation moves points by (dx, dy, dz). Vectors (w=0) are unaffected.
func Translation(dx, dy, dz float32) matrix.Matrix {
	return matrix.MustNew(size,
		1, 0, 0, dx,
		0, 1, 0, dy,
		0, 0, 1, dz,
		0, 0, 0, 1,
	)
}

// Scaling multiplies each axis by sx, sy, sz.
func Scaling(sx, sy, sz float32) matrix.Matrix {
	return matrix.MustNew(size,
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	)
}

// Reflection mirrors across the y-z plane; it is Scaling(-1, 1, 1).
func Reflection() matrix.Matrix { return Scaling(-1, 1, 1) }

// RotationX rotates by rad radians around the x axis.
func RotationX(rad float64) matrix.Matrix {
	s, c := sincos(rad)

	return matrix.MustNew(size,
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY rotates by rad radians around the y axis.
func RotationY(rad float64) matrix.Matrix {
	s, c := sincos(rad)

	return matrix.MustNew(size,
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ rotates by rad radians around the z axis.
func RotationZ(rad float64) matrix.Matrix {
	s, c := sincos(rad)

	return matrix.MustNew(size,
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Shearing displaces each axis in proportion to the other two:
// xy moves x by y, xz moves x by z, yx moves y by x, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float32) matrix.Matrix {
	return matrix.MustNew(size,
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// Chain composes transforms in the order they should be applied:
// Chain(A, B, C) == C·B·A. Chain() is the identity.
func Chain(ts ...matrix.Matrix) matrix.Matrix {
	out := Identity()
	for _, t := range ts {
		out = t.Mul(out)
	}

	return out
}

// sincos returns sin and cos of rad, computed in float64 and narrowed once.
func sincos(rad float64) (s, c float32) {
	sf, cf := math.Sincos(rad)

	return float32(sf), float32(cf)
}
