// SPDX-License-Identifier: MIT

package ray

import (
	"github.com/katalvlaran/rtc/matrix"
	"github.com/katalvlaran/rtc/tuple"
)

// Ray is a half-line: Origin is a point, Direction a vector (not necessarily unit).
type Ray struct {
	Origin    tuple.Tuple
	Direction tuple.Tuple
}

// New returns a Ray from origin along direction.
func New(origin, direction tuple.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns Origin + Direction·t.
func (r Ray) Position(t float32) tuple.Tuple {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform returns the ray with m applied to both origin and direction.
// The direction is not renormalized, so t values stay comparable with the
// untransformed ray.
func (r Ray) Transform(m matrix.Matrix) Ray {
	return Ray{Origin: m.MulTuple(r.Origin), Direction: m.MulTuple(r.Direction)}
}
