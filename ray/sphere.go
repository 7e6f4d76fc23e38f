// SPDX-License-Identifier: MIT

package ray

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rtc/matrix"
	"github.com/katalvlaran/rtc/tuple"
)

// Option configures a Sphere.
type Option func(*Sphere)

// WithTransform places the sphere in the world with m.
// Panics when m is not an invertible 4×4 matrix; a sphere that cannot be
// mapped back into its own space would make every Intersect call fail.
func WithTransform(m matrix.Matrix) Option {
	if m.Size() != matrix.HomogeneousSize {
		panic(fmt.Errorf("ray: WithTransform: size %d: %w", m.Size(), matrix.ErrNotHomogeneous))
	}
	if !m.IsInvertible() {
		panic(fmt.Errorf("ray: WithTransform: %w", matrix.ErrSingular))
	}
	inv := m.Inverse()

	return func(s *Sphere) {
		s.transform = m
		s.inverse = inv
	}
}

// Sphere is the unit sphere at the origin, with its object→world transform
// and that transform's inverse cached at construction.
type Sphere struct {
	transform matrix.Matrix
	inverse   matrix.Matrix
}

// NewSphere returns a unit sphere, by default untransformed.
func NewSphere(opts ...Option) *Sphere {
	s := &Sphere{
		transform: matrix.Identity(matrix.HomogeneousSize),
		inverse:   matrix.Identity(matrix.HomogeneousSize),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Transform returns the sphere's object→world matrix.
func (s *Sphere) Transform() matrix.Matrix { return s.transform }

// Intersect returns the t values where r crosses s, in ascending order.
//
// Implementation:
//   - Stage 1: r' = inverse(transform)·r.
//   - Stage 2: a = d·d, b = 2·d·(o−centre), c = |o−centre|² − 1.
//   - Stage 3: discriminant < 0 → miss (nil); otherwise both roots, the
//     tangent case returning the same t twice.
//
// Complexity: O(1).
func (s *Sphere) Intersect(r Ray) []float32 {
	local := r.Transform(s.inverse)
	toRay := local.Origin.Sub(tuple.Point(0, 0, 0))

	a := float64(local.Direction.Dot(local.Direction))
	b := 2 * float64(local.Direction.Dot(toRay))
	c := float64(toRay.Dot(toRay)) - 1

	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := float32((-b - sq) / (2 * a))
	t2 := float32((-b + sq) / (2 * a))
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	return []float32{t1, t2}
}
