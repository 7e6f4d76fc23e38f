// SPDX-License-Identifier: MIT

package tuple

import (
	"fmt"
	"math"
)

// W component values for the two well-formed tuple kinds.
const (
	wVector float32 = 0
	wPoint  float32 = 1
)

// Operation tags for panic messages.
const (
	opDot       = "Dot"
	opCross     = "Cross"
	opNormalize = "Normalize"
)

// Tuple is a homogeneous 4-component coordinate.
// Points carry W=1, vectors carry W=0; other W values arise only from
// meaningless arithmetic (e.g. point+point) and are kept as-is.
type Tuple struct {
	X, Y, Z, W float32
}

// Point returns the tuple (x, y, z, 1).
func Point(x, y, z float32) Tuple { return Tuple{X: x, Y: y, Z: z, W: wPoint} }

// Vector returns the tuple (x, y, z, 0).
func Vector(x, y, z float32) Tuple { return Tuple{X: x, Y: y, Z: z, W: wVector} }

// IsPoint reports W == 1 exactly.
func (t Tuple) IsPoint() bool { return t.W == wPoint }

// IsVector reports W == 0 exactly.
func (t Tuple) IsVector() bool { return t.W == wVector }

// Add returns t + o component-wise.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

// Sub returns t - o component-wise. point - point yields the vector between them.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

// Neg returns -t, including the W component.
func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Mul scales every component by s.
func (t Tuple) Mul(s float32) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div divides every component by s.
func (t Tuple) Div(s float32) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Magnitude returns the Euclidean length of the xyz part.
func (t Tuple) Magnitude() float32 {
	return float32(math.Sqrt(float64(t.X*t.X + t.Y*t.Y + t.Z*t.Z)))
}

// Normalize returns the unit vector pointing the same way as t.
// Panics with ErrNotVector for non-vectors and ErrZeroLength for the zero vector.
func (t Tuple) Normalize() Tuple {
	mustVector(opNormalize, t)
	m := t.Magnitude()
	if m == 0 {
		panic(tupleErrorf(opNormalize, ErrZeroLength))
	}

	return Vector(t.X/m, t.Y/m, t.Z/m)
}

// Dot returns the scalar product of two vectors.
func (t Tuple) Dot(o Tuple) float32 {
	mustVector(opDot, t)
	mustVector(opDot, o)

	return t.X*o.X + t.Y*o.Y + t.Z*o.Z
}

// Cross returns the vector perpendicular to both t and o (right-handed).
func (t Tuple) Cross(o Tuple) Tuple {
	mustVector(opCross, t)
	mustVector(opCross, o)

	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Equal compares all four components within Epsilon.
func (t Tuple) Equal(o Tuple) bool {
	return FloatEqual(t.X, o.X) &&
		FloatEqual(t.Y, o.Y) &&
		FloatEqual(t.Z, o.Z) &&
		FloatEqual(t.W, o.W)
}

// String renders the tuple as "[ x y z w ]".
func (t Tuple) String() string {
	return fmt.Sprintf("[ %g %g %g %g ]", t.X, t.Y, t.Z, t.W)
}

func mustVector(op string, t Tuple) {
	if !t.IsVector() {
		panic(tupleErrorf(op, fmt.Errorf("w=%g: %w", t.W, ErrNotVector)))
	}
}
