// Package tuple holds the small value types every other package is built on:
// homogeneous 4-component tuples (points and vectors) and RGB colors.
//
// 🚀 What is a tuple?
//
//	A Tuple is (x, y, z, w). The w component tells points from vectors:
//	  • w = 1: a point, a location in space; translation moves it
//	  • w = 0: a vector, a direction/offset; translation leaves it alone
//
//	Arithmetic keeps w meaningful: point − point = vector, point + vector =
//	point, vector + vector = vector. point + point gives w = 2, which is
//	deliberately left as an "undefined" tuple rather than an error.
//
// ✨ Key features:
//   - value semantics: every operation returns a new Tuple/Color
//   - float32 storage with a single tolerance (Epsilon = 1e-5) for equality
//   - Dot, Cross, Magnitude, Normalize for vectors
//   - Color with component-wise (Hadamard) blending
//
// ⚙️ Usage:
//
//	p := tuple.Point(-3, 4, 5)
//	v := tuple.Vector(1, 0, 0)
//	q := p.Add(v.Mul(2)) // point(-1, 4, 5)
//
// Precondition violations (Dot/Cross/Normalize on a point) panic with an
// error wrapping ErrNotVector; these are programmer errors, not input errors.
package tuple
