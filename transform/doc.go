// Package transform builds the 4×4 homogeneous matrices used to move, scale,
// rotate, mirror and shear points and vectors.
//
// Every constructor returns a plain matrix.Matrix; transforms carry no state
// beyond their cells and are combined with ordinary matrix multiplication.
// In a product T = C·B·A the right-most factor is applied first, so
//
//	T := transform.Translation(10, 5, 7).
//		Mul(transform.Scaling(5, 5, 5)).
//		Mul(transform.RotationX(math.Pi / 2))
//
// rotates, then scales, then translates. Chain spells the same thing in
// application order:
//
//	T := transform.Chain(
//		transform.RotationX(math.Pi/2),
//		transform.Scaling(5, 5, 5),
//		transform.Translation(10, 5, 7),
//	)
//
// Rotations are right-handed and take radians.
package transform
