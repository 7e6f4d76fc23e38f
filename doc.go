// Package rtc is the math core of a "ray tracer challenge" renderer: tuples,
// 4×4 matrices and transforms, rays and spheres, and a canvas that exports to
// PPM.
//
// 🚀 What is in the box?
//
//	A small, dependency-light library that brings together:
//		• Tuples: points (w=1), vectors (w=0), colors, epsilon equality
//		• Matrices: N×N (N ≤ 4) product, transpose, determinant, inverse
//		• Transforms: translation, scaling, reflection, rotation, shearing
//		• Rays: Position(t), transformation, unit-sphere intersection
//		• Canvas + PPM: pixel grid and P3 export (optionally memory-mapped)
//		• Projectile: a toy physics loop for plotting trajectories
//
// Packages:
//
//	tuple/       Tuple, Point, Vector, Color, Epsilon
//	matrix/      the square-matrix engine
//	transform/   4×4 transform constructors and Chain
//	ray/         Ray and Sphere
//	canvas/      pixel grid
//	ppm/         P3 encoder and file writer
//	projectile/  projectile/environment simulation
//	cmd/         projectile, clock and matrices example programs
//
// Quick example:
//
//	t := transform.Chain(
//		transform.RotationX(math.Pi/2),
//		transform.Scaling(5, 5, 5),
//		transform.Translation(10, 5, 7),
//	)
//	p := t.MulTuple(tuple.Point(1, 0, 1)) // point(15, 0, 7)
//
//	go get github.com/katalvlaran/rtc
package rtc
