// Package ray evaluates rays and intersects them with spheres.
//
// A Ray is an origin point plus a direction vector. Position(t) walks t
// direction-lengths along it; negative t is legal and lies behind the origin.
//
// Sphere is the unit sphere centred at the origin, placed in the world by its
// own transform. Intersect moves the ray into sphere space with the inverse
// of that transform and solves the quadratic |o + t·d|² = 1.
package ray
