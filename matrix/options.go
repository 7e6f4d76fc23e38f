// SPDX-License-Identifier: MIT

// Package matrix: numeric policy.
// The engine has exactly one tunable, the size cap; the equality tolerance is
// shared with package tuple so points, colors and matrices agree on "equal".
package matrix

import "github.com/katalvlaran/rtc/tuple"

// MaxSize is the largest accepted side length. Cofactor expansion is
// factorial in N, so the engine refuses anything beyond homogeneous 3D.
const MaxSize = 4

// HomogeneousSize is the side length of matrices that act on tuples.
const HomogeneousSize = 4

// DefaultEpsilon is the absolute per-cell tolerance used by Equal.
const DefaultEpsilon = tuple.Epsilon

// validSize reports whether n is an accepted side length.
func validSize(n int) bool { return n >= 1 && n <= MaxSize }
