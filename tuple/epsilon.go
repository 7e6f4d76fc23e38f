// SPDX-License-Identifier: MIT

package tuple

// Epsilon is the absolute tolerance used by every approximate comparison in
// the module (tuples, colors and matrices).
const Epsilon float32 = 1e-5

// FloatEqual reports whether |a-b| < Epsilon.
// Complexity: O(1).
func FloatEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d < Epsilon
}
