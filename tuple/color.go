// SPDX-License-Identifier: MIT

package tuple

// Color is a linear RGB triple. Channels are nominally in [0,1] but nothing
// clamps them until export (see package ppm).
type Color struct {
	R, G, B float32
}

// Predefined colors used by the example programs.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
)

// NewColor returns Color{r, g, b}.
func NewColor(r, g, b float32) Color { return Color{R: r, G: g, B: b} }

// Add returns c + o.
func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }

// Sub returns c - o.
func (c Color) Sub(o Color) Color { return Color{c.R - o.R, c.G - o.G, c.B - o.B} }

// Mul scales every channel by s.
func (c Color) Mul(s float32) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Hadamard returns the channel-wise product, used to blend a surface color
// with a light color.
func (c Color) Hadamard(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }

// Equal compares channels within Epsilon.
func (c Color) Equal(o Color) bool {
	return FloatEqual(c.R, o.R) && FloatEqual(c.G, o.G) && FloatEqual(c.B, o.B)
}
