// SPDX-License-Identifier: MIT

package projectile

import (
	"math"

	"github.com/katalvlaran/rtc/canvas"
	"github.com/katalvlaran/rtc/tuple"
)

// CanvasXY maps a world position to canvas pixel coordinates: x rounds
// directly, y is flipped so that world y = 0 lands on the bottom row.
func CanvasXY(c *canvas.Canvas, pos tuple.Tuple) (x, y int) {
	x = int(math.Round(float64(pos.X)))
	y = c.Height() - int(math.Round(float64(pos.Y)))

	return x, y
}

// Plot marks p's position on c with col and reports whether it was on-canvas.
func Plot(c *canvas.Canvas, p Projectile, col tuple.Color) bool {
	x, y := CanvasXY(c, p.Position)

	return c.WritePixel(x, y, col)
}
