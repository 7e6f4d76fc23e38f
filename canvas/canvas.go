// SPDX-License-Identifier: MIT

// Package canvas is a width×height grid of colors, stored row-major in one
// flat slice (offset = y*width + x). (0,0) is the top-left pixel.
//
// A Canvas is not safe for concurrent writers; readers may share it once
// drawing is done.
package canvas

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rtc/tuple"
)

var (
	// ErrBadShape indicates a non-positive width or height.
	ErrBadShape = errors.New("canvas: width and height must be > 0")

	// ErrOutOfRange indicates PixelAt outside the canvas.
	ErrOutOfRange = errors.New("canvas: pixel out of range")
)

// Canvas holds the pixel grid. Construct with New.
type Canvas struct {
	w, h   int
	pixels []tuple.Color
}

// New returns a width×height canvas with every pixel black.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrBadShape)
	}

	return &Canvas{w: width, h: height, pixels: make([]tuple.Color, width*height)}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.w }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.h }

// contains reports whether (x, y) is on the canvas.
func (c *Canvas) contains(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// PixelAt returns the color at (x, y). Panics with ErrOutOfRange off-canvas.
func (c *Canvas) PixelAt(x, y int) tuple.Color {
	if !c.contains(x, y) {
		panic(fmt.Errorf("PixelAt(%d,%d) on %dx%d: %w", x, y, c.w, c.h, ErrOutOfRange))
	}

	return c.pixels[y*c.w+x]
}

// WritePixel sets (x, y) to col. Writes that fall off the canvas are dropped
// and reported with false.
func (c *Canvas) WritePixel(x, y int, col tuple.Color) bool {
	if !c.contains(x, y) {
		return false
	}
	c.pixels[y*c.w+x] = col

	return true
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col tuple.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// Rows calls fn once per row, top to bottom. The row slice aliases the
// canvas and is only valid during the call.
func (c *Canvas) Rows(fn func(y int, row []tuple.Color)) {
	for y := 0; y < c.h; y++ {
		fn(y, c.pixels[y*c.w:(y+1)*c.w:(y+1)*c.w])
	}
}
