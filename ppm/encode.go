// SPDX-License-Identifier: MIT

package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/rtc/canvas"
	"github.com/katalvlaran/rtc/tuple"
)

const magic = "P3"

// Encode writes c to w as a P3 image.
//
// Implementation:
//   - Stage 1: header "P3\n<w> <h>\n<max>\n".
//   - Stage 2: per row, emit r g b samples, wrapping before a sample would
//     push the line past the configured length.
//   - Stage 3: flush; a trailing newline always ends the last row.
//
// Errors:
//   - ErrNilCanvas; ErrWrite wrapping the writer's error.
func Encode(w io.Writer, c *canvas.Canvas, opts ...Option) error {
	if c == nil {
		return ppmErrorf(opEncode, ErrNilCanvas)
	}
	o := gatherOptions(opts...)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, c.Width(), c.Height(), o.maxColorValue)

	lw := lineWriter{w: bw, max: o.maxLineLength}
	var buf [8]byte
	c.Rows(func(_ int, row []tuple.Color) {
		for _, px := range row {
			lw.sample(strconv.AppendInt(buf[:0], scale(px.R, o.maxColorValue), 10))
			lw.sample(strconv.AppendInt(buf[:0], scale(px.G, o.maxColorValue), 10))
			lw.sample(strconv.AppendInt(buf[:0], scale(px.B, o.maxColorValue), 10))
		}
		lw.endLine()
	})

	if err := bw.Flush(); err != nil {
		return ppmErrorf(opEncode, fmt.Errorf("%w: %v", ErrWrite, err))
	}

	return nil
}

// scale maps a channel in [0,1] to [0,limit], rounding half away from zero.
func scale(v float32, limit int) int64 {
	s := math.Round(float64(v) * float64(limit))
	switch {
	case s < 0:
		return 0
	case s > float64(limit):
		return int64(limit)
	}

	return int64(s)
}

// lineWriter joins samples with single spaces and breaks lines at max.
type lineWriter struct {
	w   *bufio.Writer
	max int
	n   int // bytes on the current line
}

func (lw *lineWriter) sample(tok []byte) {
	switch {
	case lw.n == 0:
	case lw.n+1+len(tok) > lw.max:
		lw.w.WriteByte('\n')
		lw.n = 0
	default:
		lw.w.WriteByte(' ')
		lw.n++
	}
	lw.w.Write(tok)
	lw.n += len(tok)
}

func (lw *lineWriter) endLine() {
	lw.w.WriteByte('\n')
	lw.n = 0
}
