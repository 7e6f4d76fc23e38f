package ppm_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rtc/canvas"
	"github.com/katalvlaran/rtc/ppm"
	"github.com/katalvlaran/rtc/tuple"
)

func mustCanvas(t *testing.T, w, h int) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(w, h)
	require.NoError(t, err)

	return c
}

func encode(t *testing.T, c *canvas.Canvas, opts ...ppm.Option) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, ppm.Encode(&buf, c, opts...))

	return strings.Split(buf.String(), "\n")
}

func TestEncode_Header(t *testing.T) {
	lines := encode(t, mustCanvas(t, 5, 3))
	require.Equal(t, []string{"P3", "5 3", "255"}, lines[:3])
}

func TestEncode_PixelData(t *testing.T) {
	c := mustCanvas(t, 5, 3)
	c.WritePixel(0, 0, tuple.NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, tuple.NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, tuple.NewColor(-0.5, 0, 1))

	lines := encode(t, c)
	require.Equal(t, []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}, lines[3:6])
}

func TestEncode_SplitsLongLines(t *testing.T) {
	c := mustCanvas(t, 10, 2)
	c.Fill(tuple.NewColor(1, 0.8, 0.6))

	lines := encode(t, c)
	require.Equal(t, []string{
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
	}, lines[3:7])
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), ppm.DefaultMaxLineLength)
	}
}

func TestEncode_EndsWithNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ppm.Encode(&buf, mustCanvas(t, 5, 3)))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestEncode_Options(t *testing.T) {
	c := mustCanvas(t, 4, 1)
	c.Fill(tuple.NewColor(1, 0.5, 0))

	lines := encode(t, c, ppm.WithMaxLineLength(12), ppm.WithMaxColorValue(15))
	require.Equal(t, []string{"P3", "4 1", "15", "15 8 0 15 8", "0 15 8 0 15", "8 0", ""}, lines)

	assert.Panics(t, func() { ppm.WithMaxLineLength(4) })
	assert.Panics(t, func() { ppm.WithMaxColorValue(0) })
	assert.Panics(t, func() { ppm.WithMaxColorValue(70000) })
}

func TestEncode_NilCanvas(t *testing.T) {
	err := ppm.Encode(&bytes.Buffer{}, nil)
	require.ErrorIs(t, err, ppm.ErrNilCanvas)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_WriterError(t *testing.T) {
	err := ppm.Encode(failingWriter{}, mustCanvas(t, 2, 2))
	require.ErrorIs(t, err, ppm.ErrWrite)
}
