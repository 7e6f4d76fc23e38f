// SPDX-License-Identifier: MIT

// Package ppm: functional configuration for the encoder.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).
package ppm

// ---------- Defaults (single source of truth) ----------
const (
	// DefaultMaxLineLength is the longest line a P3 file may contain.
	DefaultMaxLineLength = 70

	// DefaultMaxColorValue is the channel maximum written in the header.
	DefaultMaxColorValue = 255

	// minLineLength fits the widest sample ("65535") and nothing else.
	minLineLength = 5

	// maxColorValue is the largest value the PPM format allows.
	maxColorValue = 65535
)

// ---------- Internal panic messages ----------
const (
	panicLineLengthInvalid = "ppm: WithMaxLineLength: length must be >= 5"
	panicColorValueInvalid = "ppm: WithMaxColorValue: value must be in [1, 65535]"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved encoder configuration.
type Options struct {
	maxLineLength int
	maxColorValue int
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		maxLineLength: DefaultMaxLineLength,
		maxColorValue: DefaultMaxColorValue,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxLineLength caps the length of every output line.
func WithMaxLineLength(n int) Option {
	if n < minLineLength {
		panic(panicLineLengthInvalid)
	}

	return func(o *Options) { o.maxLineLength = n }
}

// WithMaxColorValue sets the header's maximum channel value and the scale
// applied to [0,1] channels.
func WithMaxColorValue(v int) Option {
	if v < 1 || v > maxColorValue {
		panic(panicColorValueInvalid)
	}

	return func(o *Options) { o.maxColorValue = v }
}
