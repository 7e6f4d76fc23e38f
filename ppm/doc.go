// Package ppm exports a canvas as a plain-text PPM image (the "P3" flavour).
//
// Layout:
//
//	P3
//	<width> <height>
//	255
//	r g b r g b ...   (one canvas row per line group)
//
// Each channel is scaled from [0,1] to [0,255], rounded, and clamped. No
// output line is longer than 70 characters; longer rows wrap at the last
// space that fits. Every canvas row starts on a fresh line and the file ends
// with a newline, which some image readers require.
//
// Encode writes to any io.Writer. WriteFile renders into memory and places
// the bytes in a memory-mapped file sized to fit.
package ppm
