// SPDX-License-Identifier: MIT

package ppm

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCanvas indicates a nil *canvas.Canvas argument.
	ErrNilCanvas = errors.New("ppm: nil canvas")

	// ErrWrite wraps any failure while producing the output.
	ErrWrite = errors.New("ppm: write failed")
)

// Operation tags.
const (
	opEncode    = "Encode"
	opWriteFile = "WriteFile"
)

// ppmErrorf wraps err with an operation tag.
func ppmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
