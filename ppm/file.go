// SPDX-License-Identifier: MIT

package ppm

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/rtc/canvas"
)

// WriteFile encodes c and stores it at path, replacing any existing file.
//
// Implementation:
//   - Stage 1: Encode into memory to learn the exact size.
//   - Stage 2: create the file and Truncate it to that size.
//   - Stage 3: map it read-write, copy the image in, Flush and Unmap.
//
// Errors:
//   - anything from Encode; ErrWrite wrapping the file or mapping failure.
func WriteFile(path string, c *canvas.Canvas, opts ...Option) (err error) {
	var buf bytes.Buffer
	if err = Encode(&buf, c, opts...); err != nil {
		return ppmErrorf(opWriteFile, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return writeFileErr(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = writeFileErr(path, cerr)
		}
	}()

	if err = f.Truncate(int64(buf.Len())); err != nil {
		return writeFileErr(path, err)
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return writeFileErr(path, err)
	}
	copy(data, buf.Bytes())

	if err = data.Flush(); err != nil {
		_ = data.Unmap()
		return writeFileErr(path, err)
	}
	if err = data.Unmap(); err != nil {
		return writeFileErr(path, err)
	}

	return nil
}

func writeFileErr(path string, err error) error {
	return ppmErrorf(opWriteFile, fmt.Errorf("%s: %w: %v", path, ErrWrite, err))
}
