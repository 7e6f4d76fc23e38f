// SPDX-License-Identifier: MIT

// Package config loads the optional JSON scene files of the example commands.
// A command fills its config struct with defaults, then Load overlays the
// fields present in the file; absent fields keep their defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrDecode indicates a file that is not valid JSON for the target struct.
var ErrDecode = errors.New("config: cannot decode")

// Load decodes the JSON file at path into dst. An empty path is a no-op.
// Unknown fields are rejected so typos do not silently fall back to defaults.
func Load[T any](path string, dst *T) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(dst); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrDecode, err)
	}

	return nil
}
