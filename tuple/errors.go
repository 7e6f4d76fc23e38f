// SPDX-License-Identifier: MIT

package tuple

import (
	"errors"
	"fmt"
)

var (
	// ErrNotVector is raised when a vector-only operation receives a tuple with w != 0.
	ErrNotVector = errors.New("tuple: operand is not a vector")

	// ErrZeroLength is raised when normalizing a vector of magnitude 0.
	ErrZeroLength = errors.New("tuple: zero-length vector")
)

// tupleErrorf wraps err with an operation tag, keeping the sentinel matchable.
func tupleErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
