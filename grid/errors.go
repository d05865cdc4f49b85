// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested dimensions are non-positive.
var ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside the valid range.
var ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

// ErrRaggedRows indicates that the rows passed to FromRows differ in length.
var ErrRaggedRows = errors.New("grid: rows have different lengths")

// ErrShapeMismatch indicates that two operands do not share the same shape.
var ErrShapeMismatch = errors.New("grid: shape mismatch")

// method tags used in error wrappers
const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxFromRow = "FromRows"
	ctxHadSum  = "HadamardSum"
)

// denseErrorf wraps err with the Dense method name and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
