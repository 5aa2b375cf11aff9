// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with %w) and tests
// match them via errors.Is. No kernel panics on caller-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Context is
// attached with fmt.Errorf("ctx: %w", ErrX); callers keep using errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes (ragged rows,
	// vector length != Cols, pivot count larger than the matrix).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNoPivot is returned by ForwardEliminate when a column has no
	// non-zero entry at or below the diagonal.
	ErrNoPivot = errors.New("matrix: no pivot in column")

	// ErrZeroScale is returned by ScaleRow when asked to scale by exactly 0,
	// which would destroy the row.
	ErrZeroScale = errors.New("matrix: zero scale factor")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
