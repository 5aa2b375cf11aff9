// SPDX-License-Identifier: MIT
// Package matrix - exact Gauss–Jordan elimination kernels.
//
// Purpose:
//   - Reduce the leading k columns of a rational matrix to the identity
//     (rows 0..k-1) with zeros below, in two explicit phases so callers can
//     inspect the trailing columns and the non-pivot rows afterwards.
//
// Pivoting policy:
//   - Positional: the first row at or below the diagonal with a non-zero
//     entry wins. Arithmetic is exact, so magnitude-based pivoting would buy
//     nothing and would make the row order harder to reason about.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/stoich/fraction"
)

const (
	opForward = "ForwardEliminate"
	opBack    = "BackSubstitute"
)

// PivotError reports the column in which ForwardEliminate found no pivot.
// It unwraps to ErrNoPivot.
type PivotError struct {
	Column int
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("%s: column %d: %v", opForward, e.Column, ErrNoPivot)
}

func (e *PivotError) Unwrap() error { return ErrNoPivot }

// ForwardEliminate runs forward elimination on the first k columns of m,
// in place.
//
// Implementation:
//   - Stage 1: validate m and k (k <= Rows, k <= Cols).
//   - Stage 2: for i = 0..k-1:
//     find the first row p >= i with m[p][i] != 0 (none: *PivotError),
//     swap rows p and i, scale row i by 1/m[i][i],
//     and for every row j > i subtract m[j][i] * row i.
//
// Postcondition:
//   - m[i][i] == 1 for i < k and m[j][i] == 0 for j > i, i < k.
//
// Complexity:
//   - Time O(k * r * c), Space O(1) beyond the matrix.
func ForwardEliminate(m *Dense, k int) error {
	if err := ValidatePivotCount(m, k); err != nil {
		return fmt.Errorf("%s: %w", opForward, err)
	}

	var (
		i, j, p int
		pivot   fraction.Fraction
		inv     fraction.Fraction
		err     error
	)
	for i = 0; i < k; i++ {
		// Locate pivot: first non-zero at or below the diagonal.
		p = -1
		for j = i; j < m.r; j++ {
			if !m.data[j*m.c+i].IsZero() {
				p = j
				break
			}
		}
		if p < 0 {
			return &PivotError{Column: i}
		}
		if err = m.SwapRows(i, p); err != nil {
			return fmt.Errorf("%s: %w", opForward, err)
		}

		// Normalize the pivot row so the pivot is exactly 1.
		pivot = m.data[i*m.c+i]
		if inv, err = fraction.One.Div(pivot); err != nil {
			return fmt.Errorf("%s: %w", opForward, err)
		}
		if err = m.ScaleRow(i, inv); err != nil {
			return fmt.Errorf("%s: %w", opForward, err)
		}

		// Clear column i below the pivot.
		for j = i + 1; j < m.r; j++ {
			if err = m.AddScaledRow(j, i, m.data[j*m.c+i].Neg()); err != nil {
				return fmt.Errorf("%s: %w", opForward, err)
			}
		}
	}

	return nil
}

// BackSubstitute clears the first k columns above the diagonal, in place.
// It expects the ForwardEliminate postcondition (unit pivots on the
// diagonal, zeros below) and leaves rows 0..k-1 in reduced row echelon form
// over those columns.
//
// Implementation:
//   - for i = k-1 down to 0, for every row j < i: row j -= m[j][i] * row i.
//
// Complexity:
//   - Time O(k² * c).
func BackSubstitute(m *Dense, k int) error {
	if err := ValidatePivotCount(m, k); err != nil {
		return fmt.Errorf("%s: %w", opBack, err)
	}
	for i := k - 1; i >= 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if err := m.AddScaledRow(j, i, m.data[j*m.c+i].Neg()); err != nil {
				return fmt.Errorf("%s: %w", opBack, err)
			}
		}
	}

	return nil
}
