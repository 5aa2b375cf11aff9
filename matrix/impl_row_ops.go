// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on Dense.
//
// Purpose:
//   - The three elementary operations (swap, scale, add a multiple) that
//     Gauss–Jordan elimination is built from, plus a row·vector dot product
//     used for consistency checks after solving.
//
// All operations work in place on the flat buffer with a fixed j=0..c-1
// order and validate indices before touching data.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/stoich/fraction"
)

const (
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
	opRowDot       = "RowDot"
)

func (m *Dense) checkRow(op string, i int) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("%s: row %d: %w", op, i, ErrOutOfRange)
	}

	return nil
}

// SwapRows exchanges rows i and j. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRow(opSwapRows, i); err != nil {
		return err
	}
	if err := m.checkRow(opSwapRows, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	ri, rj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[ri+k], m.data[rj+k] = m.data[rj+k], m.data[ri+k]
	}

	return nil
}

// ScaleRow multiplies row i by f. Scaling by zero is rejected with
// ErrZeroScale since it is never a valid elimination step.
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, f fraction.Fraction) error {
	if err := m.checkRow(opScaleRow, i); err != nil {
		return err
	}
	if f.IsZero() {
		return fmt.Errorf("%s: row %d: %w", opScaleRow, i, ErrZeroScale)
	}
	if f.IsOne() {
		return nil
	}
	base := i * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k] = m.data[base+k].Mul(f)
	}

	return nil
}

// AddScaledRow performs row[dst] += f * row[src].
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, f fraction.Fraction) error {
	if err := m.checkRow(opAddScaledRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(opAddScaledRow, src); err != nil {
		return err
	}
	if f.IsZero() {
		return nil
	}
	bd, bs := dst*m.c, src*m.c
	for k := 0; k < m.c; k++ {
		if m.data[bs+k].IsZero() {
			continue
		}
		m.data[bd+k] = m.data[bd+k].Add(f.Mul(m.data[bs+k]))
	}

	return nil
}

// RowDot returns Σ_k m[i][k] * x[k].
//
// Errors:
//   - ErrOutOfRange for a bad row index.
//   - ErrDimensionMismatch when len(x) != Cols().
func (m *Dense) RowDot(i int, x []fraction.Fraction) (fraction.Fraction, error) {
	if err := m.checkRow(opRowDot, i); err != nil {
		return fraction.Zero, err
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return fraction.Zero, fmt.Errorf("%s: %w", opRowDot, err)
	}
	sum := fraction.Zero
	base := i * m.c
	for k := 0; k < m.c; k++ {
		sum = sum.Add(m.data[base+k].Mul(x[k]))
	}

	return sum, nil
}
