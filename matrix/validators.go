// SPDX-License-Identifier: MIT
// Package matrix: central validators shared by the kernels.
// Every kernel calls these before touching data so error priority is
// uniform: nil -> shape -> index.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/stoich/fraction"
)

// validatorErrorf tags a sentinel with the validator that produced it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix for a nil *Dense.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen checks len(x) == n.
func ValidateVecLen(x []fraction.Fraction, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidatePivotCount checks that k pivot columns fit in m: 0 <= k <= Cols()
// and k <= Rows().
func ValidatePivotCount(m *Dense, k int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if k < 0 || k > m.c || k > m.r {
		return validatorErrorf("ValidatePivotCount",
			fmt.Errorf("%d pivots for %dx%d: %w", k, m.r, m.c, ErrDimensionMismatch))
	}

	return nil
}
