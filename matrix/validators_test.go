// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/stoich/fraction"
	"github.com/katalvlaran/stoich/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidatePivotCount covers nil inputs, valid and oversized counts.
func TestValidatePivotCount(t *testing.T) {
	t.Parallel()

	shape := func(r, c int) *matrix.Dense {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		m       *matrix.Dense
		k       int
		wantErr error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"zero", shape(2, 3), 0, nil},
		{"square part", shape(2, 3), 2, nil},
		{"more than rows", shape(2, 3), 3, matrix.ErrDimensionMismatch},
		{"more than cols", shape(4, 2), 3, matrix.ErrDimensionMismatch},
		{"negative", shape(2, 2), -1, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidatePivotCount(tc.m, tc.k)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateVecLen checks the length guard.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen(make([]fraction.Fraction, 3), 3))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)
}
