// SPDX-License-Identifier: MIT
package fraction_test

import (
	"testing"

	"github.com/katalvlaran/stoich/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGCD covers integers, proper fractions, signs and zero handling.
func TestGCD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []fraction.Fraction
		want string
	}{
		{"empty", nil, "0"},
		{"all zero", []fraction.Fraction{fraction.Zero, fraction.Zero}, "0"},
		{"zero is neutral", []fraction.Fraction{fraction.Zero, fraction.New(-3, 4)}, "3/4"},
		{"integers", []fraction.Fraction{fraction.FromInt(12), fraction.FromInt(18)}, "6"},
		{"mixed", []fraction.Fraction{fraction.One, fraction.New(1, 2), fraction.One}, "1/2"},
		{"fe2o3", []fraction.Fraction{fraction.FromInt(2), fraction.New(3, 2), fraction.One}, "1/2"},
		{"thirds", []fraction.Fraction{fraction.New(2, 3), fraction.New(4, 9)}, "2/9"},
		{"negative operands", []fraction.Fraction{fraction.FromInt(-4), fraction.FromInt(6)}, "2"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, fraction.GCD(tc.in...).String())
		})
	}
}

// TestGCD_NormalizesToCoprimeIntegers verifies that dividing by the GCD
// leaves integral values with no common factor.
func TestGCD_NormalizesToCoprimeIntegers(t *testing.T) {
	t.Parallel()

	in := []fraction.Fraction{fraction.New(5, 6), fraction.New(10, 9), fraction.New(5, 3)}
	g := fraction.GCD(in...)
	require.False(t, g.IsZero())

	out := make([]fraction.Fraction, len(in))
	for i, f := range in {
		q, err := f.Div(g)
		require.NoError(t, err)
		require.True(t, q.IsInt(), "%s / %s must be integral", f, g)
		out[i] = q
	}
	assert.True(t, fraction.GCD(out...).IsOne())
	assert.Equal(t, []string{"3", "4", "6"}, []string{out[0].String(), out[1].String(), out[2].String()})
}

// TestFraction_GCDMethod checks the method form matches the function.
func TestFraction_GCDMethod(t *testing.T) {
	t.Parallel()

	assert.True(t, fraction.New(3, 4).GCD(fraction.New(9, 8)).Equal(fraction.GCD(fraction.New(3, 4), fraction.New(9, 8))))
}
