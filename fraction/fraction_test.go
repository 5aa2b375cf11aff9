// SPDX-License-Identifier: MIT
package fraction_test

import (
	"testing"

	"github.com/katalvlaran/stoich/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFraction_ZeroValue verifies that the zero Fraction behaves as 0 in
// every operation.
func TestFraction_ZeroValue(t *testing.T) {
	t.Parallel()

	var z fraction.Fraction
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.Sign())
	assert.Equal(t, "0", z.String())
	assert.True(t, z.Add(fraction.FromInt(3)).Equal(fraction.FromInt(3)))
	assert.True(t, z.Mul(fraction.New(7, 2)).IsZero())
	assert.True(t, z.IsInt())
}

// TestFraction_Arithmetic checks that results are always reduced.
func TestFraction_Arithmetic(t *testing.T) {
	t.Parallel()

	half := fraction.New(1, 2)
	third := fraction.New(1, 3)

	tests := []struct {
		name string
		got  fraction.Fraction
		want string
	}{
		{"add", half.Add(third), "5/6"},
		{"sub", half.Sub(third), "1/6"},
		{"mul", half.Mul(third), "1/6"},
		{"neg", half.Neg(), "-1/2"},
		{"abs", half.Neg().Abs(), "1/2"},
		{"reduce", fraction.New(6, -4), "-3/2"},
		{"integral", fraction.New(8, 4), "2"},
		{"cancel", half.Add(half), "1"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.got.String())
		})
	}
}

// TestFraction_Div covers the happy path and division by zero.
func TestFraction_Div(t *testing.T) {
	t.Parallel()

	q, err := fraction.FromInt(3).Div(fraction.New(3, 2))
	require.NoError(t, err)
	assert.Equal(t, "2", q.String())

	_, err = fraction.One.Div(fraction.Zero)
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)
}

// TestFraction_Immutability ensures operations never alias operands.
func TestFraction_Immutability(t *testing.T) {
	t.Parallel()

	a := fraction.New(2, 3)
	b := a.Add(fraction.One)
	_ = b.Mul(fraction.FromInt(10))
	assert.Equal(t, "2/3", a.String())
	assert.Equal(t, "5/3", b.String())

	num := a.Num()
	num.SetInt64(99)
	assert.Equal(t, "2/3", a.String(), "Num must return a copy")
}

// TestFraction_Predicates checks IsOne, IsInt, Cmp and Int.
func TestFraction_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, fraction.One.IsOne())
	assert.True(t, fraction.New(4, 4).IsOne())
	assert.False(t, fraction.New(-1, 1).IsOne())
	assert.False(t, fraction.New(1, 2).IsInt())
	assert.Equal(t, -1, fraction.New(1, 3).Cmp(fraction.New(1, 2)))
	assert.Equal(t, 1, fraction.New(-1, 3).Cmp(fraction.New(-1, 2)))

	n, ok := fraction.New(12, 3).Int()
	require.True(t, ok)
	assert.Equal(t, int64(4), n.Int64())
	_, ok = fraction.New(1, 3).Int()
	assert.False(t, ok)
}

// TestParse covers valid literals, syntax errors and zero denominators.
func TestParse(t *testing.T) {
	t.Parallel()

	f, err := fraction.Parse("-6/8")
	require.NoError(t, err)
	assert.Equal(t, "-3/4", f.String())

	f, err = fraction.Parse("17")
	require.NoError(t, err)
	assert.Equal(t, "17", f.String())

	_, err = fraction.Parse("1/0")
	require.ErrorIs(t, err, fraction.ErrDivisionByZero)

	_, err = fraction.Parse("x/2")
	require.ErrorIs(t, err, fraction.ErrSyntax)
}

// TestFraction_TextRoundTrip ensures the text codec agrees with String.
func TestFraction_TextRoundTrip(t *testing.T) {
	t.Parallel()

	b, err := fraction.New(-5, 10).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-1/2", string(b))

	var f fraction.Fraction
	require.NoError(t, f.UnmarshalText(b))
	assert.True(t, f.Equal(fraction.New(-1, 2)))
	assert.Error(t, f.UnmarshalText([]byte("bogus")))
}

// TestNew_PanicsOnZeroDenominator documents the programmer-error contract.
func TestNew_PanicsOnZeroDenominator(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { fraction.New(1, 0) })
}
