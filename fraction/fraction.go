// SPDX-License-Identifier: MIT

package fraction

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned by Div and Parse when the divisor or the
// denominator is exactly zero.
var ErrDivisionByZero = errors.New("fraction: division by zero")

// ErrSyntax is returned by Parse for input that is not "a" or "a/b".
var ErrSyntax = errors.New("fraction: invalid syntax")

// Fraction is an exact rational number in lowest terms.
// The zero value represents 0. Values are immutable: every method returns
// a new Fraction and never aliases the receiver's storage.
type Fraction struct {
	r *big.Rat // nil means 0
}

// Zero and One are shared constants; they are safe to copy and compare.
var (
	Zero = Fraction{}
	One  = FromInt(1)
)

// New returns num/den reduced. It panics when den == 0, which is a
// programmer error for literal construction; use Parse for untrusted input.
func New(num, den int64) Fraction {
	if den == 0 {
		panic("fraction: New: zero denominator")
	}

	return Fraction{r: new(big.Rat).SetFrac64(num, den)}
}

// FromInt returns n/1.
func FromInt(n int64) Fraction {
	return Fraction{r: new(big.Rat).SetInt64(n)}
}

// FromBigInt returns n/1; n is copied.
func FromBigInt(n *big.Int) Fraction {
	return Fraction{r: new(big.Rat).SetInt(n)}
}

// Parse reads "a" or "a/b" with optional sign.
func Parse(s string) (Fraction, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		for i := 0; i < len(s); i++ {
			if s[i] == '/' && isZeroDigits(s[i+1:]) {
				return Zero, ErrDivisionByZero
			}
		}

		return Zero, ErrSyntax
	}

	return Fraction{r: r}, nil
}

func isZeroDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}

	return true
}

// rat returns the backing value, substituting 0 for the zero Fraction.
// Callers must not mutate the result.
func (f Fraction) rat() *big.Rat {
	if f.r == nil {
		return new(big.Rat)
	}

	return f.r
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	return Fraction{r: new(big.Rat).Add(f.rat(), g.rat())}
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return Fraction{r: new(big.Rat).Sub(f.rat(), g.rat())}
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{r: new(big.Rat).Mul(f.rat(), g.rat())}
}

// Div returns f / g, or ErrDivisionByZero when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Zero, ErrDivisionByZero
	}

	return Fraction{r: new(big.Rat).Quo(f.rat(), g.rat())}, nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{r: new(big.Rat).Neg(f.rat())}
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	return Fraction{r: new(big.Rat).Abs(f.rat())}
}

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int {
	if f.r == nil {
		return 0
	}

	return f.r.Sign()
}

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool { return f.Sign() == 0 }

// IsOne reports whether f == 1.
func (f Fraction) IsOne() bool {
	return f.r != nil && f.r.IsInt() && f.r.Num().IsInt64() && f.r.Num().Int64() == 1
}

// IsInt reports whether the denominator is 1.
func (f Fraction) IsInt() bool { return f.rat().IsInt() }

// Cmp compares f and g: -1 if f < g, 0 if equal, +1 if f > g.
func (f Fraction) Cmp(g Fraction) int { return f.rat().Cmp(g.rat()) }

// Equal reports whether f and g denote the same rational.
func (f Fraction) Equal(g Fraction) bool { return f.Cmp(g) == 0 }

// Num returns a copy of the reduced numerator (carries the sign).
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.rat().Num()) }

// Den returns a copy of the reduced denominator (always > 0).
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.rat().Denom()) }

// Int returns the integer value and true when f is integral.
func (f Fraction) Int() (*big.Int, bool) {
	if !f.IsInt() {
		return nil, false
	}

	return f.Num(), true
}

// String renders "n" for integers and "n/d" otherwise.
func (f Fraction) String() string {
	r := f.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (f *Fraction) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*f = v

	return nil
}
