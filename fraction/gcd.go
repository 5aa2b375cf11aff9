// SPDX-License-Identifier: MIT

package fraction

import "math/big"

// GCD returns the greatest common divisor of the given fractions, defined as
// gcd(|numerators|) / lcm(denominators) over their reduced forms.
//
// Behavior highlights:
//   - GCD() and GCD(0, 0, ...) are 0.
//   - Zero operands are neutral: GCD(0, x) == |x|.
//   - The result is never negative.
//   - Dividing every operand by a non-zero result yields coprime integers.
//
// Complexity:
//   - Time O(k · M(b)) for k operands of bit length b.
func GCD(fs ...Fraction) Fraction {
	num := new(big.Int) // running gcd of numerators (0 is neutral)
	den := big.NewInt(1)
	var tmp big.Int
	for _, f := range fs {
		if f.IsZero() {
			continue
		}
		r := f.rat()
		n := new(big.Int).Abs(r.Num())
		num.GCD(nil, nil, num, n)

		// lcm(den, d) = den / gcd(den, d) * d
		d := r.Denom()
		tmp.GCD(nil, nil, den, d)
		den.Quo(den, &tmp)
		den.Mul(den, d)
	}
	if num.Sign() == 0 {
		return Zero
	}

	return Fraction{r: new(big.Rat).SetFrac(num, den)}
}

// GCD returns GCD(f, g); see the package-level GCD.
func (f Fraction) GCD(g Fraction) Fraction {
	return GCD(f, g)
}
