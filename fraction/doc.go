// Package fraction implements exact rational arithmetic for the balancing
// pipeline.
//
// 🚀 What is a Fraction?
//
//	An immutable numerator/denominator pair kept in lowest terms with a
//	positive denominator. Every operation returns a fresh, reduced value,
//	so exact-zero tests (pivot search, contradiction checks) are reliable.
//
// ✨ Key features:
//   - zero value is a usable 0
//   - Add, Sub, Mul, Div, Neg, Abs, Cmp on arbitrary-precision integers
//   - GCD of fractions: gcd(numerators) / lcm(denominators)
//   - String renders "3", "-1/2", "7/4"
//
// ⚙️ Usage:
//
//	half := fraction.New(1, 2)
//	g := fraction.GCD(fraction.FromInt(2), half) // 1/2
//	q, err := fraction.FromInt(3).Div(g)         // 6
//
// No floating point is ever involved.
package fraction
