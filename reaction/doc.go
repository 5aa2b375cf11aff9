// Package reaction turns a chemical reaction string into a stoichiometric
// matrix.
//
// 🚀 What does it do?
//
//	Parse("H2 + O2 -> H2O", table)
//
//	        H2  O2  H2O
//	   H  [  2,  0,  -2 ]
//	   O  [  0,  2,  -1 ]
//
//	One row per element (first-seen order, reactants then products), one
//	column per compound (input order). Product columns are negated so that a
//	balanced coefficient vector lies in the matrix null space.
//
// ✨ Accepted syntax:
//   - separators "=", "->", "−>" (U+2212) and "→" (U+2192); exactly one
//   - "+" between compounds; whitespace anywhere is ignored
//   - a leading coefficient on a compound ("2H2O") is dropped, so balanced
//     output can be fed back in
//
// Compound syntax and its errors are those of package compound.
package reaction
