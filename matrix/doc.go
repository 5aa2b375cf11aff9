// Package matrix provides an exact-rational dense matrix and the elimination
// kernels used to solve stoichiometric systems.
//
// The matrix package provides:
//
//   - Dense: a row-major rows×cols matrix of fraction.Fraction with
//     bounds-checked At/Set and deep Clone.
//   - Row operations (SwapRows, ScaleRow, AddScaledRow, RowDot) that never
//     allocate more than one row.
//   - ForwardEliminate and BackSubstitute: Gauss–Jordan over exact
//     rationals with positional ("first non-zero at or below") pivoting.
//
// Arithmetic is exact, so a zero test is a real zero test: no epsilon, no
// magnitude-based pivoting, no NaN/Inf policy.
//
// See the examples in this package and the balance package for usage.
package matrix
