// Package balance computes the smallest positive integer coefficients that
// balance a parsed reaction.
//
// Pipeline (exact rational arithmetic throughout, no floating point):
//
//  1. n compounds need at least n-1 independent element equations,
//     otherwise ErrUnderdetermined.
//  2. matrix.ForwardEliminate then matrix.BackSubstitute on the first n-1
//     columns (positional pivoting). A missing pivot is ErrUnsolvable.
//  3. The last compound's coefficient is fixed at 1 and coefficient i is
//     -a[i][n-1].
//  4. Rows beyond the pivots must be satisfied exactly, otherwise
//     ErrContradiction.
//  5. All coefficients are divided by their rational GCD. Any result that
//     is not strictly positive is ErrNotBalanceable.
//
// Example:
//
//	rx, _ := reaction.Parse("Fe + O2 = Fe2O3", elements.Periodic())
//	res, _ := balance.Balance(rx)
//	fmt.Println(res) // 4Fe + 3O2 -> 2Fe2O3
package balance
