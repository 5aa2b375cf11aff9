// SPDX-License-Identifier: MIT

package balance

import "errors"

var (
	// ErrUnderdetermined indicates fewer independent equations than needed.
	ErrUnderdetermined = errors.New("balance: fewer equations than compounds")

	// ErrUnsolvable indicates a pivot column with no usable row. It is
	// returned together with the underlying matrix.ErrNoPivot.
	ErrUnsolvable = errors.New("balance: system is unsolvable")

	// ErrContradiction indicates a leftover equation the solution violates.
	ErrContradiction = errors.New("balance: system contains contradictions")

	// ErrNotBalanceable indicates a zero or negative normalized coefficient.
	ErrNotBalanceable = errors.New("balance: reaction cannot be balanced")

	// ErrNotBalanced is returned by Verify when some element is not conserved.
	ErrNotBalanced = errors.New("balance: coefficients do not balance")

	// ErrNilReaction indicates a nil reaction or a reaction without matrix.
	ErrNilReaction = errors.New("balance: nil reaction")
)
