// SPDX-License-Identifier: MIT

package balance

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/stoich/fraction"
	"github.com/katalvlaran/stoich/matrix"
	"github.com/katalvlaran/stoich/reaction"
)

// Balance solves rx.Matrix · x = 0 for the smallest strictly positive
// integer vector x. rx is not modified.
//
// Errors:
//   - ErrNilReaction, ErrUnderdetermined, ErrUnsolvable (also matching
//     matrix.ErrNoPivot), ErrContradiction, ErrNotBalanceable.
//
// Complexity:
//   - Time O(n · m · n) rational operations for m elements, n compounds.
func Balance(rx *reaction.Reaction) (*Result, error) {
	if rx == nil || rx.Matrix == nil {
		return nil, ErrNilReaction
	}
	a := rx.Matrix.CloneDense()
	m, n := a.Shape()
	k := n - 1 // pivot columns; column k is the free variable
	if k > m {
		return nil, fmt.Errorf("%w: %d compounds, %d elements", ErrUnderdetermined, n, m)
	}

	if err := matrix.ForwardEliminate(a, k); err != nil {
		if errors.Is(err, matrix.ErrNoPivot) {
			return nil, fmt.Errorf("%w: %w", ErrUnsolvable, err)
		}

		return nil, fmt.Errorf("balance: %w", err)
	}
	if err := matrix.BackSubstitute(a, k); err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}

	x, err := solution(a, k)
	if err != nil {
		return nil, err
	}
	if err = checkResidue(a, k, x); err != nil {
		return nil, err
	}
	coeffs, err := normalize(x)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Reactants: make([]Term, 0, len(rx.Reactants)),
		Products:  make([]Term, 0, len(rx.Products)),
	}
	for j, c := range rx.Compounds {
		t := Term{Formula: c.Formula, Coefficient: coeffs[j]}
		if c.Side == reaction.Product {
			res.Products = append(res.Products, t)
		} else {
			res.Reactants = append(res.Reactants, t)
		}
	}

	return res, nil
}

// solution reads x from the reduced matrix: x[k] = 1, x[i] = -a[i][k].
func solution(a *matrix.Dense, k int) ([]fraction.Fraction, error) {
	x := make([]fraction.Fraction, k+1)
	for i := 0; i < k; i++ {
		v, err := a.At(i, k)
		if err != nil {
			return nil, fmt.Errorf("balance: %w", err)
		}
		x[i] = v.Neg()
	}
	x[k] = fraction.One

	return x, nil
}

// checkResidue requires every non-pivot row to vanish at x.
func checkResidue(a *matrix.Dense, k int, x []fraction.Fraction) error {
	for i := k; i < a.Rows(); i++ {
		r, err := a.RowDot(i, x)
		if err != nil {
			return fmt.Errorf("balance: %w", err)
		}
		if !r.IsZero() {
			return fmt.Errorf("%w: row %d leaves %s", ErrContradiction, i, r)
		}
	}

	return nil
}

// normalize divides x by its GCD and converts to positive integers.
func normalize(x []fraction.Fraction) ([]*big.Int, error) {
	g := fraction.GCD(x...)
	if g.IsZero() {
		return nil, ErrNotBalanceable
	}
	out := make([]*big.Int, len(x))
	for i, v := range x {
		q, err := v.Div(g)
		if err != nil {
			return nil, fmt.Errorf("balance: %w", err)
		}
		if q.Sign() <= 0 {
			return nil, fmt.Errorf("%w: coefficient %d is %s", ErrNotBalanceable, i+1, q)
		}
		n, ok := q.Int()
		if !ok {
			return nil, fmt.Errorf("%w: coefficient %d is %s", ErrNotBalanceable, i+1, q)
		}
		out[i] = n
	}

	return out, nil
}
