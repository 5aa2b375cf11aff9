// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/stoich/reaction"
)

// Verify checks that coeffs conserve every element of rx: the reactant
// total equals the product total. coeffs follows rx.Compounds order.
func Verify(rx *reaction.Reaction, coeffs []*big.Int) error {
	if rx == nil {
		return ErrNilReaction
	}
	if len(coeffs) != len(rx.Compounds) {
		return fmt.Errorf("%w: %d coefficients for %d compounds", ErrNotBalanced, len(coeffs), len(rx.Compounds))
	}

	var term big.Int
	for _, sym := range rx.Elements {
		left, right := new(big.Int), new(big.Int)
		for j, c := range rx.Compounds {
			if coeffs[j] == nil {
				return fmt.Errorf("%w: coefficient %d is nil", ErrNotBalanced, j+1)
			}
			term.Mul(coeffs[j], big.NewInt(int64(c.Counts.Get(sym))))
			if c.Side == reaction.Product {
				right.Add(right, &term)
			} else {
				left.Add(left, &term)
			}
		}
		if left.Cmp(right) != 0 {
			return fmt.Errorf("%w: %s has %s on the left and %s on the right", ErrNotBalanced, sym, left, right)
		}
	}

	return nil
}
