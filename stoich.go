// SPDX-License-Identifier: MIT

package stoich

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stoich/balance"
	"github.com/katalvlaran/stoich/compound"
	"github.com/katalvlaran/stoich/elements"
	"github.com/katalvlaran/stoich/reaction"
)

// Balance parses text against table, balances it and verifies that every
// element is conserved before returning.
func Balance(text string, table elements.Table, opts ...compound.Option) (*balance.Result, error) {
	rx, err := reaction.Parse(text, table, opts...)
	if err != nil {
		return nil, err
	}
	res, err := balance.Balance(rx)
	if err != nil {
		return nil, err
	}
	if err = balance.Verify(rx, res.Coefficients()); err != nil {
		return nil, fmt.Errorf("stoich: post-condition: %w", err)
	}

	return res, nil
}

// Kind classifies pipeline errors.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnbalancedParentheses
	KindInvalidElementSymbol
	KindEmptyFormula
	KindMisplacedMultiplier
	KindMultiplierOverflow
	KindMalformedReaction
	KindUnderdetermined
	KindUnsolvable
	KindContradiction
	KindNotBalanceable
)

var kindNames = [...]string{
	KindUnknown:               "unknown",
	KindUnbalancedParentheses: "unbalanced_parentheses",
	KindInvalidElementSymbol:  "invalid_element_symbol",
	KindEmptyFormula:          "empty_formula",
	KindMisplacedMultiplier:   "misplaced_multiplier",
	KindMultiplierOverflow:    "multiplier_overflow",
	KindMalformedReaction:     "malformed_reaction",
	KindUnderdetermined:       "underdetermined",
	KindUnsolvable:            "unsolvable",
	KindContradiction:         "contradiction",
	KindNotBalanceable:        "not_balanceable",
}

// String returns the snake_case name used in HTTP responses and metric labels.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}

	return kindNames[k]
}

// Kinds lists every kind, KindUnknown first.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

var kindSentinels = []struct {
	err  error
	kind Kind
}{
	{compound.ErrUnbalancedParentheses, KindUnbalancedParentheses},
	{compound.ErrInvalidElementSymbol, KindInvalidElementSymbol},
	{compound.ErrEmptyFormula, KindEmptyFormula},
	{compound.ErrMisplacedMultiplier, KindMisplacedMultiplier},
	{compound.ErrMultiplierOverflow, KindMultiplierOverflow},
	{reaction.ErrMalformedReaction, KindMalformedReaction},
	{balance.ErrUnderdetermined, KindUnderdetermined},
	{balance.ErrUnsolvable, KindUnsolvable},
	{balance.ErrContradiction, KindContradiction},
	{balance.ErrNotBalanceable, KindNotBalanceable},
}

// KindOf maps err to its Kind; nil and foreign errors are KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, s := range kindSentinels {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}

	return KindUnknown
}
