// SPDX-License-Identifier: MIT

package balance

import (
	"math/big"
	"strings"
)

const (
	termSep  = " + "
	arrowSep = " -> "
)

// Term is one compound with its coefficient.
type Term struct {
	Formula     string   `json:"formula"`
	Coefficient *big.Int `json:"coefficient"`
}

// String renders the term with the coefficient omitted when it is 1.
func (t Term) String() string {
	if t.Coefficient == nil || t.Coefficient.IsInt64() && t.Coefficient.Int64() == 1 {
		return t.Formula
	}

	return t.Coefficient.String() + t.Formula
}

// Result is a balanced reaction.
type Result struct {
	Reactants []Term `json:"reactants"`
	Products  []Term `json:"products"`
}

// Coefficients returns every coefficient in column order, reactants first.
func (r *Result) Coefficients() []*big.Int {
	out := make([]*big.Int, 0, len(r.Reactants)+len(r.Products))
	for _, t := range r.Reactants {
		out = append(out, new(big.Int).Set(t.Coefficient))
	}
	for _, t := range r.Products {
		out = append(out, new(big.Int).Set(t.Coefficient))
	}

	return out
}

// String renders "2H2 + O2 -> 2H2O".
func (r *Result) String() string {
	var sb strings.Builder
	writeTerms(&sb, r.Reactants)
	sb.WriteString(arrowSep)
	writeTerms(&sb, r.Products)

	return sb.String()
}

func writeTerms(sb *strings.Builder, terms []Term) {
	for i, t := range terms {
		if i > 0 {
			sb.WriteString(termSep)
		}
		sb.WriteString(t.String())
	}
}
