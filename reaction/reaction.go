// SPDX-License-Identifier: MIT

package reaction

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stoich/compound"
	"github.com/katalvlaran/stoich/elements"
	"github.com/katalvlaran/stoich/fraction"
	"github.com/katalvlaran/stoich/matrix"
)

// Side tells which side of the separator a compound is on.
type Side int

const (
	// Reactant is the left-hand side.
	Reactant Side = iota
	// Product is the right-hand side.
	Product
)

func (s Side) String() string {
	if s == Product {
		return "product"
	}

	return "reactant"
}

// Compound is one parsed term. Counts are as written (never negated).
type Compound struct {
	Formula string
	Side    Side
	Counts  compound.Counts
}

// Reaction is the parsed form of a reaction string.
type Reaction struct {
	Reactants []string   // formulas left of the separator, leading digits stripped
	Products  []string   // formulas right of the separator, leading digits stripped
	Elements  []string   // matrix row labels, first-seen order
	Compounds []Compound // matrix column labels, reactants then products
	Matrix    *matrix.Dense
}

// String renders the unbalanced reaction, e.g. "H2 + O2 = H2O".
func (rx *Reaction) String() string {
	return strings.Join(rx.Reactants, " + ") + " = " + strings.Join(rx.Products, " + ")
}

// Parse normalizes text, splits it into compounds, parses each with
// compound.Parse and builds the stoichiometric matrix.
//
// Errors:
//   - *SeparatorError (ErrMalformedReaction) unless exactly one separator.
//   - *CompoundError wrapping the first compound failure; an empty side or
//     a dangling "+" surfaces as compound.ErrEmptyFormula.
func Parse(text string, table elements.Table, opts ...compound.Option) (*Reaction, error) {
	norm := Normalize(text)
	if found := strings.Count(norm, separator); found != 1 {
		return nil, &SeparatorError{Found: found}
	}
	lhs, rhs, _ := strings.Cut(norm, separator)

	rx := &Reaction{}
	for _, part := range []struct {
		side Side
		text string
	}{{Reactant, lhs}, {Product, rhs}} {
		for i, tok := range strings.Split(part.text, "+") {
			formula := strings.TrimLeft(tok, "0123456789")
			counts, err := compound.Parse(formula, table, opts...)
			if err != nil {
				return nil, &CompoundError{Side: part.side, Index: i, Err: err}
			}
			rx.Compounds = append(rx.Compounds, Compound{Formula: formula, Side: part.side, Counts: counts})
			if part.side == Reactant {
				rx.Reactants = append(rx.Reactants, formula)
			} else {
				rx.Products = append(rx.Products, formula)
			}
		}
	}

	m, err := buildMatrix(rx)
	if err != nil {
		return nil, err
	}
	rx.Matrix = m

	return rx, nil
}

// buildMatrix collects element rows in first-seen order and fills one column
// per compound, negating product counts.
func buildMatrix(rx *Reaction) (*matrix.Dense, error) {
	row := make(map[string]int)
	for _, c := range rx.Compounds {
		for _, sym := range c.Counts.Symbols() {
			if _, ok := row[sym]; !ok {
				row[sym] = len(rx.Elements)
				rx.Elements = append(rx.Elements, sym)
			}
		}
	}

	m, err := matrix.NewDense(len(rx.Elements), len(rx.Compounds))
	if err != nil {
		return nil, fmt.Errorf("reaction: build matrix: %w", err)
	}
	for j, c := range rx.Compounds {
		sign := int64(1)
		if c.Side == Product {
			sign = -1
		}
		for _, sym := range c.Counts.Symbols() {
			v := fraction.FromInt(sign * int64(c.Counts.Get(sym)))
			if err = m.Set(row[sym], j, v); err != nil {
				return nil, fmt.Errorf("reaction: build matrix: %w", err)
			}
		}
	}

	return m, nil
}
