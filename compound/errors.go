// SPDX-License-Identifier: MIT
// Package compound: sentinel errors.
// Parse always returns a *FormulaError wrapping one of these; callers branch
// with errors.Is and read the formula and offset with errors.As.

package compound

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedParentheses indicates too many or too few closing parentheses.
	ErrUnbalancedParentheses = errors.New("compound: unbalanced parentheses")

	// ErrInvalidElementSymbol indicates that no 1–3 character prefix at the
	// scan position is a known element symbol.
	ErrInvalidElementSymbol = errors.New("compound: invalid element symbol")

	// ErrEmptyFormula indicates an empty formula or one that names no element.
	ErrEmptyFormula = errors.New("compound: empty formula")

	// ErrMisplacedMultiplier indicates a multiplier where an element was
	// expected (only reported under WithStrictMultipliers).
	ErrMisplacedMultiplier = errors.New("compound: misplaced multiplier")

	// ErrMultiplierOverflow indicates a count that does not fit in an int.
	ErrMultiplierOverflow = errors.New("compound: multiplier overflow")
)

// FormulaError locates a parse failure.
type FormulaError struct {
	Formula string // the formula as given to Parse
	Offset  int    // byte offset of the offending character
	Detail  string // optional human-readable refinement
	Err     error  // one of the sentinels above
}

func (e *FormulaError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v in %q: %s", e.Err, e.Formula, e.Detail)
	}

	return fmt.Sprintf("%v in %q at offset %d", e.Err, e.Formula, e.Offset)
}

func (e *FormulaError) Unwrap() error { return e.Err }

func formulaErrorf(formula string, offset int, err error, detail string) *FormulaError {
	return &FormulaError{Formula: formula, Offset: offset, Detail: detail, Err: err}
}
