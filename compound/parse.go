// SPDX-License-Identifier: MIT

package compound

import (
	"math"
	"strconv"

	"github.com/katalvlaran/stoich/elements"
	"go.uber.org/zap"
)

const (
	detailTooManyClosing = "too many closing parentheses"
	detailTooFewClosing  = "not enough closing parentheses"
)

// frame is the parsing state of one nesting depth.
//   - acc: counts already committed at this depth.
//   - pending: the last element or closed group, waiting for its multiplier.
//   - elementMode: true when the next token must be an element symbol.
//   - open: offset of the '(' that opened this depth (-1 for depth 0).
type frame struct {
	acc         Counts
	pending     Counts
	elementMode bool
	open        int
}

func newFrame(open int) frame {
	return frame{elementMode: true, open: open}
}

// flush commits pending × mult into acc and clears pending.
// It reports false when a count would overflow int.
func (f *frame) flush(mult int) bool {
	for _, sym := range f.pending.order {
		v := f.pending.n[sym]
		if v != 0 && mult > math.MaxInt/v {
			return false
		}
		prev := f.acc.Get(sym)
		if prev > math.MaxInt-v*mult {
			return false
		}
		f.acc.Add(sym, v*mult)
	}
	f.pending = Counts{}

	return true
}

// Parse turns one formula into element counts.
//
// Implementation:
//   - Stage 1: reject the empty string.
//   - Stage 2: scan left to right over a stack of frames:
//     '(' flushes pending ×1, leaves the frame in multiplier mode and pushes;
//     ')' flushes pending ×1, pops, and hands the popped accumulator to the
//     parent as its pending tally (its multiplier comes next);
//     in element mode, leading digits are skipped (or rejected when strict),
//     then the longest 3/2/1-character prefix known to table is recorded
//     as pending {symbol: 1};
//     in multiplier mode, a digit run (default 1) multiplies pending into
//     the accumulator and the frame returns to element mode.
//   - Stage 3: require depth 0, flush, require at least one element.
//
// Errors (always *FormulaError):
//   - ErrEmptyFormula, ErrUnbalancedParentheses, ErrInvalidElementSymbol,
//     ErrMisplacedMultiplier (strict only), ErrMultiplierOverflow.
//
// Complexity:
//   - Time O(len(formula) · k) where k is the number of distinct symbols;
//     Space O(depth · k).
func Parse(formula string, table elements.Table, opts ...Option) (Counts, error) {
	o := gatherOptions(opts...)
	if formula == "" {
		return Counts{}, formulaErrorf(formula, 0, ErrEmptyFormula, "")
	}

	stack := []frame{newFrame(-1)}
	n := len(formula)
	i := 0
	for i < n {
		top := &stack[len(stack)-1]
		ch := formula[i]

		switch {
		case ch == '(':
			if !top.flush(1) {
				return Counts{}, formulaErrorf(formula, i, ErrMultiplierOverflow, "")
			}
			top.elementMode = false
			stack = append(stack, newFrame(i))
			i++

			continue

		case ch == ')':
			if len(stack) == 1 {
				return Counts{}, formulaErrorf(formula, i, ErrUnbalancedParentheses, detailTooManyClosing)
			}
			if !top.flush(1) {
				return Counts{}, formulaErrorf(formula, i, ErrMultiplierOverflow, "")
			}
			group := top.acc
			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1]
			parent.pending = group
			parent.elementMode = false
			i++

			continue
		}

		if top.elementMode {
			if isDigit(ch) {
				start := i
				for i < n && isDigit(formula[i]) {
					i++
				}
				if o.strict {
					return Counts{}, formulaErrorf(formula, start, ErrMisplacedMultiplier, "")
				}
				o.logger.Warn("ignoring leading multiplier",
					zap.String("formula", formula),
					zap.Int("offset", start),
					zap.String("multiplier", formula[start:i]))

				// Re-dispatch: the next byte may be a parenthesis.
				continue
			}

			size := matchSymbol(formula, i, table)
			if size == 0 {
				return Counts{}, formulaErrorf(formula, i, ErrInvalidElementSymbol, "")
			}
			top.pending = Counts{}
			top.pending.Add(formula[i:i+size], 1)
			top.elementMode = false
			i += size

			continue
		}

		// Multiplier mode.
		mult := 1
		if isDigit(ch) {
			start := i
			for i < n && isDigit(formula[i]) {
				i++
			}
			v, err := strconv.Atoi(formula[start:i])
			if err != nil {
				return Counts{}, formulaErrorf(formula, start, ErrMultiplierOverflow, "")
			}
			mult = v
		}
		if !top.flush(mult) {
			return Counts{}, formulaErrorf(formula, i, ErrMultiplierOverflow, "")
		}
		top.elementMode = true
	}

	if len(stack) != 1 {
		open := stack[len(stack)-1].open

		return Counts{}, formulaErrorf(formula, open, ErrUnbalancedParentheses, detailTooFewClosing)
	}
	root := &stack[0]
	if !root.flush(1) {
		return Counts{}, formulaErrorf(formula, n, ErrMultiplierOverflow, "")
	}
	if root.acc.Len() == 0 {
		return Counts{}, formulaErrorf(formula, 0, ErrEmptyFormula, "")
	}

	return root.acc, nil
}

// matchSymbol returns the length of the longest prefix of s[i:] (at most
// elements.MaxSymbolLen bytes) accepted by table, or 0.
func matchSymbol(s string, i int, table elements.Table) int {
	if table == nil {
		return 0
	}
	for size := elements.MaxSymbolLen; size >= 1; size-- {
		if i+size <= len(s) && table.Has(s[i:i+size]) {
			return size
		}
	}

	return 0
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
