// SPDX-License-Identifier: MIT

package reaction

import (
	"errors"
	"fmt"
)

// ErrMalformedReaction indicates a reaction without exactly one separator.
var ErrMalformedReaction = errors.New("reaction: malformed reaction")

// SeparatorError reports how many separators were found after
// normalization. It unwraps to ErrMalformedReaction.
type SeparatorError struct {
	Found int
}

func (e *SeparatorError) Error() string {
	return fmt.Sprintf("expected exactly 1 =, found %d", e.Found)
}

func (e *SeparatorError) Unwrap() error { return ErrMalformedReaction }

// CompoundError locates the compound that failed to parse. Err is the
// *compound.FormulaError, so errors.Is sees the compound sentinels.
type CompoundError struct {
	Side  Side
	Index int // 0-based position within Side
	Err   error
}

func (e *CompoundError) Error() string {
	return fmt.Sprintf("reaction: %s %d: %v", e.Side, e.Index+1, e.Err)
}

func (e *CompoundError) Unwrap() error { return e.Err }
