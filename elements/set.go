// SPDX-License-Identifier: MIT

package elements

import (
	"fmt"
	"sort"
)

// Table answers symbol-validity queries. Lookups are exact and
// case-sensitive. Implementations must be safe for concurrent use.
type Table interface {
	Has(symbol string) bool
}

// MaxSymbolLen is the longest symbol the parsers will try to match.
const MaxSymbolLen = 3

// Atom is one periodic-table entry.
type Atom struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Number int    `json:"number" yaml:"number"`
}

// Set is an immutable Table backed by a map. The zero value is an empty
// table that rejects every symbol.
type Set struct {
	bySymbol map[string]Atom
	atoms    []Atom // sorted by Number
}

var _ Table = (*Set)(nil)

// NewSet validates atoms and builds a Set.
//
// Errors:
//   - ErrInvalidSymbol for symbols outside [A-Z][a-z]{0,2}.
//   - ErrInvalidNumber for Number <= 0.
//   - ErrDuplicateSymbol when a symbol or a number repeats.
func NewSet(atoms ...Atom) (*Set, error) {
	s := &Set{
		bySymbol: make(map[string]Atom, len(atoms)),
		atoms:    make([]Atom, 0, len(atoms)),
	}
	numbers := make(map[int]string, len(atoms))
	for _, a := range atoms {
		if !ValidSymbol(a.Symbol) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, a.Symbol)
		}
		if a.Number <= 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrInvalidNumber, a.Symbol, a.Number)
		}
		if _, dup := s.bySymbol[a.Symbol]; dup {
			return nil, fmt.Errorf("%w: symbol %s", ErrDuplicateSymbol, a.Symbol)
		}
		if other, dup := numbers[a.Number]; dup {
			return nil, fmt.Errorf("%w: number %d (%s, %s)", ErrDuplicateSymbol, a.Number, other, a.Symbol)
		}
		numbers[a.Number] = a.Symbol
		s.bySymbol[a.Symbol] = a
		s.atoms = append(s.atoms, a)
	}
	sort.Slice(s.atoms, func(i, j int) bool { return s.atoms[i].Number < s.atoms[j].Number })

	return s, nil
}

// ValidSymbol reports whether sym has the shape of an element symbol:
// one uppercase ASCII letter followed by up to two lowercase letters.
func ValidSymbol(sym string) bool {
	if len(sym) == 0 || len(sym) > MaxSymbolLen {
		return false
	}
	if sym[0] < 'A' || sym[0] > 'Z' {
		return false
	}
	for i := 1; i < len(sym); i++ {
		if sym[i] < 'a' || sym[i] > 'z' {
			return false
		}
	}

	return true
}

// Has reports whether symbol is in the table.
func (s *Set) Has(symbol string) bool {
	if s == nil {
		return false
	}
	_, ok := s.bySymbol[symbol]

	return ok
}

// Atom returns the entry for symbol.
func (s *Set) Atom(symbol string) (Atom, bool) {
	if s == nil {
		return Atom{}, false
	}
	a, ok := s.bySymbol[symbol]

	return a, ok
}

// Atoms returns a copy of all entries ordered by atomic number.
func (s *Set) Atoms() []Atom {
	if s == nil {
		return nil
	}
	out := make([]Atom, len(s.atoms))
	copy(out, s.atoms)

	return out
}

// Len returns the number of atoms.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.atoms)
}
