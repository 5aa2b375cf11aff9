// SPDX-License-Identifier: MIT

package compound

import (
	"strconv"
	"strings"
)

// Counts maps element symbols to signed atom counts and remembers the order
// in which symbols were first added. Reading a missing symbol yields 0.
// The zero value is an empty, usable Counts.
type Counts struct {
	order []string
	n     map[string]int
}

// NewCounts returns Counts pre-sized for about size symbols.
func NewCounts(size int) Counts {
	return Counts{order: make([]string, 0, size), n: make(map[string]int, size)}
}

// Get returns the count for sym, or 0 when absent.
func (c Counts) Get(sym string) int {
	return c.n[sym]
}

// Has reports whether sym has ever been added.
func (c Counts) Has(sym string) bool {
	_, ok := c.n[sym]

	return ok
}

// Add increases the count of sym by k, recording sym on first use.
func (c *Counts) Add(sym string, k int) {
	if c.n == nil {
		c.n = make(map[string]int)
	}
	if _, ok := c.n[sym]; !ok {
		c.order = append(c.order, sym)
	}
	c.n[sym] += k
}

// Merge adds mult × every count of other, in other's order.
func (c *Counts) Merge(other Counts, mult int) {
	for _, sym := range other.order {
		c.Add(sym, mult*other.n[sym])
	}
}

// Scaled returns a copy with every count multiplied by k.
func (c Counts) Scaled(k int) Counts {
	out := NewCounts(len(c.order))
	out.Merge(c, k)

	return out
}

// Symbols returns the symbols in first-seen order.
func (c Counts) Symbols() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Len returns the number of distinct symbols.
func (c Counts) Len() int { return len(c.order) }

// Map returns a plain map copy of the counts.
func (c Counts) Map() map[string]int {
	out := make(map[string]int, len(c.n))
	for k, v := range c.n {
		out[k] = v
	}

	return out
}

// String renders "Fe:2 S:3 O:12" in first-seen order.
func (c Counts) String() string {
	var sb strings.Builder
	for i, sym := range c.order {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sym)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(c.n[sym]))
	}

	return sb.String()
}
