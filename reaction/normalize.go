// SPDX-License-Identifier: MIT

package reaction

import (
	"strings"
	"unicode"
)

const (
	separator  = "="
	arrowASCII = "->"
	arrowUni   = "→"  // U+2192
	minusSign  = '−'
)

// Normalize canonicalizes raw reaction text:
//   - every Unicode whitespace rune is removed;
//   - U+2212 becomes '-' and runs of '-' collapse to one;
//   - every "->" and "→" becomes "=".
//
// Normalize never fails; counting separators is left to Parse.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	prevDash := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if r == minusSign {
			r = '-'
		}
		if r == '-' {
			if prevDash {
				continue
			}
			prevDash = true
		} else {
			prevDash = false
		}
		sb.WriteRune(r)
	}

	s := strings.ReplaceAll(sb.String(), arrowASCII, separator)

	return strings.ReplaceAll(s, arrowUni, separator)
}
