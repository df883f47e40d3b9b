// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import "strings"

// Slug derives a filesystem-safe filename fragment from header text. The text
// is lower-cased, every rune that is not an ASCII letter, digit, or hyphen
// becomes an underscore, and runs of underscores collapse to one. Leading and
// trailing underscores are kept so the result tracks the header's shape.
func Slug(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	underscore := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			underscore = false
		default:
			if !underscore {
				b.WriteByte('_')
				underscore = true
			}
		}
	}
	return b.String()
}
