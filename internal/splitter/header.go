// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import "strings"

// MatchHeader reports whether line is a markdown header of exactly the given
// level, returning the trimmed header text when it is. The line may carry its
// terminator and leading indentation. A match needs exactly level '#'
// characters, then at least one space or tab, then non-empty text; lines with
// a different '#' count, no separator, or no text are ordinary content.
func MatchHeader(line string, level int) (string, bool) {
	s := strings.TrimRight(line, "\r\n")
	s = strings.TrimLeft(s, " \t")

	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n != level {
		return "", false
	}

	rest := s[n:]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	text := strings.TrimSpace(rest)
	if text == "" {
		return "", false
	}
	return text, true
}
