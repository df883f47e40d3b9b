// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Segment is a contiguous slice of a markdown document, bounded by headers of
// the target level or by the document edges.
type Segment struct {
	// Index is the 0-based position of the segment in document order.
	// Index 0 is reserved for content preceding the first matching header.
	Index int `json:"index" yaml:"index"`

	// Header is the trimmed header text that opened this segment. Empty for
	// the leading segment.
	Header string `json:"header,omitempty" yaml:"header,omitempty"`

	// Content holds the segment's lines verbatim, original line endings
	// included. The header line itself is the first line of every non-leading
	// segment, so concatenating all segment contents in index order
	// reproduces the source document exactly.
	Content string `json:"content" yaml:"content"`

	// Filename is the derived output name, e.g. "01_phase_1_planning.md".
	Filename string `json:"filename" yaml:"filename"`
}

// LineCount returns the number of lines in the segment's content. A final
// line without a terminator still counts; empty content counts as zero.
func (s Segment) LineCount() int {
	if s.Content == "" {
		return 0
	}
	n := strings.Count(s.Content, "\n")
	if !strings.HasSuffix(s.Content, "\n") {
		n++
	}
	return n
}
