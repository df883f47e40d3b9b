// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package splitter partitions a markdown document into per-section segments
// at headers of a chosen level and persists each segment as its own file.
// Segmentation is a pure pass over the text; all file I/O is kept in
// ReadDocument, WriteSegments, and WriteManifest so the split itself can be
// tested without touching the filesystem.
package splitter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/mdsplit/pkg/types"
)

var (
	// ErrInputNotFound indicates the input file does not exist or cannot be read.
	ErrInputNotFound = errors.New("input file not found or unreadable")

	// ErrInvalidHeaderLevel indicates a header level outside h1 through h6.
	ErrInvalidHeaderLevel = errors.New("invalid header level")
)

// IntroName is the fixed filename for the leading segment, which holds any
// content before the first matching header.
const IntroName = "00_introduction.md"

// ParseTag maps a header tag such as "h2" to its numeric level 1-6.
// Matching is case-insensitive.
func ParseTag(tag string) (int, error) {
	t := strings.ToLower(tag)
	if len(t) == 2 && t[0] == 'h' && t[1] >= '1' && t[1] <= '6' {
		return int(t[1] - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q, must be one of h1, h2, h3, h4, h5, h6", ErrInvalidHeaderLevel, tag)
}

// Split partitions a document into segments at headers of the given level.
// Lines keep their original terminators, so concatenating the returned
// segments' contents in order reproduces content byte-for-byte. The leading
// segment is always present, even when the document opens with a matching
// header; a document with no matching headers yields exactly one segment.
func Split(content string, level int) ([]types.Segment, error) {
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("%w: %d, must be between 1 and 6", ErrInvalidHeaderLevel, level)
	}

	var segments []types.Segment
	cur := types.Segment{Index: 0, Filename: IntroName}
	var buf strings.Builder

	for _, line := range splitLines(content) {
		if text, ok := MatchHeader(line, level); ok {
			cur.Content = buf.String()
			buf.Reset()
			segments = append(segments, cur)

			idx := cur.Index + 1
			cur = types.Segment{
				Index:    idx,
				Header:   text,
				Filename: fmt.Sprintf("%02d_%s.md", idx, Slug(text)),
			}
		}
		buf.WriteString(line)
	}
	cur.Content = buf.String()
	segments = append(segments, cur)

	return segments, nil
}

// splitLines cuts content into lines that keep their terminators, so a "\r\n"
// line survives reassembly unchanged. A final line without a terminator is
// returned as-is.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ReadDocument reads the input markdown file fully into memory.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return string(data), nil
}
