// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Manifest is the on-disk record of a split run, written alongside the
// segment files when requested. It lets a reader reassemble or audit the
// split without re-scanning the source document.
type Manifest struct {
	// Source is the input markdown file the segments were split from.
	Source string `json:"source" yaml:"source"`

	// Tag is the header level the run split on, e.g. "h2".
	Tag string `json:"tag" yaml:"tag"`

	// Generated is the time the split completed.
	Generated time.Time `json:"generated" yaml:"generated"`

	// Files lists one entry per written segment file, in ordinal order.
	Files []ManifestEntry `json:"files" yaml:"files"`
}

// ManifestEntry describes a single written segment file.
type ManifestEntry struct {
	Name   string `json:"name" yaml:"name"`
	Header string `json:"header,omitempty" yaml:"header,omitempty"`
	Lines  int    `json:"lines" yaml:"lines"`
}
