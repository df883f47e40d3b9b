// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import "testing"

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		level    int
		wantText string
		wantOK   bool
	}{
		{
			name:     "exact level match",
			line:     "## Phase 1: Planning\n",
			level:    2,
			wantText: "Phase 1: Planning",
			wantOK:   true,
		},
		{
			name:     "indented header matches",
			line:     "  \t## Indented Section\n",
			level:    2,
			wantText: "Indented Section",
			wantOK:   true,
		},
		{
			name:     "tab separator matches",
			line:     "##\tTabbed\n",
			level:    2,
			wantText: "Tabbed",
			wantOK:   true,
		},
		{
			name:  "deeper level is content",
			line:  "### Sub\n",
			level: 2,
		},
		{
			name:  "shallower level is content",
			line:  "# Title\n",
			level: 2,
		},
		{
			name:  "no separator is content",
			line:  "##NoSpace\n",
			level: 2,
		},
		{
			name:  "no header text is content",
			line:  "## \n",
			level: 2,
		},
		{
			name:  "bare marker is content",
			line:  "##\n",
			level: 2,
		},
		{
			name:  "plain text is content",
			line:  "just a line\n",
			level: 2,
		},
		{
			name:  "blank line is content",
			line:  "\n",
			level: 2,
		},
		{
			name:     "crlf terminator is stripped before matching",
			line:     "## Windows Section\r\n",
			level:    2,
			wantText: "Windows Section",
			wantOK:   true,
		},
		{
			name:     "last line without terminator",
			line:     "###### Deep",
			level:    6,
			wantText: "Deep",
			wantOK:   true,
		},
		{
			name:     "trailing whitespace trimmed from text",
			line:     "# Title   \n",
			level:    1,
			wantText: "Title",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := MatchHeader(tt.line, tt.level)
			if ok != tt.wantOK {
				t.Fatalf("MatchHeader(%q, %d) ok = %v, want %v", tt.line, tt.level, ok, tt.wantOK)
			}
			if text != tt.wantText {
				t.Errorf("MatchHeader(%q, %d) text = %q, want %q", tt.line, tt.level, text, tt.wantText)
			}
		})
	}
}
