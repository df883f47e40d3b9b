// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/mdsplit/pkg/types"
)

// WriteSegments creates outDir (and any missing parents) and writes each
// segment to its derived filename, overwriting existing files without
// warning. It returns the number of files written. On the first failure it
// stops and returns the error; files already written stay on disk.
func WriteSegments(segments []types.Segment, outDir string) (int, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	written := 0
	for _, seg := range segments {
		path := filepath.Join(outDir, seg.Filename)
		if err := os.WriteFile(path, []byte(seg.Content), 0o644); err != nil {
			return written, fmt.Errorf("writing segment file %s: %w", path, err)
		}
		written++
	}
	return written, nil
}
