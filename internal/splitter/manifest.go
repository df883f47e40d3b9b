// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mdsplit/pkg/types"
)

// ManifestName is the filename the manifest is written under in the output
// directory.
const ManifestName = "manifest.yaml"

// BuildManifest assembles a run manifest from the split segments.
func BuildManifest(source, tag string, segments []types.Segment) types.Manifest {
	m := types.Manifest{
		Source:    source,
		Tag:       strings.ToLower(tag),
		Generated: time.Now().UTC(),
		Files:     make([]types.ManifestEntry, 0, len(segments)),
	}
	for _, seg := range segments {
		m.Files = append(m.Files, types.ManifestEntry{
			Name:   seg.Filename,
			Header: seg.Header,
			Lines:  seg.LineCount(),
		})
	}
	return m
}

// WriteManifest saves the manifest to a YAML file.
func WriteManifest(path string, m types.Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a previously written manifest from disk.
func ReadManifest(path string) (*types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m types.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
