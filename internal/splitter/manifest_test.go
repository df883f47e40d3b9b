// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildManifest(t *testing.T) {
	segments, err := Split(exampleDoc, 2)
	require.NoError(t, err)

	m := BuildManifest("docs/plan.md", "H2", segments)

	assert.Equal(t, "docs/plan.md", m.Source)
	assert.Equal(t, "h2", m.Tag)
	assert.False(t, m.Generated.IsZero())
	require.Len(t, m.Files, 3)

	assert.Equal(t, "00_introduction.md", m.Files[0].Name)
	assert.Empty(t, m.Files[0].Header)
	assert.Equal(t, 3, m.Files[0].Lines)

	assert.Equal(t, "01_phase_1_planning.md", m.Files[1].Name)
	assert.Equal(t, "Phase 1: Planning", m.Files[1].Header)
	assert.Equal(t, 3, m.Files[1].Lines)
}

func TestManifestRoundTrip(t *testing.T) {
	segments, err := Split(exampleDoc, 2)
	require.NoError(t, err)
	m := BuildManifest("docs/plan.md", "h2", segments)

	path := filepath.Join(t.TempDir(), ManifestName)
	require.NoError(t, WriteManifest(path, m))

	got, err := ReadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, m.Source, got.Source)
	assert.Equal(t, m.Tag, got.Tag)
	assert.True(t, m.Generated.Equal(got.Generated))
	assert.Equal(t, m.Files, got.Files)
}

func TestReadManifestMissing(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest")
}
