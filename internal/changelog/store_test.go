package changelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *Document {
	return &Document{
		Project: "demo",
		Releases: []Release{
			{
				Version: "0.1.0",
				Date:    "2026-08-31",
				Groups: []Group{
					{Title: "Features", Entries: []Entry{{Scope: "auth", Description: "add signup", Commit: "abc1234"}}},
				},
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.yaml")

	require.NoError(t, Save(sampleDoc(), path))

	got, err := Load(path, "demo")
	require.NoError(t, err)
	assert.Equal(t, sampleDoc(), got)
}

func TestLoadMissingFileYieldsEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.yaml")

	got, err := Load(path, "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", got.Project)
	assert.Empty(t, got.Releases)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: [\n"), 0o644))

	_, err := Load(path, "demo")
	require.Error(t, err)
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "nested", "CHANGELOG.yaml")

	require.NoError(t, Save(sampleDoc(), path))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSaveMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")

	require.NoError(t, SaveMarkdown(sampleDoc(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## [0.1.0] - 2026-08-31")
	assert.Contains(t, string(data), "- **auth:** add signup (abc1234)")
}

func TestSnapshotRestoreExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.yaml")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	snap, existed, err := Snapshot(path)
	require.NoError(t, err)
	assert.True(t, existed)

	require.NoError(t, os.WriteFile(path, []byte("clobbered"), 0o644))
	require.NoError(t, Restore(path, snap, existed))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestSnapshotRestoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.yaml")

	snap, existed, err := Snapshot(path)
	require.NoError(t, err)
	assert.False(t, existed)

	// Something was written between snapshot and restore; restore removes it.
	require.NoError(t, os.WriteFile(path, []byte("partial"), 0o644))
	require.NoError(t, Restore(path, snap, existed))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
