package changelog

import (
	"testing"

	"github.com/relvet/relvet/internal/commit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id, typ, scope, desc string, breaking bool) commit.Record {
	return commit.Record{
		ID:         id,
		RawMessage: commit.Format(typ, scope, desc, breaking),
		Message: commit.Message{
			Type:        commit.Type(typ),
			Scope:       scope,
			Description: desc,
			Breaking:    breaking,
		},
	}
}

func TestBuildReleaseGroupOrder(t *testing.T) {
	commits := []commit.Record{
		rec("1111111222", "chore", "", "update ci cache", false),
		rec("2222222333", "fix", "parser", "handle empty scope", false),
		rec("3333333444", "feat", "", "add signup", false),
		rec("4444444555", "refactor", "core", "split gateway", true),
	}

	rel := BuildRelease("1.0.0", "2026-08-31", commits)

	titles := make([]string, 0, len(rel.Groups))
	for _, g := range rel.Groups {
		titles = append(titles, g.Title)
	}
	// Breaking first, then feat, fix, then remaining types in canonical order.
	assert.Equal(t, []string{"Breaking Changes", "Features", "Bug Fixes", "Chores"}, titles)

	require.Len(t, rel.Groups[0].Entries, 1)
	assert.Equal(t, "split gateway", rel.Groups[0].Entries[0].Description)
	assert.Equal(t, "core", rel.Groups[0].Entries[0].Scope)
	assert.Equal(t, "4444444", rel.Groups[0].Entries[0].Commit)
}

func TestBuildReleasePreservesCommitOrderWithinGroup(t *testing.T) {
	commits := []commit.Record{
		rec("a", "feat", "", "first", false),
		rec("b", "fix", "", "a fix", false),
		rec("c", "feat", "", "second", false),
		rec("d", "feat", "", "third", false),
	}

	rel := BuildRelease("unreleased", "", commits)

	var feats []string
	for _, g := range rel.Groups {
		if g.Title == "Features" {
			for _, e := range g.Entries {
				feats = append(feats, e.Description)
			}
		}
	}
	assert.Equal(t, []string{"first", "second", "third"}, feats)
}

func TestBuildReleaseOmitsEmptyGroups(t *testing.T) {
	rel := BuildRelease("0.1.0", "2026-08-31", []commit.Record{
		rec("a", "feat", "", "only feature", false),
	})

	require.Len(t, rel.Groups, 1)
	assert.Equal(t, "Features", rel.Groups[0].Title)
}

func TestBuildReleaseMalformedCommitKeepsRawSubject(t *testing.T) {
	malformed := commit.Record{
		ID:         "abcdef0123",
		RawMessage: "Merge branch 'main' into feature",
		Message:    commit.Message{Type: commit.TypeChore},
		Malformed:  true,
	}

	rel := BuildRelease("0.1.0", "2026-08-31", []commit.Record{malformed})

	require.Len(t, rel.Groups, 1)
	assert.Equal(t, "Chores", rel.Groups[0].Title)
	assert.Equal(t, "Merge branch 'main' into feature", rel.Groups[0].Entries[0].Description)
}

func TestBuildReleaseEmptyInput(t *testing.T) {
	rel := BuildRelease("0.1.0", "2026-08-31", nil)
	assert.True(t, rel.IsEmpty())
	assert.Zero(t, rel.EntryCount())
}

func TestPrependDropsUnreleasedPreview(t *testing.T) {
	doc := &Document{
		Project: "demo",
		Releases: []Release{
			{Version: "unreleased"},
			{Version: "0.1.0", Date: "2026-01-01"},
		},
	}

	out := Prepend(doc, Release{Version: "0.2.0", Date: "2026-08-31"})

	require.Len(t, out.Releases, 2)
	assert.Equal(t, "0.2.0", out.Releases[0].Version)
	assert.Equal(t, "0.1.0", out.Releases[1].Version)

	// The input document is not mutated.
	assert.Len(t, doc.Releases, 2)
	assert.Equal(t, "unreleased", doc.Releases[0].Version)
}
