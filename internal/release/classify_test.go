package release

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relvet/relvet/internal/commit"
	"github.com/relvet/relvet/internal/semver"
)

func rec(typ commit.Type, desc string, breaking bool) commit.Record {
	return commit.Record{
		ID: "0123456789abcdef",
		Message: commit.Message{
			Type:        typ,
			Description: desc,
			Breaking:    breaking,
		},
	}
}

func malformedRec(subject string) commit.Record {
	return commit.Record{
		ID:         "0123456789abcdef",
		RawMessage: subject,
		Message:    commit.Message{Type: commit.TypeChore},
		Malformed:  true,
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		records []commit.Record
		want    semver.Bump
	}{
		"empty history": {
			records: nil,
			want:    semver.BumpNone,
		},
		"only chores": {
			records: []commit.Record{
				rec(commit.TypeChore, "ci", false),
				rec(commit.TypeDocs, "readme", false),
			},
			want: semver.BumpNone,
		},
		"fix means patch": {
			records: []commit.Record{rec(commit.TypeFix, "typo", false)},
			want:    semver.BumpPatch,
		},
		"feat means minor": {
			records: []commit.Record{
				rec(commit.TypeFix, "typo", false),
				rec(commit.TypeFeat, "add signup", false),
			},
			want: semver.BumpMinor,
		},
		"breaking forces major regardless of type": {
			records: []commit.Record{
				rec(commit.TypeChore, "cleanup", true),
				rec(commit.TypeDocs, "readme", false),
			},
			want: semver.BumpMajor,
		},
		"breaking feat is major not minor": {
			records: []commit.Record{rec(commit.TypeFeat, "break api", true)},
			want:    semver.BumpMajor,
		},
		"malformed entries contribute nothing": {
			records: []commit.Record{
				malformedRec("Merge branch 'main'"),
				rec(commit.TypeFix, "typo", false),
			},
			want: semver.BumpPatch,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, records := Classify(tc.records)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.records, records)
		})
	}
}

func TestClassifyIsOrderIndependent(t *testing.T) {
	records := []commit.Record{
		rec(commit.TypeChore, "ci", false),
		rec(commit.TypeFix, "typo", false),
		rec(commit.TypeFeat, "add signup", false),
		malformedRec("Merge branch 'main'"),
	}

	want, _ := Classify(records)
	require.Equal(t, semver.BumpMinor, want)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]commit.Record, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, _ := Classify(shuffled)
		assert.Equal(t, want, got)
	}
}
