package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSafety(t *testing.T) {
	allowed := []string{"main", "master"}

	tests := map[string]struct {
		state RepoState
		want  []ViolationKind
	}{
		"clean tree on release branch": {
			state: RepoState{Branch: "main", WorkingTreeClean: true},
			want:  nil,
		},
		"wrong branch alone": {
			state: RepoState{Branch: "feature/x", WorkingTreeClean: true},
			want:  []ViolationKind{WrongBranch},
		},
		"dirty tree alone": {
			state: RepoState{Branch: "main", WorkingTreeClean: false},
			want:  []ViolationKind{DirtyWorkingTree},
		},
		"staged changes count as dirty": {
			state: RepoState{Branch: "main", WorkingTreeClean: true, StagedChanges: true},
			want:  []ViolationKind{DirtyWorkingTree},
		},
		"all violations reported together": {
			state: RepoState{Branch: "feature/x", WorkingTreeClean: false, StagedChanges: true},
			want:  []ViolationKind{WrongBranch, DirtyWorkingTree},
		},
		"detached head is not a release branch": {
			state: RepoState{Branch: "", WorkingTreeClean: true},
			want:  []ViolationKind{WrongBranch},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			violations := CheckSafety(tc.state, allowed)
			require.Len(t, violations, len(tc.want))
			for i, kind := range tc.want {
				assert.Equal(t, kind, violations[i].Kind)
				assert.NotEmpty(t, violations[i].Detail)
			}
		})
	}
}

func TestDirtyTreeIsFatalIndependentOfBranch(t *testing.T) {
	for _, branch := range []string{"main", "feature/x", ""} {
		violations := CheckSafety(RepoState{Branch: branch, WorkingTreeClean: false}, []string{"main"})

		var dirty *SafetyViolation
		for i := range violations {
			if violations[i].Kind == DirtyWorkingTree {
				dirty = &violations[i]
			}
		}
		require.NotNil(t, dirty, "branch %q", branch)
		assert.True(t, dirty.Fatal())
	}
}

func TestWrongBranchIsNotFatal(t *testing.T) {
	violations := CheckSafety(RepoState{Branch: "feature/x", WorkingTreeClean: true}, []string{"main"})
	require.Len(t, violations, 1)
	assert.False(t, violations[0].Fatal())
}
