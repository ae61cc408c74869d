package release

import (
	"fmt"
	"strings"
)

// RepoState is the repository snapshot the safety gate inspects. It is
// captured once per orchestration run and never cached across runs, because
// the repository is externally mutable.
type RepoState struct {
	Branch           string
	WorkingTreeClean bool
	StagedChanges    bool
}

// ViolationKind identifies a safety rule that failed.
type ViolationKind int

const (
	// WrongBranch means the current branch is not in the release allow-list.
	// The operator may override it with explicit confirmation.
	WrongBranch ViolationKind = iota
	// DirtyWorkingTree means uncommitted or staged changes exist. It is
	// never overridable: a tag created now would not reproducibly
	// correspond to any committed tree.
	DirtyWorkingTree
)

// SafetyViolation is one failed precondition, with a human-readable detail.
type SafetyViolation struct {
	Kind   ViolationKind
	Detail string
}

// Fatal reports whether the violation blocks the release unconditionally.
func (v SafetyViolation) Fatal() bool {
	return v.Kind == DirtyWorkingTree
}

// CheckSafety evaluates every release precondition against the snapshot and
// returns all violations, not just the first, so the operator sees the full
// picture before deciding anything. It performs no I/O and mutates nothing.
func CheckSafety(state RepoState, allowedBranches []string) []SafetyViolation {
	var violations []SafetyViolation

	if !branchAllowed(state.Branch, allowedBranches) {
		violations = append(violations, SafetyViolation{
			Kind: WrongBranch,
			Detail: fmt.Sprintf("current branch %q is not a release branch (allowed: %s)",
				state.Branch, strings.Join(allowedBranches, ", ")),
		})
	}

	if !state.WorkingTreeClean || state.StagedChanges {
		violations = append(violations, SafetyViolation{
			Kind:   DirtyWorkingTree,
			Detail: "working tree has uncommitted or staged changes",
		})
	}

	return violations
}

func branchAllowed(branch string, allowed []string) bool {
	for _, b := range allowed {
		if branch == b {
			return true
		}
	}
	return false
}
