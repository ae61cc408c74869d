package errors

import "fmt"

// Common error messages for the relvet CLI.
// These templates ensure consistent, actionable error messages.

// InvalidCommitType creates an error for a commit type outside the recognized set.
func InvalidCommitType(typeName string, valid []string) *CLIError {
	return NewValidationError(
		fmt.Sprintf("unknown commit type %q", typeName),
		fmt.Sprintf("Use one of: %v", valid),
		"Example: relvet commit feat \"add user authentication\"",
	)
}

// MalformedCommitMessage creates an error for a message that fails the grammar.
func MalformedCommitMessage(subject, detail string) *CLIError {
	return NewValidationError(
		fmt.Sprintf("commit message %q does not follow the conventional format: %s", subject, detail),
		"Format messages as: type(scope): description",
		"Example: fix(parser): handle empty scope",
	)
}

// DirtyWorkingTree creates the fatal safety error for an unclean repository.
// A tag created now would not reproducibly correspond to any committed tree.
func DirtyWorkingTree() *CLIError {
	return NewSafetyError(
		"working tree has uncommitted or staged changes",
		"Commit or stash your changes before releasing",
		"Run 'git status' to see what is pending",
	)
}

// WrongBranch creates the overridable safety error for releasing off-branch.
func WrongBranch(branch string, allowed []string) *CLIError {
	return NewSafetyError(
		fmt.Sprintf("current branch %q is not a release branch (allowed: %v)", branch, allowed),
		fmt.Sprintf("Checkout one of %v, or confirm the override when prompted", allowed),
		"Release branches are configured via 'release_branches'",
	)
}

// NothingToRelease creates the informational abort for an empty bump.
func NothingToRelease() *CLIError {
	return NewReleaseError(
		"no commits since the last release warrant a version bump",
		"Land feat/fix commits, or force a bump with --patch/--minor/--major",
	)
}

// PartialRelease creates the fatal error for inconsistent release state.
// It is distinct from every other failure because the repository now needs
// manual inspection.
func PartialRelease(detail string) *CLIError {
	return NewReleaseError(
		fmt.Sprintf("release left the repository in a partial state: %s", detail),
		"Inspect the changelog file and tags by hand before retrying",
		"Do NOT re-run release until the tag and changelog agree",
	)
}

// GatewayFailure wraps an opaque repository gateway error.
func GatewayFailure(op string, err error) *CLIError {
	return WrapWithMessage(err, Gateway, op,
		"Verify the repository is intact and accessible",
	)
}

// NotARepository creates an error for running outside a git repository.
func NotARepository(path string) *CLIError {
	return &CLIError{
		Category: Gateway,
		Message:  fmt.Sprintf("no git repository found at %s", path),
		Remediation: []string{
			"Run relvet from inside a git repository",
		},
	}
}
