// Package release implements the commit-driven release engine: history
// classification into a version bump, repository safety gating, and the
// orchestrated sequence that turns unreleased commits into a changelog
// entry and an annotated tag.
package release

import (
	"fmt"
	"io"
	"time"

	"github.com/relvet/relvet/internal/changelog"
	"github.com/relvet/relvet/internal/commit"
	"github.com/relvet/relvet/internal/config"
	relerr "github.com/relvet/relvet/internal/errors"
	"github.com/relvet/relvet/internal/gitrepo"
	"github.com/relvet/relvet/internal/semver"
)

// Mode selects how the next version is chosen.
type Mode int

const (
	// ModeAuto classifies commit history to compute the bump and asks for
	// confirmation before mutating anything.
	ModeAuto Mode = iota
	// ModeForcedPatch through ModeForcedMajor use the named bump level
	// unconditionally, skip classification, and skip the release
	// confirmation. The branch safety check still applies.
	ModeForcedPatch
	ModeForcedMinor
	ModeForcedMajor
)

// forcedBump returns the bump a forced mode implies, or false for ModeAuto.
func (m Mode) forcedBump() (semver.Bump, bool) {
	switch m {
	case ModeForcedPatch:
		return semver.BumpPatch, true
	case ModeForcedMinor:
		return semver.BumpMinor, true
	case ModeForcedMajor:
		return semver.BumpMajor, true
	default:
		return semver.BumpNone, false
	}
}

// Confirmer is the injectable yes/no prompt capability. The CLI supplies a
// terminal implementation; tests supply a scripted one.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// AbortReason names why an orchestration run stopped without releasing.
type AbortReason int

const (
	AbortNone AbortReason = iota
	AbortDirtyWorkingTree
	AbortWrongBranch
	AbortNothingToRelease
	AbortUserCancelled
)

// String returns a short operator-facing description of the abort.
func (r AbortReason) String() string {
	switch r {
	case AbortDirtyWorkingTree:
		return "working tree is not clean"
	case AbortWrongBranch:
		return "not on a release branch"
	case AbortNothingToRelease:
		return "nothing to release"
	case AbortUserCancelled:
		return "cancelled by operator"
	default:
		return "not aborted"
	}
}

// Result is the discriminated outcome of a release run. Aborts are values,
// not errors: callers inspect Released and Reason instead of parsing exit
// codes or error strings.
type Result struct {
	Released   bool
	Version    semver.Version
	Tag        string
	Reason     AbortReason
	Violations []SafetyViolation
}

// PartialReleaseError reports that the repository was left in an
// inconsistent state: the changelog was written, tag creation failed, and
// restoring the changelog snapshot also failed. It is distinct from every
// other failure because it requires manual repair and must never be
// retried automatically.
type PartialReleaseError struct {
	TagErr     error
	RestoreErr error
}

func (e *PartialReleaseError) Error() string {
	return fmt.Sprintf("release is partially applied: tag creation failed (%v) and changelog restore failed (%v)",
		e.TagErr, e.RestoreErr)
}

// Orchestrator runs the end-to-end release sequence against a repository
// gateway. It holds no state between runs: current version, commit history
// and working-tree state are re-read on every Release call.
type Orchestrator struct {
	gateway gitrepo.Gateway
	cfg     *config.Configuration
	confirm Confirmer
	out     io.Writer

	// now is swappable so tests get stable changelog dates.
	now func() time.Time
}

// New builds an orchestrator. All collaborators are required.
func New(gateway gitrepo.Gateway, cfg *config.Configuration, confirm Confirmer, out io.Writer) *Orchestrator {
	return &Orchestrator{
		gateway: gateway,
		cfg:     cfg,
		confirm: confirm,
		out:     out,
		now:     time.Now,
	}
}

// Release executes the release state machine:
//
//	guard -> classify -> preview -> confirm -> commit -> report
//
// Informational aborts (dirty tree, declined override, nothing to release,
// operator cancel) come back as a Result with Released=false; errors are
// reserved for gateway failures, I/O failures and partial-release states.
func (o *Orchestrator) Release(mode Mode) (*Result, error) {
	state, err := o.snapshotState()
	if err != nil {
		return nil, err
	}

	// Guard. Every violation is surfaced before any decision is made.
	violations := CheckSafety(state, o.cfg.ReleaseBranches)
	for _, v := range violations {
		fmt.Fprintf(o.out, "safety: %s\n", v.Detail)
	}
	for _, v := range violations {
		if v.Fatal() {
			return &Result{Reason: AbortDirtyWorkingTree, Violations: violations}, nil
		}
	}
	for _, v := range violations {
		if v.Kind != WrongBranch {
			continue
		}
		// The override prompt applies to forced modes too: forcing a bump
		// states intent about the bump, not about the branch.
		ok, err := o.confirm.Confirm(fmt.Sprintf("Release from branch %q anyway?", state.Branch))
		if err != nil {
			return nil, fmt.Errorf("reading branch override confirmation: %w", err)
		}
		if !ok {
			return &Result{Reason: AbortWrongBranch, Violations: violations}, nil
		}
	}

	// Current version and unreleased history, re-read from the repository.
	current, sinceTag, err := o.currentVersion()
	if err != nil {
		return nil, err
	}
	commits, err := o.gateway.CommitsSince(sinceTag)
	if err != nil {
		return nil, relerr.GatewayFailure("reading commit history", err)
	}

	// Classify, or take the forced level.
	bump, forced := mode.forcedBump()
	records := commits
	if !forced {
		bump, records = Classify(commits)
		if bump == semver.BumpNone {
			return &Result{Reason: AbortNothingToRelease, Violations: violations}, nil
		}
	}

	next := current.Next(bump)
	rel := changelog.BuildRelease(next.String(), o.now().Format("2006-01-02"), records)

	// Preview.
	fmt.Fprintf(o.out, "Release %s -> %s (%s bump, %d commits)\n\n",
		current.String(), next.String(), bump.String(), len(records))
	if err := changelog.FormatTerminal(&rel, o.out, changelog.FormatOptions{Plain: o.cfg.PlainOutput}); err != nil {
		return nil, fmt.Errorf("rendering release preview: %w", err)
	}
	fmt.Fprintln(o.out)

	// Confirm. Forced modes carry direct-invocation intent and skip this.
	if !forced && !o.cfg.SkipConfirmations {
		ok, err := o.confirm.Confirm(fmt.Sprintf("Create release %s?", next.Tag(o.cfg.TagPrefix)))
		if err != nil {
			return nil, fmt.Errorf("reading release confirmation: %w", err)
		}
		if !ok {
			return &Result{Reason: AbortUserCancelled, Violations: violations}, nil
		}
	}

	// Commit: changelog artifacts and tag become visible together or not
	// at all.
	tag, err := o.commitRelease(rel, next)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(o.out, "Released %s (tag %s)\n", next.String(), tag)
	return &Result{Released: true, Version: next, Tag: tag, Violations: violations}, nil
}

// Preview classifies unreleased history without mutating anything. It backs
// the changelog command.
func (o *Orchestrator) Preview() (*changelog.Release, []commit.Record, error) {
	_, sinceTag, err := o.currentVersion()
	if err != nil {
		return nil, nil, err
	}
	commits, err := o.gateway.CommitsSince(sinceTag)
	if err != nil {
		return nil, nil, relerr.GatewayFailure("reading commit history", err)
	}

	rel := changelog.BuildRelease("unreleased", "", commits)
	return &rel, commits, nil
}

func (o *Orchestrator) snapshotState() (RepoState, error) {
	branch, err := o.gateway.CurrentBranch()
	if err != nil {
		return RepoState{}, relerr.GatewayFailure("reading current branch", err)
	}
	clean, err := o.gateway.IsWorkingTreeClean()
	if err != nil {
		return RepoState{}, relerr.GatewayFailure("reading working tree status", err)
	}
	staged, err := o.gateway.HasStagedChanges()
	if err != nil {
		return RepoState{}, relerr.GatewayFailure("reading index status", err)
	}
	return RepoState{Branch: branch, WorkingTreeClean: clean, StagedChanges: staged}, nil
}

// currentVersion resolves the latest release tag into the current version
// and the tag name history walks start from. No tag means an implicit
// 0.0.0 and a full-history walk.
func (o *Orchestrator) currentVersion() (semver.Version, string, error) {
	info, err := o.gateway.LatestReleaseTag(o.cfg.TagPrefix)
	if err != nil {
		return semver.Version{}, "", relerr.GatewayFailure("reading release tags", err)
	}
	if info == nil {
		return semver.Version{}, "", nil
	}
	return info.Version, info.Name, nil
}

// commitRelease persists the changelog artifacts and creates the tag.
// Both changelog files are snapshotted first; if tag creation fails they
// are restored, and a failed restore surfaces as PartialReleaseError.
func (o *Orchestrator) commitRelease(rel changelog.Release, next semver.Version) (string, error) {
	yamlPath := o.cfg.ChangelogFile
	mdPath := o.cfg.ChangelogMarkdown

	yamlSnap, yamlExisted, err := changelog.Snapshot(yamlPath)
	if err != nil {
		return "", relerr.Wrap(err, relerr.Release)
	}
	mdSnap, mdExisted, err := changelog.Snapshot(mdPath)
	if err != nil {
		return "", relerr.Wrap(err, relerr.Release)
	}
	restore := func() error {
		yerr := changelog.Restore(yamlPath, yamlSnap, yamlExisted)
		merr := changelog.Restore(mdPath, mdSnap, mdExisted)
		if yerr != nil {
			return yerr
		}
		return merr
	}

	doc, err := changelog.Load(yamlPath, o.cfg.Project)
	if err != nil {
		return "", relerr.Wrap(err, relerr.Release)
	}
	updated := changelog.Prepend(doc, rel)

	if err := changelog.Save(updated, yamlPath); err != nil {
		if rerr := restore(); rerr != nil {
			return "", &PartialReleaseError{TagErr: err, RestoreErr: rerr}
		}
		return "", relerr.WrapWithMessage(err, relerr.Release, "writing changelog")
	}
	if err := changelog.SaveMarkdown(updated, mdPath); err != nil {
		if rerr := restore(); rerr != nil {
			return "", &PartialReleaseError{TagErr: err, RestoreErr: rerr}
		}
		return "", relerr.WrapWithMessage(err, relerr.Release, "writing changelog markdown")
	}

	tag := next.Tag(o.cfg.TagPrefix)
	annotation := fmt.Sprintf("Release %s", next.String())
	if err := o.gateway.CreateTag(tag, annotation); err != nil {
		if rerr := restore(); rerr != nil {
			return "", &PartialReleaseError{TagErr: err, RestoreErr: rerr}
		}
		return "", relerr.GatewayFailure("creating release tag", err)
	}
	return tag, nil
}
