// Package gitrepo is relvet's gateway to the underlying repository. It uses
// the go-git library exclusively; relvet never shells out to a git binary.
// Every query re-reads repository state — the repository is externally
// mutable, so nothing here is cached between calls.
package gitrepo

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/relvet/relvet/internal/commit"
	"github.com/relvet/relvet/internal/semver"
)

// TagInfo describes a release tag: its full name and the version it encodes.
type TagInfo struct {
	Name    string
	Version semver.Version
}

// Gateway exposes the repository operations the release engine needs.
// The release orchestrator consumes this interface; *Repository implements
// it against a real repository and tests substitute a scripted fake.
type Gateway interface {
	CurrentBranch() (string, error)
	IsWorkingTreeClean() (bool, error)
	HasStagedChanges() (bool, error)
	CommitsSince(tag string) ([]commit.Record, error)
	LatestReleaseTag(prefix string) (*TagInfo, error)
	CreateTag(name, annotation string) error
	Commit(message string) (string, error)
}

// Repository is the go-git backed Gateway implementation.
type Repository struct {
	repo *git.Repository
	root string
}

// Open opens the repository containing path, traversing up the directory
// tree to find the repository root. An empty path means the current
// working directory.
func Open(path string) (*Repository, error) {
	if path == "" {
		path = "."
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &Repository{repo: repo, root: worktree.Filesystem.Root()}, nil
}

// Root returns the absolute path to the repository root.
func (r *Repository) Root() string {
	return r.root
}

// Name returns the repository directory name, used as the default project
// identifier in changelog headers.
func (r *Repository) Name() string {
	return filepath.Base(r.root)
}

// CurrentBranch returns the name of the current branch.
// Returns empty string if in detached HEAD state.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// IsWorkingTreeClean reports whether the working tree has no modifications,
// staged or unstaged. Untracked files do not count as modifications: they
// cannot leak into a tag.
func (r *Repository) IsWorkingTreeClean() (bool, error) {
	status, err := r.status()
	if err != nil {
		return false, err
	}

	for _, s := range status {
		if s.Worktree == git.Untracked {
			continue
		}
		if s.Worktree != git.Unmodified || s.Staging != git.Unmodified {
			return false, nil
		}
	}
	return true, nil
}

// HasStagedChanges reports whether anything is staged for commit.
func (r *Repository) HasStagedChanges() (bool, error) {
	status, err := r.status()
	if err != nil {
		return false, err
	}

	for _, s := range status {
		if s.Staging != git.Unmodified && s.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) status() (git.Status, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}
	return status, nil
}

// CommitsSince returns the commits reachable from HEAD but not from the
// given tag, ordered oldest to newest. An empty tag name returns the full
// history. Messages that fail the conventional grammar degrade to chore
// records rather than aborting the walk.
func (r *Repository) CommitsSince(tag string) ([]commit.Record, error) {
	var stop plumbing.Hash
	if tag != "" {
		target, err := r.tagCommitHash(tag)
		if err != nil {
			return nil, err
		}
		stop = target
	}

	iter, err := r.repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("reading commit log: %w", err)
	}
	defer iter.Close()

	var records []commit.Record
	err = iter.ForEach(func(c *object.Commit) error {
		if tag != "" && c.Hash == stop {
			return storer.ErrStop
		}
		records = append(records, toRecord(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking commit history: %w", err)
	}

	// Log walks newest-first; callers want oldest-first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// toRecord parses one commit into a Record. Malformed messages (merge
// commits and the like) become chore records with Malformed set.
func toRecord(c *object.Commit) commit.Record {
	rec := commit.Record{
		ID:         c.Hash.String(),
		RawMessage: c.Message,
		Timestamp:  c.Committer.When,
	}

	msg, err := commit.Parse(c.Message)
	if err != nil {
		rec.Malformed = true
		rec.Message = commit.Message{Type: commit.TypeChore}
		return rec
	}
	rec.Message = *msg
	return rec
}

// LatestReleaseTag returns the highest semver-parseable tag carrying the
// given prefix, or nil when no release tag exists. Ordering is by semantic
// version, not tag creation time, so out-of-order tag pushes cannot skew
// the current version.
func (r *Repository) LatestReleaseTag(prefix string) (*TagInfo, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var latest *TagInfo
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		v, err := semver.Parse(strings.TrimPrefix(name, prefix))
		if err != nil {
			// Not a release tag; other tagging schemes coexist freely.
			return nil
		}
		if latest == nil || latest.Version.Less(v) {
			latest = &TagInfo{Name: name, Version: v}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return latest, nil
}

// CreateTag creates an annotated tag at HEAD. It refuses to overwrite an
// existing tag: a duplicate name means a concurrent or repeated release,
// which must fail loudly rather than move the marker.
func (r *Repository) CreateTag(name, annotation string) error {
	if _, err := r.repo.Reference(plumbing.NewTagReferenceName(name), false); err == nil {
		return fmt.Errorf("tag %q already exists", name)
	}

	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	_, err = r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Message: annotation,
		Tagger:  r.signature(),
	})
	if err != nil {
		return fmt.Errorf("creating tag %q: %w", name, err)
	}
	return nil
}

// Commit records the staged changes as a new commit with the given message
// and returns its hash.
func (r *Repository) Commit(message string) (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: r.signature(),
	})
	if err != nil {
		return "", fmt.Errorf("creating commit: %w", err)
	}
	return hash.String(), nil
}

// signature builds the tagger/author identity from repository config,
// falling back to a fixed identity so headless environments still work.
func (r *Repository) signature() *object.Signature {
	sig := &object.Signature{Name: "relvet", Email: "relvet@localhost", When: time.Now()}

	cfg, err := r.repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}

// tagCommitHash resolves a tag name to the commit it marks, peeling
// annotated tag objects.
func (r *Repository) tagCommitHash(tag string) (plumbing.Hash, error) {
	ref, err := r.repo.Reference(plumbing.NewTagReferenceName(tag), true)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving tag %q: %w", tag, err)
	}

	if tagObj, err := r.repo.TagObject(ref.Hash()); err == nil {
		return tagObj.Target, nil
	}
	return ref.Hash(), nil
}
