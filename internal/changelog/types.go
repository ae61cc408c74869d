package changelog

import "github.com/relvet/relvet/internal/commit"

// Document represents the root structure of a CHANGELOG.yaml file.
// It contains the project identifier and an ordered list of releases,
// with the newest release appearing first.
type Document struct {
	Project  string    `yaml:"project"`
	Releases []Release `yaml:"releases"`
}

// Release is the rendered note set for a single version.
// The Version field is a bare semantic version (e.g., "0.6.0"); the special
// identifier "unreleased" marks a preview built from untagged commits.
// Date is YYYY-MM-DD and empty for unreleased previews.
type Release struct {
	Version string  `yaml:"version"`
	Date    string  `yaml:"date,omitempty"`
	Groups  []Group `yaml:"groups"`
}

// Group collects the entries for one commit type, under its presentation
// title. Breaking changes form their own group regardless of type.
type Group struct {
	Title   string  `yaml:"title"`
	Entries []Entry `yaml:"entries"`
}

// Entry is a single change line: the commit description plus its optional
// scope and abbreviated commit id.
type Entry struct {
	Scope       string `yaml:"scope,omitempty"`
	Description string `yaml:"description"`
	Commit      string `yaml:"commit,omitempty"`
}

// IsUnreleased reports whether this release is an untagged preview.
func (r Release) IsUnreleased() bool {
	return r.Version == "unreleased"
}

// IsEmpty reports whether the release carries no entries at all.
func (r Release) IsEmpty() bool {
	for _, g := range r.Groups {
		if len(g.Entries) > 0 {
			return false
		}
	}
	return true
}

// EntryCount returns the total number of entries across all groups.
func (r Release) EntryCount() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Entries)
	}
	return n
}

// breakingTitle heads the group that always renders first.
const breakingTitle = "Breaking Changes"

// groupTitles maps commit types to their presentation titles. The rendering
// order is breaking changes, then feat and fix, then the remaining types in
// commit.Types() order.
var groupTitles = map[commit.Type]string{
	commit.TypeFeat:     "Features",
	commit.TypeFix:      "Bug Fixes",
	commit.TypeDocs:     "Documentation",
	commit.TypeStyle:    "Styles",
	commit.TypeRefactor: "Refactoring",
	commit.TypePerf:     "Performance",
	commit.TypeTest:     "Tests",
	commit.TypeBuild:    "Build",
	commit.TypeCI:       "Continuous Integration",
	commit.TypeChore:    "Chores",
	commit.TypeRevert:   "Reverts",
}
