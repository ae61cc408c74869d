// Package semver implements the minimal semantic-version arithmetic relvet
// needs: parsing release tags, total ordering, and bump application. It is
// deliberately not a full semver implementation — prerelease and build
// metadata are not part of the release contract.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a major.minor.patch triple. The zero value (0.0.0) is the
// implicit current version of a repository with no release tags.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Bump is the magnitude of a version increment implied by a set of commits.
// Levels are ordered: BumpNone < BumpPatch < BumpMinor < BumpMajor.
type Bump int

const (
	BumpNone Bump = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

// String returns the lowercase level name.
func (b Bump) String() string {
	switch b {
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	default:
		return "none"
	}
}

// Max returns the greater of two bump levels.
func Max(a, b Bump) Bump {
	if a > b {
		return a
	}
	return b
}

// Parse parses a version string such as "1.4.7" or "v1.4.7".
// A leading "v" is tolerated because release tags conventionally carry one.
func Parse(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: want major.minor.patch", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: component %q is not a non-negative integer", s, p)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the bare version without a "v" prefix.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag renders the version as a tag name with the given prefix (usually "v").
func (v Version) Tag(prefix string) string {
	return prefix + v.String()
}

// Compare returns -1, 0, or 1 ordering versions lexicographically on
// (major, minor, patch).
func (v Version) Compare(o Version) int {
	for _, d := range []int{v.Major - o.Major, v.Minor - o.Minor, v.Patch - o.Patch} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}

// Less reports whether v orders strictly before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Next returns the version produced by applying the bump level.
// A major bump resets minor and patch, a minor bump resets patch, and a
// patch bump increments patch only. BumpNone returns v unchanged.
func (v Version) Next(b Bump) Version {
	switch b {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}
