package release

import (
	"github.com/relvet/relvet/internal/commit"
	"github.com/relvet/relvet/internal/semver"
)

// Classify derives the version bump a commit history requires. The result
// is the supremum of the levels implied by the individual commits, so it is
// independent of commit order. An empty history classifies as BumpNone,
// which callers report as "nothing to release" rather than an error.
//
// Records that failed the conventional grammar (merge commits and the like)
// carry Malformed and contribute BumpNone; a single bad entry never aborts
// classification.
func Classify(records []commit.Record) (semver.Bump, []commit.Record) {
	level := semver.BumpNone
	for _, rec := range records {
		level = semver.Max(level, bumpFor(rec))
	}
	return level, records
}

// bumpFor maps one commit to the bump level it implies: breaking changes
// force major regardless of type, feat means minor, fix means patch, and
// every other recognized type means none.
func bumpFor(rec commit.Record) semver.Bump {
	if rec.Malformed {
		return semver.BumpNone
	}
	if rec.Message.Breaking {
		return semver.BumpMajor
	}
	switch rec.Message.Type {
	case commit.TypeFeat:
		return semver.BumpMinor
	case commit.TypeFix:
		return semver.BumpPatch
	default:
		return semver.BumpNone
	}
}
