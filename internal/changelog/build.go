package changelog

import (
	"github.com/relvet/relvet/internal/commit"
)

// BuildRelease groups classified commits into a Release for the given
// version. Breaking-change commits form their own headline group; every
// other commit is grouped under its type. Commit order is preserved within
// each group and empty groups are omitted, so the result is fully
// determined by the input sequence.
func BuildRelease(version, date string, commits []commit.Record) Release {
	var breaking []Entry
	byType := make(map[commit.Type][]Entry, len(groupTitles))

	for _, rec := range commits {
		entry := Entry{
			Scope:       rec.Message.Scope,
			Description: rec.Message.Description,
			Commit:      shortID(rec.ID),
		}
		if rec.Malformed {
			// Malformed history (merge commits and the like) degrades to a
			// chore entry carrying its raw subject.
			entry.Description = rec.Subject()
		}

		if rec.Message.Breaking {
			breaking = append(breaking, entry)
			continue
		}
		byType[rec.Message.Type] = append(byType[rec.Message.Type], entry)
	}

	rel := Release{Version: version, Date: date}
	if len(breaking) > 0 {
		rel.Groups = append(rel.Groups, Group{Title: breakingTitle, Entries: breaking})
	}
	for _, t := range commit.Types() {
		if entries := byType[t]; len(entries) > 0 {
			rel.Groups = append(rel.Groups, Group{Title: groupTitles[t], Entries: entries})
		}
	}
	return rel
}

// Prepend returns a copy of the document with rel inserted as the newest
// release. Any existing "unreleased" preview is dropped: previews are
// regenerated on demand and never persist past a real release.
func Prepend(doc *Document, rel Release) *Document {
	out := &Document{Project: doc.Project}
	out.Releases = append(out.Releases, rel)
	for _, r := range doc.Releases {
		if r.IsUnreleased() {
			continue
		}
		out.Releases = append(out.Releases, r)
	}
	return out
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
