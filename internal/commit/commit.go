// Package commit parses conventional commit messages. The grammar is
// `type(scope)?!?: description` with an optional BREAKING CHANGE footer;
// messages prefixed with fixup!/squash!/amend! are work-in-progress edits
// and pass validation unconditionally.
package commit

import "time"

// Type is a recognized conventional commit type.
type Type string

const (
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypeDocs     Type = "docs"
	TypeStyle    Type = "style"
	TypeRefactor Type = "refactor"
	TypePerf     Type = "perf"
	TypeTest     Type = "test"
	TypeBuild    Type = "build"
	TypeCI       Type = "ci"
	TypeChore    Type = "chore"
	TypeRevert   Type = "revert"
)

// Types returns the recognized commit types in their canonical order.
// The order doubles as the presentation order for non-headline changelog
// groups.
func Types() []Type {
	return []Type{
		TypeFeat, TypeFix, TypeDocs, TypeStyle, TypeRefactor,
		TypePerf, TypeTest, TypeBuild, TypeCI, TypeChore, TypeRevert,
	}
}

// IsValidType reports whether s names a recognized commit type.
func IsValidType(s string) bool {
	for _, t := range Types() {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Message is the parsed form of a single conventional commit message.
type Message struct {
	Type        Type
	Scope       string // empty when no scope was given
	Description string
	Breaking    bool
	Exempt      bool // fixup!/squash!/amend! prefix, exempt from the grammar
}

// Record is one historical commit since the last release tag. It is created
// once by parsing the raw message and never mutated afterwards.
type Record struct {
	ID         string // content hash of the commit, opaque to relvet
	RawMessage string
	Message    Message
	Malformed  bool // raw message failed the grammar; Message degraded to chore
	Timestamp  time.Time
}

// Subject returns the first line of the raw commit message.
func (r Record) Subject() string {
	for i := 0; i < len(r.RawMessage); i++ {
		if r.RawMessage[i] == '\n' {
			return r.RawMessage[:i]
		}
	}
	return r.RawMessage
}
