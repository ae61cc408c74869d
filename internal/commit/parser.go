package commit

import (
	"fmt"
	"strings"
)

// ValidationKind discriminates the ways a commit message can fail validation.
type ValidationKind int

const (
	// MalformedGrammar means the `type(scope): description` structure is absent.
	MalformedGrammar ValidationKind = iota
	// UnknownType means the structure parsed but the type is not recognized.
	UnknownType
)

// ValidationError reports a commit message that failed validation.
// It is user-correctable and never fatal to the process.
type ValidationError struct {
	Kind    ValidationKind
	Message string // the offending raw message (first line)
	Detail  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid commit message %q: %s", e.Message, e.Detail)
}

// wipPrefixes mark commits that git rewrites during interactive rebase.
// They are edited out of history before merge, so the grammar does not apply.
var wipPrefixes = []string{"fixup!", "squash!", "amend!"}

// Parse validates a commit message against the conventional commit grammar
// and extracts its parts. It is a pure function over the input string.
func Parse(raw string) (*Message, error) {
	subject := firstLine(raw)

	for _, p := range wipPrefixes {
		if strings.HasPrefix(subject, p) {
			return &Message{
				Type:        TypeChore,
				Description: strings.TrimSpace(strings.TrimPrefix(subject, p)),
				Exempt:      true,
			}, nil
		}
	}

	head, description, ok := strings.Cut(subject, ":")
	if !ok {
		return nil, &ValidationError{
			Kind:    MalformedGrammar,
			Message: subject,
			Detail:  "missing `type: description` separator",
		}
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, &ValidationError{
			Kind:    MalformedGrammar,
			Message: subject,
			Detail:  "empty description",
		}
	}

	head = strings.TrimSpace(head)
	breaking := false
	if strings.HasSuffix(head, "!") {
		breaking = true
		head = strings.TrimSuffix(head, "!")
	}

	typeName, scope, err := splitScope(head, subject)
	if err != nil {
		return nil, err
	}

	if !IsValidType(typeName) {
		return nil, &ValidationError{
			Kind:    UnknownType,
			Message: subject,
			Detail:  fmt.Sprintf("unknown commit type %q (valid: %s)", typeName, typeList()),
		}
	}

	return &Message{
		Type:        Type(typeName),
		Scope:       scope,
		Description: description,
		Breaking:    breaking || hasBreakingFooter(raw),
	}, nil
}

// splitScope splits `type(scope)` into its parts. A scope must be
// parenthesized and non-empty when present.
func splitScope(head, subject string) (string, string, error) {
	open := strings.IndexByte(head, '(')
	if open < 0 {
		if strings.ContainsAny(head, ") \t") {
			return "", "", &ValidationError{
				Kind:    MalformedGrammar,
				Message: subject,
				Detail:  "malformed type segment",
			}
		}
		return head, "", nil
	}

	if !strings.HasSuffix(head, ")") {
		return "", "", &ValidationError{
			Kind:    MalformedGrammar,
			Message: subject,
			Detail:  "unclosed scope parenthesis",
		}
	}

	scope := head[open+1 : len(head)-1]
	if scope == "" {
		return "", "", &ValidationError{
			Kind:    MalformedGrammar,
			Message: subject,
			Detail:  "scope must be non-empty when present",
		}
	}

	return head[:open], scope, nil
}

// hasBreakingFooter reports whether the message body carries a
// BREAKING CHANGE (or BREAKING-CHANGE) footer line.
func hasBreakingFooter(raw string) bool {
	for _, line := range strings.Split(raw, "\n")[1:] {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "BREAKING CHANGE:") || strings.HasPrefix(line, "BREAKING-CHANGE:") {
			return true
		}
	}
	return false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimRight(s[:i], "\r")
	}
	return s
}

func typeList() string {
	names := make([]string, 0, len(Types()))
	for _, t := range Types() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// Format builds a conventional commit subject line from its parts.
// It is the inverse of Parse for well-formed inputs.
func Format(typeName, scope, description string, breaking bool) string {
	var b strings.Builder
	b.WriteString(typeName)
	if scope != "" {
		b.WriteString("(")
		b.WriteString(scope)
		b.WriteString(")")
	}
	if breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(description)
	return b.String()
}
