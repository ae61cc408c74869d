package changelog

import (
	"fmt"
	"io"
	"strings"
)

// RenderMarkdown generates a markdown changelog from the given document.
// Releases render newest-first, each with its groups in presentation order.
//
// The function is idempotent - given the same input, it produces identical output.
func RenderMarkdown(doc *Document, w io.Writer) error {
	if err := renderHeader(doc, w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	for i, rel := range doc.Releases {
		if err := renderRelease(&rel, w, i == 0); err != nil {
			return fmt.Errorf("rendering release %s: %w", rel.Version, err)
		}
	}

	return nil
}

// RenderMarkdownString is a convenience function that renders to a string.
func RenderMarkdownString(doc *Document) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(doc, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderHeader writes the document preamble.
func renderHeader(doc *Document, w io.Writer) error {
	header := `# Changelog

All notable changes to ` + doc.Project + ` will be documented in this file.

Entries are generated from conventional commit history and this project
adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

`
	_, err := w.Write([]byte(header))
	return err
}

// renderRelease writes a single release section with all its groups.
func renderRelease(rel *Release, w io.Writer, isFirst bool) error {
	if !isFirst {
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte(formatReleaseHeader(rel) + "\n")); err != nil {
		return err
	}

	for _, g := range rel.Groups {
		if len(g.Entries) == 0 {
			continue
		}
		if err := renderGroup(&g, w); err != nil {
			return err
		}
	}
	return nil
}

// formatReleaseHeader formats the release header line.
func formatReleaseHeader(rel *Release) string {
	if rel.IsUnreleased() {
		return "## [Unreleased]"
	}
	return fmt.Sprintf("## [%s] - %s", rel.Version, rel.Date)
}

// renderGroup writes a single group section with its entries.
func renderGroup(g *Group, w io.Writer) error {
	if _, err := w.Write([]byte("\n### " + g.Title + "\n")); err != nil {
		return err
	}
	for _, e := range g.Entries {
		if _, err := w.Write([]byte("- " + formatEntry(e) + "\n")); err != nil {
			return err
		}
	}
	return nil
}

// formatEntry formats one change line: "**scope:** description (abc1234)".
func formatEntry(e Entry) string {
	var b strings.Builder
	if e.Scope != "" {
		b.WriteString("**")
		b.WriteString(e.Scope)
		b.WriteString(":** ")
	}
	b.WriteString(e.Description)
	if e.Commit != "" {
		b.WriteString(" (")
		b.WriteString(e.Commit)
		b.WriteString(")")
	}
	return b.String()
}
