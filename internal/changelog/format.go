package changelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// groupStyle defines the color and icon for a changelog group title.
type groupStyle struct {
	color *color.Color
	icon  string
}

var groupStyles = map[string]groupStyle{
	breakingTitle:            {color: color.New(color.FgRed, color.Bold), icon: "⚠"},
	"Features":               {color: color.New(color.FgGreen), icon: "✓"},
	"Bug Fixes":              {color: color.New(color.FgYellow), icon: "⚡"},
	"Documentation":          {color: color.New(color.FgBlue), icon: "~"},
	"Performance":            {color: color.New(color.FgCyan), icon: "»"},
	"Reverts":                {color: color.New(color.FgMagenta), icon: "↩"},
	"Refactoring":            {color: color.New(color.FgBlue), icon: "~"},
	"Styles":                 {color: color.New(color.FgBlue), icon: "~"},
	"Tests":                  {color: color.New(color.FgBlue), icon: "~"},
	"Build":                  {color: color.New(color.FgBlue), icon: "~"},
	"Continuous Integration": {color: color.New(color.FgBlue), icon: "~"},
	"Chores":                 {color: color.New(color.FgWhite), icon: "·"},
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain bool // Disable colors and icons
}

// FormatTerminal writes a release preview to the writer with terminal
// styling. It is the human-facing rendition used by the release
// confirmation step and the changelog command.
func FormatTerminal(rel *Release, w io.Writer, opts FormatOptions) error {
	if err := writeReleaseHeader(rel, w, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if rel.IsEmpty() {
		_, err := fmt.Fprintln(w, "  (no changes)")
		return err
	}

	for _, g := range rel.Groups {
		if len(g.Entries) == 0 {
			continue
		}
		if err := writeGroupSection(&g, w, opts); err != nil {
			return fmt.Errorf("formatting group %s: %w", g.Title, err)
		}
	}
	return nil
}

func writeReleaseHeader(rel *Release, w io.Writer, opts FormatOptions) error {
	header := rel.Version
	if !rel.IsUnreleased() && rel.Date != "" {
		header += " - " + rel.Date
	}

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s\n%s\n", header, strings.Repeat("=", len(header)))
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "%s\n", bold(header))
	return err
}

func writeGroupSection(g *Group, w io.Writer, opts FormatOptions) error {
	style, ok := groupStyles[g.Title]
	if !ok {
		style = groupStyle{color: color.New(color.FgWhite), icon: "·"}
	}

	if opts.Plain {
		if _, err := fmt.Fprintf(w, "\n%s:\n", g.Title); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "\n%s %s\n", style.color.Sprint(style.icon), style.color.Sprint(g.Title)); err != nil {
			return err
		}
	}

	for _, e := range g.Entries {
		line := e.Description
		if e.Scope != "" {
			line = e.Scope + ": " + line
		}
		if _, err := fmt.Fprintf(w, "  - %s\n", line); err != nil {
			return err
		}
	}
	return nil
}
