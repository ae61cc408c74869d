// Package output provides terminal output formatting utilities for the
// relvet CLI. It is designed to have minimal dependencies to avoid import
// cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintDivider prints a labeled horizontal separator, used by the watch
// loop to delimit successive validation passes.
func PrintDivider(out io.Writer, plain bool) {
	termWidth := GetTerminalWidth()

	label := " relvet "
	lineLen := (termWidth - len(label)) / 2
	if lineLen < 3 {
		lineLen = 3
	}
	line := strings.Repeat("─", lineLen)

	if plain {
		fmt.Fprintf(out, "\n%s%s%s\n", line, label, line)
		return
	}
	dim := color.New(color.FgMagenta, color.Faint).SprintFunc()
	fmt.Fprintf(out, "\n%s%s%s\n", dim(line), dim(label), dim(line))
}

// PrintSuccess prints a success line: green checkmark, cyan detail.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}
