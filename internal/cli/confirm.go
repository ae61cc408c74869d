package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// terminalConfirmer answers the orchestrator's yes/no prompts from the
// terminal. Release is a deliberate human-gated action, so prompts block
// without a timeout; a non-interactive session declines instead of
// defaulting to yes.
type terminalConfirmer struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

func newTerminalConfirmer(cmd *cobra.Command) *terminalConfirmer {
	return &terminalConfirmer{
		in:          cmd.InOrStdin(),
		out:         cmd.ErrOrStderr(),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// Confirm prompts with "[y/N]" semantics: only an explicit y/yes proceeds.
func (c *terminalConfirmer) Confirm(prompt string) (bool, error) {
	if !c.interactive {
		fmt.Fprintf(c.out, "%s [y/N]: no (non-interactive session)\n", prompt)
		return false, nil
	}

	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
