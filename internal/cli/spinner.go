package cli

import (
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/relvet/relvet/internal/config"
	"github.com/relvet/relvet/internal/progress"
)

// startSpinner shows a progress spinner on stderr while a repository walk
// runs, and returns the function that stops it. It is a no-op in plain
// mode and off-TTY, so piped output never carries spinner frames.
func startSpinner(cfg *config.Configuration, message string) func() {
	caps := progress.DetectTerminalCapabilities()
	if cfg.PlainOutput || !caps.IsTTY {
		return func() {}
	}

	symbols := progress.SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
