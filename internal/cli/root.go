// Package cli implements the relvet command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/relvet/relvet/internal/config"
	relerr "github.com/relvet/relvet/internal/errors"
	"github.com/relvet/relvet/internal/gitrepo"
	"github.com/relvet/relvet/internal/version"
)

// Command group identifiers for help output.
const (
	GroupRelease = "release"
	GroupInspect = "inspect"
)

var plainFlag bool

var rootCmd = &cobra.Command{
	Use:   "relvet",
	Short: "Commit-driven release engine",
	Long: `Relvet turns conventionally-formatted commit history into releases.

It validates commit messages against the conventional commit grammar,
classifies unreleased history into a semantic version bump, renders a
changelog from the classification, and creates the release tag behind
repository safety checks and an interactive confirmation.`,
	Example: `  relvet commit feat "add user signup" auth
  relvet release
  relvet release --minor --yes
  relvet changelog
  relvet check --watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Workflow:"},
		&cobra.Group{ID: GroupInspect, Title: "Inspection:"},
	)

	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Plain text output (no colors/icons)")
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.BuildDate)
}

// Execute runs the root command. Structured errors print their remediation
// guidance to stderr; the returned error tells main to exit non-zero.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		// Diagnostic was already printed by the command.
		return err
	}

	if cliErr := relerr.AsCLIError(err); cliErr != nil {
		if plainFlag {
			fmt.Fprint(os.Stderr, relerr.FormatErrorPlain(cliErr))
		} else {
			relerr.PrintError(cliErr)
		}
		return err
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}

// openRepo opens the repository enclosing the working directory.
func openRepo() (*gitrepo.Repository, error) {
	repo, err := gitrepo.Open(".")
	if err != nil {
		wd, werr := os.Getwd()
		if werr != nil {
			wd = "."
		}
		return nil, relerr.NotARepository(wd)
	}
	return repo, nil
}

// loadConfig loads the layered configuration, resolving the project config
// against the repository root and defaulting the project name to the
// repository directory. Relative changelog paths resolve against the root
// too, so relvet behaves the same from any subdirectory.
func loadConfig(repo *gitrepo.Repository) (*config.Configuration, error) {
	cfg, err := config.Load(filepath.Join(repo.Root(), config.ProjectConfigPath()))
	if err != nil {
		return nil, err
	}

	if cfg.Project == "" {
		cfg.Project = repo.Name()
	}
	if plainFlag {
		cfg.PlainOutput = true
	}
	if !filepath.IsAbs(cfg.ChangelogFile) {
		cfg.ChangelogFile = filepath.Join(repo.Root(), cfg.ChangelogFile)
	}
	if !filepath.IsAbs(cfg.ChangelogMarkdown) {
		cfg.ChangelogMarkdown = filepath.Join(repo.Root(), cfg.ChangelogMarkdown)
	}
	return cfg, nil
}
