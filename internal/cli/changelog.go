package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relvet/relvet/internal/changelog"
	"github.com/relvet/relvet/internal/release"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Preview release notes for unreleased commits",
	Long: `Render the release notes that the next release would carry, built from
commits since the last release tag. Nothing is written: the preview is
regenerated from history on every call.

Examples:
  relvet changelog          # styled preview of unreleased changes
  relvet changelog --plain  # plain output for piping`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runChangelog,
}

func init() {
	changelogCmd.GroupID = GroupInspect
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(repo)
	if err != nil {
		return err
	}

	orch := release.New(repo, cfg, newTerminalConfirmer(cmd), cmd.OutOrStdout())

	stop := startSpinner(cfg, "scanning commit history...")
	rel, commits, err := orch.Preview()
	stop()
	if err != nil {
		return err
	}

	if len(commits) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No unreleased commits.")
		return nil
	}

	return changelog.FormatTerminal(rel, cmd.OutOrStdout(), changelog.FormatOptions{Plain: cfg.PlainOutput})
}
