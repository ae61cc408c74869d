package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	relerr "github.com/relvet/relvet/internal/errors"
	"github.com/relvet/relvet/internal/release"
)

var (
	releasePatchFlag bool
	releaseMinorFlag bool
	releaseMajorFlag bool
	releaseYesFlag   bool
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Classify unreleased commits and cut a release",
	Long: `Run the release sequence: check repository safety, classify commits
since the last release tag into a version bump, preview the changelog,
ask for confirmation, then persist the changelog and create the tag.

A forced bump level (--patch/--minor/--major) skips classification and
the release confirmation; the branch safety check still applies.

Examples:
  relvet release            # bump derived from commit history
  relvet release --minor    # force a minor bump, no confirmation
  relvet release --yes      # auto mode without the confirmation prompt`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRelease,
}

func init() {
	releaseCmd.GroupID = GroupRelease
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().BoolVar(&releasePatchFlag, "patch", false, "Force a patch release")
	releaseCmd.Flags().BoolVar(&releaseMinorFlag, "minor", false, "Force a minor release")
	releaseCmd.Flags().BoolVar(&releaseMajorFlag, "major", false, "Force a major release")
	releaseCmd.Flags().BoolVarP(&releaseYesFlag, "yes", "y", false, "Skip the release confirmation prompt")
	releaseCmd.MarkFlagsMutuallyExclusive("patch", "minor", "major")
}

func releaseMode() release.Mode {
	switch {
	case releasePatchFlag:
		return release.ModeForcedPatch
	case releaseMinorFlag:
		return release.ModeForcedMinor
	case releaseMajorFlag:
		return release.ModeForcedMajor
	default:
		return release.ModeAuto
	}
}

func runRelease(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(repo)
	if err != nil {
		return err
	}
	if releaseYesFlag {
		cfg.SkipConfirmations = true
	}

	orch := release.New(repo, cfg, newTerminalConfirmer(cmd), cmd.OutOrStdout())
	result, err := orch.Release(releaseMode())
	if err != nil {
		var partial *release.PartialReleaseError
		if errors.As(err, &partial) {
			return relerr.PartialRelease(partial.Error())
		}
		return err
	}

	if result.Released {
		return nil
	}

	switch result.Reason {
	case release.AbortDirtyWorkingTree:
		return relerr.DirtyWorkingTree()
	case release.AbortWrongBranch:
		branch, berr := repo.CurrentBranch()
		if berr != nil {
			branch = "(unknown)"
		}
		return relerr.WrongBranch(branch, cfg.ReleaseBranches)
	case release.AbortNothingToRelease:
		return relerr.NothingToRelease()
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "Release cancelled.")
		return NewExitError(ExitFailure)
	}
}
