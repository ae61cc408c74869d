package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relvet/relvet/internal/commit"
	relerr "github.com/relvet/relvet/internal/errors"
)

var (
	commitBreakingFlag bool
	commitDryRunFlag   bool
)

var commitCmd = &cobra.Command{
	Use:   "commit <type> <message> [scope]",
	Short: "Create a conventional commit from staged changes",
	Long: `Build a conventional commit message from its parts, validate it against
the commit grammar, and record the staged changes with it.

The message is rejected before anything is committed if the type is not
recognized or the constructed message fails the grammar.

Examples:
  relvet commit feat "add user signup"
  relvet commit fix "handle empty scope" parser
  relvet commit refactor "drop the v1 endpoints" api --breaking
  relvet commit feat "preview only" --dry-run`,
	Args:         cobra.RangeArgs(2, 3),
	SilenceUsage: true,
	RunE:         runCommit,
}

func init() {
	commitCmd.GroupID = GroupRelease
	rootCmd.AddCommand(commitCmd)

	commitCmd.Flags().BoolVar(&commitBreakingFlag, "breaking", false, "Mark the commit as a breaking change")
	commitCmd.Flags().BoolVar(&commitDryRunFlag, "dry-run", false, "Print the validated message without committing")
}

func runCommit(cmd *cobra.Command, args []string) error {
	typeName, description := args[0], args[1]
	scope := ""
	if len(args) == 3 {
		scope = args[2]
	}

	message := commit.Format(typeName, scope, description, commitBreakingFlag)
	if _, err := commit.Parse(message); err != nil {
		var verr *commit.ValidationError
		if errors.As(err, &verr) {
			if verr.Kind == commit.UnknownType {
				return relerr.InvalidCommitType(typeName, commitTypeNames())
			}
			return relerr.MalformedCommitMessage(verr.Message, verr.Detail)
		}
		return err
	}

	if commitDryRunFlag {
		fmt.Fprintln(cmd.OutOrStdout(), message)
		return nil
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	staged, err := repo.HasStagedChanges()
	if err != nil {
		return relerr.GatewayFailure("reading index status", err)
	}
	if !staged {
		return relerr.NewArgumentError(
			"nothing is staged to commit",
			"Stage your changes with 'git add' first",
			"Use --dry-run to preview the message without committing",
		)
	}

	hash, err := repo.Commit(message)
	if err != nil {
		return relerr.GatewayFailure("creating commit", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", shortHash(hash), message)
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func commitTypeNames() []string {
	names := make([]string, 0, len(commit.Types()))
	for _, t := range commit.Types() {
		names = append(names, string(t))
	}
	return names
}
