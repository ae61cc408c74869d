package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/relvet/relvet/internal/config"
	relerr "github.com/relvet/relvet/internal/errors"
	"github.com/relvet/relvet/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented project configuration file",
	Long: `Create .relvet/config.yml at the repository root with every available
option documented and set to its default.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	initCmd.GroupID = GroupRelease
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	path := filepath.Join(repo.Root(), config.ProjectConfigPath())
	if _, err := os.Stat(path); err == nil {
		return relerr.NewConfigError(
			fmt.Sprintf("configuration already exists at %s", path),
			"Edit the existing file instead, or remove it and re-run init",
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return relerr.WrapWithMessage(err, relerr.Configuration, "creating config directory")
	}
	if err := os.WriteFile(path, []byte(config.DefaultConfigTemplate()), 0o644); err != nil {
		return relerr.WrapWithMessage(err, relerr.Configuration, "writing config file")
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Created "+path)
	return nil
}
