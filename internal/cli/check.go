package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/relvet/relvet/internal/commit"
	"github.com/relvet/relvet/internal/config"
	relerr "github.com/relvet/relvet/internal/errors"
	"github.com/relvet/relvet/internal/gitrepo"
	"github.com/relvet/relvet/internal/output"
	"github.com/relvet/relvet/internal/progress"
)

// checkDebounce coalesces the burst of ref writes a single commit produces.
const checkDebounce = 200 * time.Millisecond

var checkWatchFlag bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the full commit history against the commit grammar",
	Long: `Re-validate every commit message in the repository against the
conventional commit grammar and report all violations, not just the first.

Exits 1 when any commit fails validation.

Examples:
  relvet check          # one-shot validation of the full history
  relvet check --watch  # re-run whenever the repository head moves`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	checkCmd.GroupID = GroupInspect
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkWatchFlag, "watch", false, "Re-run validation when new commits land")
}

func runCheck(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(repo)
	if err != nil {
		return err
	}

	if checkWatchFlag {
		return runCheckWatch(cmd, cfg, repo)
	}

	failures, err := checkHistory(cmd, cfg, repo)
	if err != nil {
		return err
	}
	if failures > 0 {
		return NewExitError(ExitFailure)
	}
	return nil
}

// checkHistory validates every commit and prints one line per violation.
// It returns the violation count; the caller decides the exit code, so the
// watch loop can keep running after a failing pass.
func checkHistory(cmd *cobra.Command, cfg *config.Configuration, repo *gitrepo.Repository) (int, error) {
	stop := startSpinner(cfg, "scanning commit history...")
	records, err := repo.CommitsSince("")
	stop()
	if err != nil {
		return 0, relerr.GatewayFailure("reading commit history", err)
	}

	out := cmd.OutOrStdout()
	failures := 0
	for _, rec := range records {
		_, perr := commit.Parse(rec.RawMessage)
		if perr == nil {
			continue
		}
		failures++

		detail := perr.Error()
		var verr *commit.ValidationError
		if errors.As(perr, &verr) {
			detail = verr.Detail
		}

		symbols := progress.SelectSymbols(progress.DetectTerminalCapabilities())
		if cfg.PlainOutput {
			fmt.Fprintf(out, "FAIL %s %s: %s\n", shortHash(rec.ID), rec.Subject(), detail)
		} else {
			red := color.New(color.FgRed).SprintFunc()
			dim := color.New(color.Faint).SprintFunc()
			fmt.Fprintf(out, "%s %s %s %s\n", red(symbols.Failure), dim(shortHash(rec.ID)), rec.Subject(), red(detail))
		}
	}

	if failures == 0 {
		fmt.Fprintf(out, "All %d commits follow the conventional format.\n", len(records))
	} else {
		fmt.Fprintf(out, "%d of %d commits fail validation.\n", failures, len(records))
	}
	return failures, nil
}

// runCheckWatch re-runs validation whenever the repository head moves.
// An fsnotify watcher on the ref files feeds a debounced re-run loop; both
// goroutines stop on SIGINT/SIGTERM.
func runCheckWatch(cmd *cobra.Command, cfg *config.Configuration, repo *gitrepo.Repository) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	gitDir := filepath.Join(repo.Root(), ".git")
	for _, p := range []string{gitDir, filepath.Join(gitDir, "refs", "heads")} {
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	rerun := func() {
		output.PrintDivider(cmd.OutOrStdout(), cfg.PlainOutput)
		if _, err := checkHistory(cmd, cfg, repo); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "check failed: %v\n", err)
		}
	}

	if _, err := checkHistory(cmd, cfg, repo); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nWatching for new commits (Ctrl-C to stop)...")

	kicks := make(chan struct{}, 1)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !headMoved(ev) {
					continue
				}
				select {
				case kicks <- struct{}{}:
				default:
				}
			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return fmt.Errorf("watching repository: %w", werr)
			}
		}
	})

	g.Go(func() error {
		debounce := time.NewTimer(checkDebounce)
		if !debounce.Stop() {
			<-debounce.C
		}
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-kicks:
				debounce.Reset(checkDebounce)
			case <-debounce.C:
				rerun()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// headMoved reports whether a filesystem event plausibly means new commits:
// HEAD updates, branch ref writes, or the packed-refs rewrite git performs
// during maintenance.
func headMoved(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(ev.Name)
	if base == "HEAD" || base == "packed-refs" {
		return true
	}
	return strings.Contains(filepath.ToSlash(ev.Name), "/refs/heads/")
}
