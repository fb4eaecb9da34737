package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/simeg/git-x-sub001/internal/branchsync"
	"github.com/simeg/git-x-sub001/internal/format"
	"github.com/simeg/git-x-sub001/internal/log"
	"github.com/simeg/git-x-sub001/internal/output"
	"github.com/simeg/git-x-sub001/internal/resolve"
	"github.com/simeg/git-x-sub001/internal/ui/progress"
	"github.com/simeg/git-x-sub001/internal/ui/prompt"
	"github.com/simeg/git-x-sub001/internal/ui/static"
	"github.com/simeg/git-x-sub001/internal/upstream"
)

// errConfirmRequired is returned when sync.confirm is set but nobody can answer.
var errConfirmRequired = errors.New("confirmation required but stdin is not a terminal: pass --yes to sync")

func newUpstreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "upstream",
		Short:   "Inspect and manage upstream tracking branches",
		Aliases: []string{"up"},
		GroupID: GroupCore,
		Long: `Inspect and manage the upstream tracking branches of local branches.`,
		Example: `  git-x upstream status               # Show every branch and its upstream
  git-x upstream set origin/main      # Track origin/main from the current branch
  git-x upstream sync-all --dry-run   # Show what a batch sync would do`,
	}

	cmd.AddCommand(newUpstreamSetCmd())
	cmd.AddCommand(newUpstreamStatusCmd())
	cmd.AddCommand(newUpstreamSyncAllCmd())

	return cmd
}

func newUpstreamSetCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "set <remote/branch>",
		Short: "Set the upstream of a branch",
		Args:  cobra.ExactArgs(1),
		Long: `Set the upstream of a branch.

The upstream must be an existing remote-tracking ref such as origin/main;
fetch the remote first if it is missing. Without --branch the current
branch is configured.`,
		Example: `  git-x upstream set origin/main
  git-x upstream set origin/feature/login --branch feature/login`,
		ValidArgsFunction: completeRemoteRefs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repo, _, err := openRepo(ctx)
			if err != nil {
				return err
			}

			target, err := resolve.Branch(ctx, repo, branch)
			if err != nil {
				return err
			}

			configured, err := upstream.Set(ctx, repo, target, args[0])
			if err != nil {
				return err
			}

			out.Println(format.UpstreamSet(configured, args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to configure (default: current branch)")
	_ = cmd.RegisterFlagCompletionFunc("branch", completeBranches)

	return cmd
}

func newUpstreamStatusCmd() *cobra.Command {
	var (
		copyOutput bool
		tableView  bool
	)

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show every local branch and its upstream",
		Aliases: []string{"st"},
		Args:    cobra.NoArgs,
		Long: `Show every local branch with its upstream and how far apart they are.

Counts are taken from the remote-tracking refs as they are; run
"git fetch" first for fresh numbers.`,
		Example: `  git-x upstream status          # One line per branch
  git-x upstream status --table  # Aligned columns
  git-x upstream status --copy   # Also copy the listing to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			repo, _, err := openRepo(ctx)
			if err != nil {
				return err
			}

			states, err := branchsync.New(repo, branchsync.Options{}).Inspect(ctx)
			if err != nil {
				return err
			}

			var listing string
			if tableView && len(states) > 0 {
				rows, current := format.StatusRows(states)
				listing = static.RenderTable(format.StatusHeaders, rows, current)
			} else {
				listing = format.StatusListing(states)
			}
			out.Print(listing)

			if copyOutput {
				if err := clipboard.WriteAll(ansi.Strip(listing)); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				l.Printf("Copied %d branches to clipboard\n", len(states))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the listing to the clipboard")
	cmd.Flags().BoolVarP(&tableView, "table", "t", false, "Render the listing as aligned columns")

	return cmd
}

func newUpstreamSyncAllCmd() *cobra.Command {
	var (
		flags policyFlags
		yes   bool
	)

	cmd := &cobra.Command{
		Use:   "sync-all",
		Short: "Sync every branch that has an upstream",
		Args:  cobra.NoArgs,
		Long: `Sync every local branch that has an upstream.

Branches are processed one at a time in the order git lists them. Branches
behind their upstream are rebased (or merged with --merge); branches ahead
of it are skipped. A failing branch does not stop the run: the rest are
still processed and the failure is reported at the end, with exit code 1.

Branches matching sync.exclude are left out. With sync.confirm = true the
run asks before changing anything; --yes answers for you.`,
		Example: `  git-x upstream sync-all            # Rebase every branch behind its upstream
  git-x upstream sync-all --merge    # Merge instead
  git-x upstream sync-all --dry-run  # Report only
  git-x upstream sync-all --yes      # Skip the confirmation prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			repo, cfg, err := openRepo(ctx)
			if err != nil {
				return err
			}

			policy, err := resolvePolicy(cmd, cfg)
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()

			// Spinner and progress bar would interleave with verbose git traces
			interactive := !verbose && !quiet && isTerminal(stderr)

			var bar *progress.ProgressBar
			orch := branchsync.New(repo, branchsync.Options{
				Fetch:   flags.fetch(cfg),
				Exclude: cfg.Sync.Exclude,
				Progress: func(branch string, index, total int) {
					if bar != nil {
						bar.Branch(branch, index, total)
					}
					l.Debug("syncing branch", "branch", branch, "index", index, "total", total)
				},
			})

			var spinner *progress.Spinner
			if interactive && flags.fetch(cfg) && !policy.DryRun {
				spinner = progress.NewSpinner(stderr, "Fetching remotes...")
				spinner.Start()
			}
			plan, err := orch.Plan(ctx, policy)
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return err
			}

			pending := plan.Pending()
			if pending > 0 && !policy.DryRun && cfg.Sync.Confirm && !yes {
				if !isTerminal(cmd.InOrStdin()) {
					return errConfirmRequired
				}
				result, err := prompt.Confirm(stderr, prompt.SyncQuestion(pending, policy.Strategy()))
				if err != nil {
					return err
				}
				if !result.Confirmed {
					l.Println("Aborted")
					return nil
				}
			}

			if pending > 0 {
				out.Println(format.StartMessage(pending, policy.Strategy(), policy.DryRun))
			}

			if interactive && pending > 0 && !policy.DryRun {
				bar = progress.NewProgressBar(stderr, len(plan.Entries), "")
				bar.Start()
			}
			report := orch.Apply(ctx, plan, policy)
			if bar != nil {
				bar.Stop()
			}

			out.Print(format.Report(report))
			if report.Failed() > 0 {
				return errSyncFailed
			}
			return nil
		},
	}

	addPolicyFlags(cmd, &flags)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
