package main

import (
	"github.com/spf13/cobra"

	"github.com/simeg/git-x-sub001/internal/branchsync"
	"github.com/simeg/git-x-sub001/internal/format"
	"github.com/simeg/git-x-sub001/internal/log"
	"github.com/simeg/git-x-sub001/internal/output"
	"github.com/simeg/git-x-sub001/internal/resolve"
)

func newSyncCmd() *cobra.Command {
	var flags policyFlags

	cmd := &cobra.Command{
		Use:     "sync [branch]",
		Short:   "Bring a branch up to date with its upstream",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Bring a branch up to date with its upstream.

Without an argument the current branch is synced. A branch behind its
upstream is rebased onto it (or merged with --merge). A branch that is
ahead is reported and left alone. Syncing another branch checks it out
for the rebase and returns to the current branch afterwards, unless the
merge or rebase failed.

The strategy defaults to sync.strategy from the config and can be
overridden with GIT_X_SYNC_STRATEGY=merge|rebase.`,
		Example: `  git-x sync                # Sync the current branch
  git-x sync feature/login  # Sync another branch
  git-x sync --merge        # Merge instead of rebase
  git-x sync --dry-run      # Show what would happen`,
		ValidArgsFunction: completeBranches,
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

			var branch string
			if len(args) == 1 {
				branch, err = resolve.Branch(ctx, repo, args[0])
				if err != nil {
					return err
				}
			}

			l.Debug("sync", "branch", branch, "strategy", policy.Strategy(), "dry_run", policy.DryRun)

			orch := branchsync.New(repo, branchsync.Options{Fetch: flags.fetch(cfg)})
			outcome, err := orch.Sync(ctx, branch, policy)
			if err != nil {
				return err
			}

			out.Println(format.OutcomeLine(outcome, policy.Strategy()))
			if outcome.Result.Kind == branchsync.ResultError {
				return errSyncFailed
			}
			return nil
		},
	}

	addPolicyFlags(cmd, &flags)

	return cmd
}
