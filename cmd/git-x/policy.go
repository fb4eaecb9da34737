package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simeg/git-x-sub001/internal/branchsync"
	"github.com/simeg/git-x-sub001/internal/config"
)

// EnvStrategy overrides sync.strategy for a single invocation.
const EnvStrategy = "GIT_X_SYNC_STRATEGY"

// policyFlags are the reconciliation flags shared by sync and sync-all.
type policyFlags struct {
	merge   bool
	dryRun  bool
	noFetch bool
}

func addPolicyFlags(cmd *cobra.Command, f *policyFlags) {
	cmd.Flags().BoolVarP(&f.merge, "merge", "m", false, "Merge the upstream instead of rebasing onto it")
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "Show what would be done without changing anything")
	cmd.Flags().BoolVar(&f.noFetch, "no-fetch", false, "Compare against remote-tracking refs without fetching")
}

// fetch reports whether remotes are refreshed before comparing.
func (f policyFlags) fetch(cfg *config.Config) bool {
	return cfg.Sync.Fetch && !f.noFetch
}

// resolvePolicy layers the configured strategy, GIT_X_SYNC_STRATEGY and the
// command's flags into one Policy. Later sources win.
func resolvePolicy(cmd *cobra.Command, cfg *config.Config) (branchsync.Policy, error) {
	v := viper.New()
	v.SetDefault("strategy", cfg.Sync.Strategy)
	if err := v.BindEnv("strategy", EnvStrategy); err != nil {
		return branchsync.Policy{}, err
	}
	if err := v.BindPFlag("merge", cmd.Flags().Lookup("merge")); err != nil {
		return branchsync.Policy{}, err
	}
	if err := v.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run")); err != nil {
		return branchsync.Policy{}, err
	}

	strategy := v.GetString("strategy")
	if err := config.ValidateStrategy(strategy); err != nil {
		return branchsync.Policy{}, fmt.Errorf("%s: %w", EnvStrategy, err)
	}
	if v.GetBool("merge") {
		strategy = branchsync.StrategyMerge
	}

	return branchsync.Policy{
		UseMerge: strategy == branchsync.StrategyMerge,
		DryRun:   v.GetBool("dry_run"),
	}, nil
}
