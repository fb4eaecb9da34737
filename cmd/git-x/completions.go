package main

import (
	"github.com/spf13/cobra"

	"github.com/simeg/git-x-sub001/internal/config"
	"github.com/simeg/git-x-sub001/internal/git"
)

// completeBranches completes the first argument with local branch names.
func completeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	branches, err := git.ListLocalBranches(ctx, config.WorkDirFromContext(ctx))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}

// completeRemoteRefs completes remote-tracking refs such as origin/main.
func completeRemoteRefs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	refs, err := git.ListRemoteRefs(ctx, config.WorkDirFromContext(ctx))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return refs, cobra.ShellCompDirectiveNoFileComp
}
