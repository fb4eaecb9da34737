package main

import (
	"context"

	"github.com/simeg/git-x-sub001/internal/config"
	"github.com/simeg/git-x-sub001/internal/git"
	"github.com/simeg/git-x-sub001/internal/log"
)

// openRepo returns the repository containing the working directory and the
// effective config for it (global merged with the repo's .git-x.toml).
func openRepo(ctx context.Context) (*git.Repo, *config.Config, error) {
	dir := config.WorkDirFromContext(ctx)
	if err := git.CheckRepo(ctx, dir); err != nil {
		return nil, nil, err
	}

	root, err := git.RepoRoot(ctx, dir)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.ResolverFromContext(ctx).ConfigForRepo(root)
	if err != nil {
		return nil, nil, err
	}
	log.FromContext(ctx).Debug("opened repository", "root", root, "strategy", cfg.Sync.Strategy)

	return git.NewRepo(root), cfg, nil
}
