package branchsync

import "context"

// UpstreamSource looks up the configured upstream of a branch.
// ok is false, with a nil error, when none is configured.
type UpstreamSource interface {
	Upstream(ctx context.Context, branch string) (upstream string, ok bool, err error)
}

// Reconciler mutates the work tree.
type Reconciler interface {
	CurrentBranch(ctx context.Context) (string, error)
	Checkout(ctx context.Context, branch string) error
	Merge(ctx context.Context, upstream string) error
	Rebase(ctx context.Context, upstream string) error
}

// Repository is everything the orchestrator needs from version control.
// *git.Repo implements it.
type Repository interface {
	UpstreamSource
	Reconciler
	LocalBranches(ctx context.Context) ([]string, error)
	AheadBehind(ctx context.Context, branch, upstream string) (string, error)
	Fetch(ctx context.Context, remote string) error
}
