package git

import "context"

// Repo binds the package functions to one repository directory.
// An empty Dir means the current working directory.
type Repo struct {
	Dir string
}

// NewRepo returns a Repo operating on dir.
func NewRepo(dir string) *Repo {
	return &Repo{Dir: dir}
}

func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	return GetCurrentBranch(ctx, r.Dir)
}

func (r *Repo) LocalBranches(ctx context.Context) ([]string, error) {
	return ListLocalBranches(ctx, r.Dir)
}

func (r *Repo) Upstream(ctx context.Context, branch string) (string, bool, error) {
	return GetUpstream(ctx, r.Dir, branch)
}

func (r *Repo) AheadBehind(ctx context.Context, branch, upstream string) (string, error) {
	return AheadBehindRaw(ctx, r.Dir, branch, upstream)
}

func (r *Repo) Checkout(ctx context.Context, branch string) error {
	return Checkout(ctx, r.Dir, branch)
}

func (r *Repo) Merge(ctx context.Context, upstream string) error {
	return Merge(ctx, r.Dir, upstream)
}

func (r *Repo) Rebase(ctx context.Context, upstream string) error {
	return Rebase(ctx, r.Dir, upstream)
}

func (r *Repo) Fetch(ctx context.Context, remote string) error {
	return Fetch(ctx, r.Dir, remote)
}

func (r *Repo) BranchExists(ctx context.Context, branch string) bool {
	return BranchExists(ctx, r.Dir, branch)
}

func (r *Repo) RemoteRefExists(ctx context.Context, ref string) bool {
	return RemoteRefExists(ctx, r.Dir, ref)
}

func (r *Repo) SetUpstream(ctx context.Context, branch, upstream string) error {
	return SetUpstream(ctx, r.Dir, branch, upstream)
}

func (r *Repo) IsInside(ctx context.Context) bool {
	return IsInsideRepo(ctx, r.Dir)
}
