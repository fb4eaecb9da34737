package branchsync

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// Resolver finds the upstream of a branch.
type Resolver struct {
	src UpstreamSource
}

// NewResolver creates a Resolver backed by src.
func NewResolver(src UpstreamSource) *Resolver {
	return &Resolver{src: src}
}

// Resolve returns the upstream of branch. A missing upstream is ok=false
// with a nil error; errors are reserved for collaborator failures.
func (r *Resolver) Resolve(ctx context.Context, branch string) (string, bool, error) {
	if branch == "" {
		return "", false, ErrEmptyBranch
	}
	upstream, ok, err := r.src.Upstream(ctx, branch)
	if err != nil {
		return "", false, goerr.Wrap(err, "failed to resolve upstream", goerr.V("branch", branch))
	}
	if !ok {
		return "", false, nil
	}
	return upstream, true, nil
}
