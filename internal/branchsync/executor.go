package branchsync

import (
	"context"

	"github.com/simeg/git-x-sub001/internal/log"
)

// Target is a classified branch handed to the Executor.
type Target struct {
	Branch   string
	Upstream string
	Status   Status
}

// Executor applies or simulates the reconciling action for one branch.
type Executor struct {
	repo Reconciler
}

// NewExecutor creates an Executor acting on repo.
func NewExecutor(repo Reconciler) *Executor {
	return &Executor{repo: repo}
}

// Apply reconciles t.Branch with t.Upstream according to p.
//
// Targets that need no action mirror their status. In dry-run mode the
// repository is never touched. Otherwise the branch is checked out if needed
// and merged or rebased; a failure is returned as ResultError and whatever
// state git left behind is kept.
func (e *Executor) Apply(ctx context.Context, t Target, p Policy) Result {
	if !t.Status.NeedsReconcile() {
		return passiveResult(t.Status)
	}
	if p.DryRun {
		return Result{Kind: ResultWouldSync}
	}

	l := log.FromContext(ctx)

	current, err := e.repo.CurrentBranch(ctx)
	if err != nil {
		return Failed(err.Error())
	}
	if current != t.Branch {
		l.Debug("checking out", "branch", t.Branch, "from", current)
		if err := e.repo.Checkout(ctx, t.Branch); err != nil {
			return Failed(err.Error())
		}
	}

	l.Debug("reconciling", "branch", t.Branch, "upstream", t.Upstream, "strategy", p.Strategy())
	if p.UseMerge {
		err = e.repo.Merge(ctx, t.Upstream)
	} else {
		err = e.repo.Rebase(ctx, t.Upstream)
	}
	if err != nil {
		return Failed(err.Error())
	}
	return Result{Kind: ResultSynced}
}
