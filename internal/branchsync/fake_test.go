package branchsync

import (
	"context"
	"errors"
	"fmt"
)

// fakeRepo is an in-memory Repository. Counts are keyed by branch and
// returned verbatim as the ahead/behind record.
type fakeRepo struct {
	current   string
	branches  []string
	upstreams map[string]string
	counts    map[string]string

	upstreamErr map[string]error
	countErr    map[string]error
	mergeErr    map[string]error // keyed by branch being reconciled
	fetchErr    error

	calls   []string
	fetched []string
}

func newFakeRepo(current string) *fakeRepo {
	return &fakeRepo{
		current:     current,
		upstreams:   map[string]string{},
		counts:      map[string]string{},
		upstreamErr: map[string]error{},
		countErr:    map[string]error{},
		mergeErr:    map[string]error{},
	}
}

// add registers a branch with an optional upstream and ahead/behind record.
func (f *fakeRepo) add(branch, upstream, counts string) *fakeRepo {
	f.branches = append(f.branches, branch)
	if upstream != "" {
		f.upstreams[branch] = upstream
		f.counts[branch] = counts
	}
	return f
}

func (f *fakeRepo) CurrentBranch(context.Context) (string, error) {
	return f.current, nil
}

func (f *fakeRepo) LocalBranches(context.Context) ([]string, error) {
	return f.branches, nil
}

func (f *fakeRepo) Upstream(_ context.Context, branch string) (string, bool, error) {
	if err := f.upstreamErr[branch]; err != nil {
		return "", false, err
	}
	u, ok := f.upstreams[branch]
	return u, ok, nil
}

func (f *fakeRepo) AheadBehind(_ context.Context, branch, _ string) (string, error) {
	if err := f.countErr[branch]; err != nil {
		return "", err
	}
	return f.counts[branch], nil
}

func (f *fakeRepo) Checkout(_ context.Context, branch string) error {
	f.calls = append(f.calls, "checkout "+branch)
	f.current = branch
	return nil
}

func (f *fakeRepo) Merge(_ context.Context, upstream string) error {
	f.calls = append(f.calls, "merge "+upstream)
	return f.reconcile()
}

func (f *fakeRepo) Rebase(_ context.Context, upstream string) error {
	f.calls = append(f.calls, "rebase "+upstream)
	return f.reconcile()
}

func (f *fakeRepo) reconcile() error {
	if err := f.mergeErr[f.current]; err != nil {
		return err
	}
	f.counts[f.current] = fmt.Sprintf("0 %s", aheadOf(f.counts[f.current]))
	return nil
}

func (f *fakeRepo) Fetch(_ context.Context, remote string) error {
	f.fetched = append(f.fetched, remote)
	return f.fetchErr
}

func aheadOf(counts string) string {
	var behind, ahead int
	if _, err := fmt.Sscan(counts, &behind, &ahead); err != nil {
		return "0"
	}
	return fmt.Sprint(ahead)
}

var errConflict = errors.New("rebase failed: CONFLICT (content): Merge conflict in README.md")
