package branchsync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync_BehindCurrentBranch(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("main").add("main", "origin/main", "3 0")
	o := New(repo, Options{})

	out, err := o.Sync(context.Background(), "", Policy{})
	require.NoError(t, err)
	assert.Equal(t, "main", out.Branch)
	assert.Equal(t, "origin/main", out.Upstream)
	assert.Equal(t, StatusFromCounts(3, 0), out.Status)
	assert.Equal(t, ResultSynced, out.Result.Kind)
	assert.Equal(t, []string{"rebase origin/main"}, repo.calls)
}

func TestSync_NoUpstream(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("feature").add("feature", "", "")
	o := New(repo, Options{Fetch: true})

	out, err := o.Sync(context.Background(), "", Policy{})
	require.NoError(t, err)
	assert.True(t, out.NoUpstream)
	assert.Equal(t, "feature", out.Branch)
	assert.Empty(t, repo.calls)
	assert.Empty(t, repo.fetched)
}

func TestSync_DivergedDryRun(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("main").add("main", "origin/main", "0 0").add("dev", "origin/dev", "2 4")
	o := New(repo, Options{Fetch: true})

	out, err := o.Sync(context.Background(), "dev", Policy{DryRun: true, UseMerge: true})
	require.NoError(t, err)
	assert.Equal(t, Status{Kind: StatusDiverged, Behind: 2, Ahead: 4}, out.Status)
	assert.Equal(t, ResultWouldSync, out.Result.Kind)
	assert.Empty(t, repo.calls)
	assert.Empty(t, repo.fetched, "dry run must not fetch")
}

func TestSync_AheadSkipped(t *testing.T) {
	t.Parallel()

	for _, p := range []Policy{{}, {UseMerge: true}, {DryRun: true}} {
		repo := newFakeRepo("main").add("main", "origin/main", "0 2")
		out, err := New(repo, Options{}).Sync(context.Background(), "", p)
		require.NoError(t, err)
		assert.Equal(t, ResultAhead, out.Result.Kind)
		assert.Empty(t, repo.calls)
	}
}

func TestSync_UpToDate(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("main").add("main", "origin/main", "0 0")
	out, err := New(repo, Options{}).Sync(context.Background(), "main", Policy{})
	require.NoError(t, err)
	assert.Equal(t, ResultUpToDate, out.Result.Kind)
	assert.Empty(t, repo.calls)
}

func TestSync_FatalErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	detached := newFakeRepo("").add("main", "origin/main", "0 0")
	_, err := New(detached, Options{}).Sync(ctx, "", Policy{})
	assert.ErrorIs(t, err, ErrDetachedHead)

	garbage := newFakeRepo("main").add("main", "origin/main", "garbage")
	_, err = New(garbage, Options{}).Sync(ctx, "", Policy{})
	assert.ErrorIs(t, err, ErrInvalidCounts)

	broken := newFakeRepo("main").add("main", "origin/main", "0 0")
	broken.upstreamErr["main"] = errors.New("fatal: not a git repository")
	_, err = New(broken, Options{}).Sync(ctx, "", Policy{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestSync_ReconcileFailureIsAResult(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("main").add("main", "origin/main", "1 1")
	repo.mergeErr["main"] = errConflict

	out, err := New(repo, Options{}).Sync(context.Background(), "", Policy{})
	require.NoError(t, err)
	assert.Equal(t, ResultError, out.Result.Kind)
	assert.Contains(t, out.Result.Reason, "CONFLICT")
}

func TestSync_FetchesRemoteOnce(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("main").add("main", "origin/main", "0 0")
	repo.fetchErr = errors.New("could not read from remote")

	out, err := New(repo, Options{Fetch: true}).Sync(context.Background(), "", Policy{})
	require.NoError(t, err, "fetch failure is only a warning")
	assert.Equal(t, ResultUpToDate, out.Result.Kind)
	assert.Equal(t, []string{"origin"}, repo.fetched)
}

func TestSync_OtherBranchReturnsToStart(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("main").add("main", "origin/main", "0 0").add("dev", "origin/dev", "2 0")

	out, err := New(repo, Options{}).Sync(context.Background(), "dev", Policy{})
	require.NoError(t, err)
	assert.Equal(t, ResultSynced, out.Result.Kind)
	assert.Equal(t, []string{"checkout dev", "rebase origin/dev", "checkout main"}, repo.calls)
	assert.Equal(t, "main", repo.current)
}

func TestSync_OtherBranchFailureStaysPut(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("main").add("main", "origin/main", "0 0").add("dev", "origin/dev", "1 1")
	repo.mergeErr["dev"] = errConflict

	out, err := New(repo, Options{}).Sync(context.Background(), "dev", Policy{UseMerge: true})
	require.NoError(t, err)
	assert.Equal(t, ResultError, out.Result.Kind)
	assert.Equal(t, []string{"checkout dev", "merge origin/dev"}, repo.calls)
	assert.Equal(t, "dev", repo.current, "a failed merge is left for the user to resolve")
}

// batchRepo has main behind, feature without upstream, dev diverged, and
// topic ahead.
func batchRepo() *fakeRepo {
	return newFakeRepo("main").
		add("dev", "origin/dev", "2 4").
		add("feature", "", "").
		add("main", "origin/main", "3 0").
		add("topic", "upstream/topic", "0 1")
}

func TestSyncAll_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	repo := batchRepo()
	repo.current = "topic"
	repo.mergeErr["dev"] = errConflict
	o := New(repo, Options{})

	report, err := o.SyncAll(context.Background(), Policy{})
	require.NoError(t, err)

	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, "dev", report.Outcomes[0].Branch)
	assert.Equal(t, ResultError, report.Outcomes[0].Result.Kind)
	assert.Equal(t, "main", report.Outcomes[1].Branch)
	assert.Equal(t, ResultSynced, report.Outcomes[1].Result.Kind)
	assert.Equal(t, "topic", report.Outcomes[2].Branch)
	assert.Equal(t, ResultAhead, report.Outcomes[2].Result.Kind)

	assert.Equal(t, 1, report.NoUpstream)
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 1, report.Synced())
	assert.Equal(t, 1, report.Ahead())
	assert.Equal(t, StrategyRebase, report.Strategy)

	assert.Equal(t, []string{
		"checkout dev", "rebase origin/dev",
		"checkout main", "rebase origin/main",
	}, repo.calls)
	// No checkout back to topic after a failure.
	assert.Equal(t, "main", repo.current)
}

func TestSyncAll_RestoresStartBranch(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("topic").
		add("dev", "origin/dev", "2 0").
		add("topic", "origin/topic", "0 0")

	report, err := New(repo, Options{}).SyncAll(context.Background(), Policy{UseMerge: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced())
	assert.Equal(t, []string{"checkout dev", "merge origin/dev", "checkout topic"}, repo.calls)
	assert.Equal(t, "topic", repo.current)
}

// A branch whose counts cannot be read was never reconciled, so it must not
// keep the batch from returning to the starting branch.
func TestSyncAll_ClassifyFailureStillRestores(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo("main").
		add("broken", "origin/broken", "0 0").
		add("feature", "origin/feature", "2 0").
		add("main", "origin/main", "0 0")
	repo.countErr["broken"] = errors.New("fatal: bad revision 'origin/broken...broken'")

	report, err := New(repo, Options{}).SyncAll(context.Background(), Policy{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced())
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, []string{"checkout feature", "rebase origin/feature", "checkout main"}, repo.calls)
	assert.Equal(t, "main", repo.current)
}

// Every branch with an upstream appears in the report exactly once.
func TestSyncAll_Completeness(t *testing.T) {
	t.Parallel()

	repo := batchRepo()
	report, err := New(repo, Options{}).SyncAll(context.Background(), Policy{DryRun: true})
	require.NoError(t, err)

	seen := map[string]int{}
	for _, o := range report.Outcomes {
		seen[o.Branch]++
	}
	assert.Equal(t, map[string]int{"dev": 1, "main": 1, "topic": 1}, seen)
	assert.Equal(t, len(repo.branches)-report.NoUpstream, report.Classified())
}

func TestSyncAll_DryRunIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := batchRepo()
	o := New(repo, Options{Fetch: true})
	p := Policy{DryRun: true}

	first, err := o.SyncAll(context.Background(), p)
	require.NoError(t, err)
	second, err := o.SyncAll(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.WouldSync())
	assert.True(t, first.DryRun)
	assert.Empty(t, repo.calls)
	assert.Empty(t, repo.fetched)
}

func TestSyncAll_RealRunConverges(t *testing.T) {
	t.Parallel()

	repo := batchRepo()
	o := New(repo, Options{})

	_, err := o.SyncAll(context.Background(), Policy{})
	require.NoError(t, err)

	second, err := o.SyncAll(context.Background(), Policy{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Synced())
	for _, out := range second.Outcomes {
		assert.NotEqual(t, StatusBehind, out.Status.Kind, out.Branch)
		assert.NotEqual(t, StatusDiverged, out.Status.Kind, out.Branch)
	}
}

func TestPlan_ExcludeAndFetch(t *testing.T) {
	t.Parallel()

	repo := batchRepo().add("wip/one", "origin/wip/one", "5 0")
	repo.countErr["topic"] = errors.New("fatal: bad revision")
	o := New(repo, Options{Fetch: true, Exclude: []string{"wip/*"}})

	plan, err := o.Plan(context.Background(), Policy{})
	require.NoError(t, err)

	assert.Equal(t, "main", plan.Start)
	assert.Equal(t, []string{"wip/one"}, plan.Excluded)
	assert.Equal(t, []string{"feature"}, plan.NoUpstream)
	assert.Equal(t, []string{"origin", "upstream"}, repo.fetched)
	require.Len(t, plan.Entries, 3)
	assert.Equal(t, 2, plan.Pending())

	var topic Entry
	for _, e := range plan.Entries {
		if e.Branch == "topic" {
			topic = e
		}
	}
	require.Error(t, topic.Err)
	assert.False(t, topic.Pending())

	report := o.Apply(context.Background(), plan, Policy{DryRun: true})
	assert.Equal(t, 1, report.Excluded)
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 2, report.WouldSync())
}

func TestApply_Progress(t *testing.T) {
	t.Parallel()

	var seen []string
	repo := batchRepo()
	o := New(repo, Options{Progress: func(branch string, i, total int) {
		assert.Equal(t, 3, total)
		seen = append(seen, branch)
	}})

	_, err := o.SyncAll(context.Background(), Policy{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "main", "topic"}, seen)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	repo := batchRepo()
	repo.countErr["topic"] = errors.New("fatal: bad revision")

	states, err := New(repo, Options{}).Inspect(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 4)

	assert.Equal(t, BranchState{Branch: "dev", Upstream: "origin/dev", Status: StatusFromCounts(2, 4)}, states[0])
	assert.Equal(t, BranchState{Branch: "feature"}, states[1])
	assert.Equal(t, BranchState{Branch: "main", Upstream: "origin/main", Current: true, Status: StatusFromCounts(3, 0)}, states[2])
	assert.Equal(t, BranchState{Branch: "topic", Upstream: "upstream/topic", Status: Unknown()}, states[3])
	assert.Empty(t, repo.calls)
}

func TestRemoteOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "origin", remoteOf("origin/main"))
	assert.Equal(t, "upstream", remoteOf("upstream/feature/x"))
	assert.Equal(t, "", remoteOf("main"))
}

func TestApply_IgnoresCancellation(t *testing.T) {
	t.Parallel()

	repo := batchRepo()
	o := New(repo, Options{})
	plan, err := o.Plan(context.Background(), Policy{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := o.Apply(ctx, plan, Policy{})
	assert.Equal(t, 2, report.Synced())
}
