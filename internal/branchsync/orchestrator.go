package branchsync

import (
	"context"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/simeg/git-x-sub001/internal/log"
)

// Options configure an Orchestrator.
type Options struct {
	// Fetch refreshes the remotes of involved upstreams before classifying.
	// Never done in dry-run mode.
	Fetch bool

	// Exclude holds path.Match patterns of branches left out of batch runs.
	Exclude []string

	// Progress, if set, is called before each branch of a batch is applied.
	Progress func(branch string, index, total int)
}

// Orchestrator runs the resolve, classify, reconcile pipeline.
type Orchestrator struct {
	repo     Repository
	resolver *Resolver
	executor *Executor
	opts     Options
}

// New creates an Orchestrator for repo.
func New(repo Repository, opts Options) *Orchestrator {
	return &Orchestrator{
		repo:     repo,
		resolver: NewResolver(repo),
		executor: NewExecutor(repo),
		opts:     opts,
	}
}

// Sync reconciles a single branch, the current one when branch is empty.
//
// A branch without upstream yields an Outcome with NoUpstream set and no
// error. Environment and parse failures are returned as errors. A failed
// merge or rebase is reported through Outcome.Result.
//
// Syncing a branch other than the current one checks it out for the merge or
// rebase and returns to the starting branch afterwards, unless the merge or
// rebase failed.
func (o *Orchestrator) Sync(ctx context.Context, branch string, p Policy) (Outcome, error) {
	l := log.FromContext(ctx)

	if branch == "" {
		current, err := o.repo.CurrentBranch(ctx)
		if err != nil {
			return Outcome{}, err
		}
		if current == "" {
			return Outcome{}, ErrDetachedHead
		}
		branch = current
	}

	upstream, ok, err := o.resolver.Resolve(ctx, branch)
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		l.Debug("no upstream", "branch", branch)
		return Outcome{Branch: branch, NoUpstream: true}, nil
	}

	out := Outcome{Branch: branch, Upstream: upstream}

	if o.opts.Fetch && !p.DryRun {
		o.fetchRemotes(ctx, []string{upstream})
	}

	status, err := o.classify(ctx, branch, upstream)
	if err != nil {
		return out, err
	}
	out.Status = status
	l.Debug("classified", "branch", branch, "upstream", upstream, "status", status)

	if !status.NeedsReconcile() {
		out.Result = passiveResult(status)
		return out, nil
	}

	var start string
	if !p.DryRun {
		if start, err = o.repo.CurrentBranch(ctx); err != nil {
			return out, err
		}
	}

	out.Result = o.executor.Apply(ctx, Target{Branch: branch, Upstream: upstream, Status: status}, p)
	if start != "" && start != branch {
		o.restore(ctx, start, out.Result.Kind == ResultError, l)
	}
	return out, nil
}

// Entry is one branch of a batch plan.
type Entry struct {
	Branch   string
	Upstream string
	Status   Status
	Err      error // resolution or classification failure
}

// Pending reports whether the entry will be handed to the executor.
func (e Entry) Pending() bool {
	return e.Err == nil && e.Status.NeedsReconcile()
}

// Plan is the classified set of branches of a batch run.
type Plan struct {
	Start      string // branch checked out when planning, empty if detached
	Entries    []Entry
	NoUpstream []string
	Excluded   []string
}

// Pending returns the number of entries that would be reconciled.
func (pl Plan) Pending() int {
	n := 0
	for _, e := range pl.Entries {
		if e.Pending() {
			n++
		}
	}
	return n
}

// Plan enumerates local branches, drops excluded ones and those without
// upstream, and classifies the rest. Per-branch failures are recorded on the
// entry; only failing to enumerate branches is fatal.
func (o *Orchestrator) Plan(ctx context.Context, p Policy) (Plan, error) {
	l := log.FromContext(ctx)

	start, err := o.repo.CurrentBranch(ctx)
	if err != nil {
		return Plan{}, err
	}
	branches, err := o.repo.LocalBranches(ctx)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{Start: start}
	for _, b := range branches {
		if o.excluded(b) {
			plan.Excluded = append(plan.Excluded, b)
			continue
		}
		upstream, ok, err := o.resolver.Resolve(ctx, b)
		if err != nil {
			plan.Entries = append(plan.Entries, Entry{Branch: b, Err: err})
			continue
		}
		if !ok {
			plan.NoUpstream = append(plan.NoUpstream, b)
			continue
		}
		plan.Entries = append(plan.Entries, Entry{Branch: b, Upstream: upstream})
	}

	if o.opts.Fetch && !p.DryRun {
		var upstreams []string
		for _, e := range plan.Entries {
			if e.Err == nil {
				upstreams = append(upstreams, e.Upstream)
			}
		}
		o.fetchRemotes(ctx, upstreams)
	}

	for i := range plan.Entries {
		e := &plan.Entries[i]
		if e.Err != nil {
			continue
		}
		status, err := o.classify(ctx, e.Branch, e.Upstream)
		if err != nil {
			e.Err = err
			continue
		}
		e.Status = status
		l.Debug("classified", "branch", e.Branch, "upstream", e.Upstream, "status", status)
	}

	return plan, nil
}

// Apply reconciles the pending entries of plan one at a time. It never stops
// early: every entry produces an outcome, and cancelling ctx does not
// interrupt a started batch. After a real run that changed branches, the
// starting branch is checked out again unless a merge or rebase failed, in
// which case the work tree is left for the user. Branches that failed before
// reconciliation (upstream or count lookup) do not block the restore.
func (o *Orchestrator) Apply(ctx context.Context, plan Plan, p Policy) Report {
	ctx = context.WithoutCancel(ctx)
	l := log.FromContext(ctx)

	report := Report{
		DryRun:     p.DryRun,
		Strategy:   p.Strategy(),
		NoUpstream: len(plan.NoUpstream),
		Excluded:   len(plan.Excluded),
	}

	attempted, attemptFailed := 0, 0
	for i, e := range plan.Entries {
		if o.opts.Progress != nil {
			o.opts.Progress(e.Branch, i, len(plan.Entries))
		}

		out := Outcome{Branch: e.Branch, Upstream: e.Upstream, Status: e.Status}
		switch {
		case e.Err != nil:
			out.Result = Failed(e.Err.Error())
		case !e.Status.NeedsReconcile():
			out.Result = passiveResult(e.Status)
		default:
			if !p.DryRun {
				attempted++
			}
			out.Result = o.executor.Apply(ctx, Target{Branch: e.Branch, Upstream: e.Upstream, Status: e.Status}, p)
			if out.Result.Kind == ResultError {
				attemptFailed++
			}
		}
		report.Outcomes = append(report.Outcomes, out)
	}

	if attempted > 0 && plan.Start != "" {
		o.restore(ctx, plan.Start, attemptFailed > 0, l)
	}

	return report
}

// SyncAll plans and applies a batch run.
func (o *Orchestrator) SyncAll(ctx context.Context, p Policy) (Report, error) {
	plan, err := o.Plan(ctx, p)
	if err != nil {
		return Report{DryRun: p.DryRun, Strategy: p.Strategy()}, err
	}
	return o.Apply(ctx, plan, p), nil
}

// BranchState is one line of the upstream status listing.
type BranchState struct {
	Branch   string
	Upstream string // empty when none is configured
	Current  bool
	Status   Status
}

// Inspect reports every local branch with its upstream and status without
// fetching or reconciling. Statuses that cannot be determined are Unknown.
func (o *Orchestrator) Inspect(ctx context.Context) ([]BranchState, error) {
	l := log.FromContext(ctx)

	branches, err := o.repo.LocalBranches(ctx)
	if err != nil {
		return nil, err
	}
	current, err := o.repo.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	states := make([]BranchState, 0, len(branches))
	for _, b := range branches {
		st := BranchState{Branch: b, Current: b == current}
		upstream, ok, err := o.resolver.Resolve(ctx, b)
		if err != nil {
			l.Debug("upstream lookup failed", "branch", b, "error", err)
		}
		if ok {
			st.Upstream = upstream
			status, err := o.classify(ctx, b, upstream)
			if err != nil {
				l.Debug("status unknown", "branch", b, "error", err)
				status = Unknown()
			}
			st.Status = status
		}
		states = append(states, st)
	}
	return states, nil
}

func (o *Orchestrator) classify(ctx context.Context, branch, upstream string) (Status, error) {
	raw, err := o.repo.AheadBehind(ctx, branch, upstream)
	if err != nil {
		return Status{}, goerr.Wrap(err, "failed to get sync status",
			goerr.V("branch", branch),
			goerr.V("upstream", upstream),
		)
	}
	return Classify(raw)
}

// fetchRemotes fetches each distinct remote named by upstreams once.
// Failures are warnings: classification proceeds against the refs we have.
func (o *Orchestrator) fetchRemotes(ctx context.Context, upstreams []string) {
	l := log.FromContext(ctx)
	seen := make(map[string]bool)
	for _, u := range upstreams {
		remote := remoteOf(u)
		if remote == "" || seen[remote] {
			continue
		}
		seen[remote] = true
		if err := o.repo.Fetch(ctx, remote); err != nil {
			l.Warnf("%v", err)
		}
	}
}

func (o *Orchestrator) restore(ctx context.Context, start string, failed bool, l *log.Logger) {
	current, err := o.repo.CurrentBranch(ctx)
	if err != nil || current == start {
		return
	}
	if failed {
		l.Warnf("left on branch %s; resolve it, then run 'git checkout %s'", current, start)
		return
	}
	if err := o.repo.Checkout(ctx, start); err != nil {
		l.Warnf("could not return to %s: %v", start, err)
	}
}

func (o *Orchestrator) excluded(branch string) bool {
	for _, pattern := range o.opts.Exclude {
		if ok, _ := path.Match(pattern, branch); ok {
			return true
		}
	}
	return false
}

// remoteOf returns the remote part of a "remote/branch" upstream, or ""
// for an upstream that tracks a local branch.
func remoteOf(upstream string) string {
	remote, _, found := strings.Cut(upstream, "/")
	if !found {
		return ""
	}
	return remote
}
