// Package branchsync decides how local branches relate to their upstreams
// and reconciles them by merge or rebase.
//
// The pipeline for one branch is
//
//	Resolver (upstream?) -> Classify (Status) -> skip | Executor (Result)
//
// and the [Orchestrator] drives it for the current branch ([Orchestrator.Sync])
// or for every local branch ([Orchestrator.SyncAll], split into
// [Orchestrator.Plan] and [Orchestrator.Apply] so callers can confirm before
// anything is mutated).
//
// # Status
//
// [Classify] turns the raw output of
//
//	git rev-list --left-right --count <upstream>...<branch>
//
// into a [Status]. The first column counts commits only on the upstream
// (behind), the second commits only on the branch (ahead). Both must be
// unsigned 32-bit integers; anything else is [ErrInvalidCounts].
//
// # Policy
//
// A [Policy] selects merge or rebase and dry-run. It is resolved once by the
// caller and passed to every call; nothing in this package reads the
// environment.
//
// # Failure Model
//
// Single-branch mode returns environment and parse failures as errors.
// Batch mode records them per branch as [ResultError] and always completes.
// Failed merges and rebases are never aborted; the repository is left in the
// state git left it in.
//
// Branches are processed strictly one at a time: the work tree and index are
// a single shared resource.
package branchsync
