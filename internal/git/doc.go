// Package git provides git operations via shell commands.
//
// All operations call the git CLI through [cmd.OutputContext] rather than
// using Go git libraries. Merge and rebase therefore behave exactly like the
// user's own git, including hooks and configuration.
//
// # Branch Queries
//
//   - [GetCurrentBranch]: checked-out branch, empty when HEAD is detached
//   - [ListLocalBranches]: local branches in ref order
//   - [GetUpstream]: configured upstream; absence is reported as ok=false
//   - [AheadBehindRaw]: raw left/right commit counts against the upstream
//
// # Reconciliation
//
//   - [Checkout], [Merge], [Rebase]: mutate the work tree; failures are
//     returned with git's message and never aborted automatically
//   - [Fetch]: refresh remote-tracking refs
//   - [SetUpstream]: assign a tracking reference
//   - [ListRemoteRefs]: remote-tracking branches, for completion
//
// [Repo] binds these functions to a directory and is the implementation of
// the repository collaborator used by the branchsync package.
package git
