package git

import (
	"context"
	"fmt"
	"strings"
)

// GetCurrentBranch returns the checked-out branch name.
// Returns an empty string for a detached HEAD.
func GetCurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ListLocalBranches returns local branch names in ref order.
func ListLocalBranches(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, fmt.Errorf("failed to list local branches: %v", err)
	}
	return splitLines(string(out)), nil
}

// ListRemoteRefs returns remote-tracking branches such as "origin/main",
// leaving out symbolic HEAD refs.
func ListRemoteRefs(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "for-each-ref", "--format=%(refname:short)", "refs/remotes/")
	if err != nil {
		return nil, fmt.Errorf("failed to list remote refs: %v", err)
	}
	var refs []string
	for _, ref := range splitLines(string(out)) {
		if !strings.Contains(ref, "/") || strings.HasSuffix(ref, "/HEAD") {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// GetUpstream returns the short name of the upstream configured for branch
// (e.g. "origin/main"). ok is false when no upstream is configured; err is
// only set when git itself failed.
func GetUpstream(ctx context.Context, dir, branch string) (upstream string, ok bool, err error) {
	out, err := outputGit(ctx, dir, "for-each-ref", "--format=%(upstream:short)", "refs/heads/"+branch)
	if err != nil {
		return "", false, fmt.Errorf("failed to read upstream of %s: %v", branch, err)
	}
	upstream = strings.TrimSpace(string(out))
	return upstream, upstream != "", nil
}

// AheadBehindRaw returns the raw "<behind>\t<ahead>" record produced by
// "git rev-list --left-right --count <upstream>...<branch>".
// The left column counts commits only reachable from upstream.
func AheadBehindRaw(ctx context.Context, dir, branch, upstream string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-list", "--left-right", "--count", upstream+"..."+branch)
	if err != nil {
		return "", fmt.Errorf("failed to compare %s with %s: %v", branch, upstream, err)
	}
	return string(out), nil
}

// BranchExists checks if a local branch exists
func BranchExists(ctx context.Context, dir, branch string) bool {
	return runGit(ctx, dir, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// RemoteRefExists checks if a remote-tracking ref such as "origin/main" exists
func RemoteRefExists(ctx context.Context, dir, ref string) bool {
	return runGit(ctx, dir, "rev-parse", "--verify", "--quiet", "refs/remotes/"+ref) == nil
}

// SetUpstream configures upstream as the tracking reference of branch.
func SetUpstream(ctx context.Context, dir, branch, upstream string) error {
	if err := runGit(ctx, dir, "branch", "--set-upstream-to="+upstream, branch); err != nil {
		return fmt.Errorf("failed to set upstream of %s to %s: %v", branch, upstream, err)
	}
	return nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
