package git

import (
	"context"
	"fmt"
)

// Checkout switches the work tree to branch.
func Checkout(ctx context.Context, dir, branch string) error {
	if err := runGit(ctx, dir, "checkout", "--quiet", branch, "--"); err != nil {
		return fmt.Errorf("failed to checkout %s: %v", branch, err)
	}
	return nil
}

// Merge merges upstream into the checked-out branch.
// A failed merge is left in place for the user to resolve.
func Merge(ctx context.Context, dir, upstream string) error {
	if err := runGit(ctx, dir, "merge", "--no-edit", upstream); err != nil {
		return fmt.Errorf("merge failed: %v", err)
	}
	return nil
}

// Rebase rebases the checked-out branch onto upstream.
// A stopped rebase is left in place for the user to continue or abort.
func Rebase(ctx context.Context, dir, upstream string) error {
	if err := runGit(ctx, dir, "rebase", upstream); err != nil {
		return fmt.Errorf("rebase failed: %v", err)
	}
	return nil
}

// Fetch fetches all branches of remote.
func Fetch(ctx context.Context, dir, remote string) error {
	if err := runGit(ctx, dir, "fetch", remote, "--quiet"); err != nil {
		return fmt.Errorf("failed to fetch %s: %v", remote, err)
	}
	return nil
}
