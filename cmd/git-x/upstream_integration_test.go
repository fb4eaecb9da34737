//go:build integration

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simeg/git-x-sub001/internal/config"
	"github.com/simeg/git-x-sub001/internal/upstream"
)

// TestUpstreamSet_Branch tests assigning an upstream to another branch.
//
// Scenario: User runs `git-x upstream set origin/main --branch feature`
// Expected: feature tracks origin/main
func TestUpstreamSet_Branch(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupRepoWithOrigin(t)
	runGit(t, repoPath, "branch", "feature")

	ctx, out := testContext(t, repoPath)
	cmd := newUpstreamCmd()
	cmd.SetErr(io.Discard)
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"set", "origin/main", "--branch", "feature"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("upstream set failed: %v", err)
	}

	if got := runGit(t, repoPath, "rev-parse", "--abbrev-ref", "feature@{upstream}"); got != "origin/main" {
		t.Errorf("feature upstream = %q, want origin/main", got)
	}
	if got := plain(out); !strings.Contains(got, "Upstream for 'feature' set to 'origin/main'") {
		t.Errorf("output = %q, want confirmation", got)
	}
}

// TestUpstreamSet_Errors tests invalid and missing upstreams.
func TestUpstreamSet_Errors(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupRepoWithOrigin(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"missing remote ref", []string{"set", "origin/nope"}, upstream.ErrNotFound},
		{"no slash", []string{"set", "main"}, upstream.ErrInvalidFormat},
		{"empty branch part", []string{"set", "origin/"}, upstream.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(t, repoPath)
			cmd := newUpstreamCmd()
			cmd.SetErr(io.Discard)
			cmd.SetContext(ctx)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); !errors.Is(err, tt.wantErr) {
				t.Errorf("upstream %v error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

// TestUpstreamStatus tests the status listing.
//
// Scenario: main tracks origin/main, feature tracks nothing
// Expected: One line per branch with the current branch marked
func TestUpstreamStatus(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupRepoWithOrigin(t)
	runGit(t, repoPath, "branch", "feature")

	ctx, out := testContext(t, repoPath)
	cmd := newUpstreamCmd()
	cmd.SetErr(io.Discard)
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"status"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("upstream status failed: %v", err)
	}

	got := plain(out)
	for _, want := range []string{
		"  feature -> (no upstream)",
		"* main -> origin/main (✓ up-to-date)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, want line %q", got, want)
		}
	}
}

// TestUpstreamStatus_Table tests the tabular status listing.
func TestUpstreamStatus_Table(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupRepoWithOrigin(t)

	ctx, out := testContext(t, repoPath)
	cmd := newUpstreamCmd()
	cmd.SetErr(io.Discard)
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"status", "--table"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("upstream status --table failed: %v", err)
	}

	got := plain(out)
	for _, want := range []string{"BRANCH", "UPSTREAM", "STATUS", "origin/main"} {
		if !strings.Contains(got, want) {
			t.Errorf("table = %q, want %q", got, want)
		}
	}
}

// setupBatchRepo prepares main behind origin/main and topic diverged from
// origin/topic with a conflicting change. The repo is left on main.
func setupBatchRepo(t *testing.T) string {
	t.Helper()

	repoPath, originPath := setupRepoWithOrigin(t)
	createTrackingBranch(t, repoPath, "topic")

	pushFromOtherClone(t, originPath, "main", "remote.txt", "remote\n")
	pushFromOtherClone(t, originPath, "topic", "README.md", "# remote topic\n")

	runGit(t, repoPath, "checkout", "topic")
	commitFile(t, repoPath, "README.md", "# local topic\n")
	runGit(t, repoPath, "checkout", "main")

	return repoPath
}

// TestUpstreamSyncAll_ContinuesPastFailure tests a batch with a conflict.
//
// Scenario: main is behind, topic conflicts with its upstream
// Expected: main is synced, topic fails, the summary covers both and the
// command exits with errSyncFailed
func TestUpstreamSyncAll_ContinuesPastFailure(t *testing.T) {
	t.Parallel()

	repoPath := setupBatchRepo(t)

	ctx, out := testContext(t, repoPath)
	cmd := newUpstreamCmd()
	cmd.SetErr(io.Discard)
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"sync-all"})

	if err := cmd.Execute(); !errors.Is(err, errSyncFailed) {
		t.Fatalf("sync-all error = %v, want errSyncFailed", err)
	}

	got := plain(out)
	for _, want := range []string{
		"Syncing 2 branches with upstream using rebase:",
		"✓ main -> origin/main: rebased (was 1 behind)",
		"✗ topic -> origin/topic:",
		"Synced 1 branch (1 failed).",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, want %q", got, want)
		}
	}
}

// TestUpstreamSyncAll_DryRun tests that a dry run reports without changes.
func TestUpstreamSyncAll_DryRun(t *testing.T) {
	t.Parallel()

	repoPath := setupBatchRepo(t)
	runGit(t, repoPath, "fetch", "origin")
	before := runGit(t, repoPath, "rev-parse", "main", "topic")

	ctx, out := testContext(t, repoPath)
	cmd := newUpstreamCmd()
	cmd.SetErr(io.Discard)
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"sync-all", "--dry-run"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("sync-all --dry-run failed: %v", err)
	}

	got := plain(out)
	for _, want := range []string{
		"(dry run) Would sync 2 branches with upstream using rebase:",
		"→ main -> origin/main: would rebase (1 behind)",
		"→ topic -> origin/topic: would rebase (1 behind, 1 ahead)",
		"Run without --dry-run to apply changes.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, want %q", got, want)
		}
	}
	if after := runGit(t, repoPath, "rev-parse", "main", "topic"); after != before {
		t.Errorf("branches moved during dry run:\n%s\n%s", before, after)
	}
}

// TestUpstreamSyncAll_LocalConfig tests .git-x.toml exclusion and confirmation.
//
// Scenario: The repo excludes topic and requires confirmation
// Expected: Without a terminal the run refuses until --yes is passed, then
// only main is synced and the work tree is back on main
func TestUpstreamSyncAll_LocalConfig(t *testing.T) {
	t.Parallel()

	repoPath := setupBatchRepo(t)
	local := "[sync]\nconfirm = true\nexclude = [\"top*\"]\n"
	if err := os.WriteFile(filepath.Join(repoPath, config.LocalConfigFileName), []byte(local), 0644); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}

	ctx, _ := testContext(t, repoPath)
	cmd := newUpstreamCmd()
	cmd.SetErr(io.Discard)
	cmd.SetContext(ctx)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"sync-all"})
	if err := cmd.Execute(); !errors.Is(err, errConfirmRequired) {
		t.Fatalf("sync-all without --yes error = %v, want errConfirmRequired", err)
	}

	ctx, out := testContext(t, repoPath)
	cmd = newUpstreamCmd()
	cmd.SetErr(io.Discard)
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"sync-all", "--yes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("sync-all --yes failed: %v", err)
	}

	if got := plain(out); !strings.Contains(got, "Synced 1 branch (1 excluded).") {
		t.Errorf("output = %q, want one synced and one excluded", got)
	}
	if got := runGit(t, repoPath, "branch", "--show-current"); got != "main" {
		t.Errorf("current branch = %q, want main", got)
	}
}
