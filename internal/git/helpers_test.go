package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
		{"config", "pull.rebase", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// commitFile writes content to name and commits it.
func commitFile(t *testing.T, repoPath, name, content, msg string) {
	t.Helper()
	ctx := context.Background()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	if err := runGit(ctx, repoPath, "add", name); err != nil {
		t.Fatalf("failed to add %s: %v", name, err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", msg); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

// setupTestRepo creates a git repo with main branch, initial commit, and git config.
// Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	tmpDir := resolveTempDir(t)
	repoPath := filepath.Join(tmpDir, "test-repo")

	if err := runGit(context.Background(), "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	configureTestRepo(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test\n", "Initial commit")

	return repoPath
}

// setupTestRepoWithOrigin creates a repo with a bare origin remote and main
// tracking origin/main. Returns (repoPath, originPath).
func setupTestRepoWithOrigin(t *testing.T) (string, string) {
	t.Helper()
	tmpDir := resolveTempDir(t)

	originPath := filepath.Join(tmpDir, "origin.git")
	repoPath := filepath.Join(tmpDir, "repo")

	ctx := context.Background()

	// -b main ensures consistent default branch across git versions
	if err := runGit(ctx, "", "init", "--bare", "-b", "main", originPath); err != nil {
		t.Fatalf("failed to init bare repo: %v", err)
	}
	if err := runGit(ctx, "", "clone", originPath, repoPath); err != nil {
		t.Fatalf("failed to clone: %v", err)
	}
	configureTestRepo(t, repoPath)
	// An empty clone may start on the user's init.defaultBranch
	if err := runGit(ctx, repoPath, "symbolic-ref", "HEAD", "refs/heads/main"); err != nil {
		t.Fatalf("failed to point HEAD at main: %v", err)
	}
	commitFile(t, repoPath, "README.md", "# test\n", "Initial commit")
	if err := runGit(ctx, repoPath, "push", "-u", "origin", "main"); err != nil {
		t.Fatalf("failed to push: %v", err)
	}

	return repoPath, originPath
}

// pushFromOtherClone clones origin, commits a file on branch and pushes it,
// leaving the caller's repo behind until it fetches.
func pushFromOtherClone(t *testing.T, originPath, branch, name, content string) {
	t.Helper()
	ctx := context.Background()
	other := filepath.Join(resolveTempDir(t), "other")
	if err := runGit(ctx, "", "clone", "--branch", branch, originPath, other); err != nil {
		t.Fatalf("failed to clone: %v", err)
	}
	configureTestRepo(t, other)
	commitFile(t, other, name, content, "upstream change to "+name)
	if err := runGit(ctx, other, "push", "origin", branch); err != nil {
		t.Fatalf("failed to push: %v", err)
	}
}
