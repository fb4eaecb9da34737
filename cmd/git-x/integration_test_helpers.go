//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/simeg/git-x-sub001/internal/config"
	"github.com/simeg/git-x-sub001/internal/log"
	"github.com/simeg/git-x-sub001/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGit runs git in dir and returns its trimmed output.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run git %v: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// configureRepo sets git user config and disables GPG signing.
func configureRepo(t *testing.T, dir string) {
	t.Helper()
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")
}

// commitFile writes content to name in dir and commits it.
func commitFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-m", "change "+name)
}

// setupRepoWithOrigin creates a bare origin and a clone of it with main
// tracking origin/main. Returns (repoPath, originPath).
func setupRepoWithOrigin(t *testing.T) (string, string) {
	t.Helper()
	dir := resolvePath(t, t.TempDir())

	originPath := filepath.Join(dir, "origin.git")
	repoPath := filepath.Join(dir, "repo")

	runGit(t, dir, "init", "--bare", "-b", "main", originPath)
	runGit(t, dir, "clone", originPath, repoPath)
	configureRepo(t, repoPath)
	runGit(t, repoPath, "symbolic-ref", "HEAD", "refs/heads/main")
	commitFile(t, repoPath, "README.md", "# repo\n")
	runGit(t, repoPath, "push", "-u", "origin", "main")

	return repoPath, originPath
}

// createTrackingBranch creates branch from HEAD, publishes it with an
// upstream and returns to the previous branch.
func createTrackingBranch(t *testing.T, repoPath, branch string) {
	t.Helper()
	runGit(t, repoPath, "checkout", "-b", branch)
	runGit(t, repoPath, "push", "-u", "origin", branch)
	runGit(t, repoPath, "checkout", "-")
}

// pushFromOtherClone commits a file on branch in a separate clone and pushes
// it, leaving repoPath behind its upstream until it fetches.
func pushFromOtherClone(t *testing.T, originPath, branch, name, content string) {
	t.Helper()
	other := filepath.Join(resolvePath(t, t.TempDir()), "other")
	runGit(t, "", "clone", "--branch", branch, originPath, other)
	configureRepo(t, other)
	commitFile(t, other, name, content)
	runGit(t, other, "push", "origin", branch)
}

// testContext returns a context running commands in workDir with default
// config, discarded logs and output captured in the returned buffer.
func testContext(t *testing.T, workDir string) (context.Context, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	return testContextWithConfig(t, &cfg, workDir)
}

func testContextWithConfig(t *testing.T, cfg *config.Config, workDir string) (context.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &out)
	ctx = config.WithConfig(ctx, cfg)
	ctx = config.WithResolver(ctx, config.NewResolver(cfg))
	ctx = config.WithWorkDir(ctx, workDir)
	return ctx, &out
}

// plain strips styling from captured output.
func plain(out *bytes.Buffer) string {
	return ansi.Strip(out.String())
}
