package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// ErrNotRepository indicates the working directory is not inside a git work tree
var ErrNotRepository = errors.New("not a git repository (or any of the parent directories)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if dir is inside a git work tree.
// An empty dir means the current working directory.
func IsInsideRepo(ctx context.Context, dir string) bool {
	err := runGit(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// CheckRepo returns ErrGitNotFound or ErrNotRepository when dir cannot be
// operated on.
func CheckRepo(ctx context.Context, dir string) error {
	if err := CheckGit(); err != nil {
		return err
	}
	if !IsInsideRepo(ctx, dir) {
		return ErrNotRepository
	}
	return nil
}

// RepoRoot returns the top-level directory of the work tree containing dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}
