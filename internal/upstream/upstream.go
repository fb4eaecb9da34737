// Package upstream validates and assigns upstream tracking references.
package upstream

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/simeg/git-x-sub001/internal/log"
)

var (
	// ErrInvalidFormat indicates a reference that is not "remote/branch".
	ErrInvalidFormat = goerr.New("upstream must be in the form remote/branch")

	// ErrNotFound indicates the remote-tracking reference does not exist.
	ErrNotFound = goerr.New("upstream reference not found")

	// ErrDetachedHead indicates Set was asked to use the current branch while
	// none is checked out.
	ErrDetachedHead = goerr.New("HEAD is detached: pass --branch")
)

// Ref is a parsed "remote/branch" reference. Branch may contain slashes.
type Ref struct {
	Remote string
	Branch string
}

func (r Ref) String() string {
	return r.Remote + "/" + r.Branch
}

// Parse splits ref at its first slash.
func Parse(ref string) (Ref, error) {
	remote, branch, ok := strings.Cut(ref, "/")
	if !ok || remote == "" || branch == "" || strings.ContainsAny(ref, " \t\n") {
		return Ref{}, goerr.Wrap(ErrInvalidFormat, "invalid upstream", goerr.V("upstream", ref))
	}
	return Ref{Remote: remote, Branch: branch}, nil
}

// ValidateFormat reports whether ref has the "remote/branch" shape.
func ValidateFormat(ref string) error {
	_, err := Parse(ref)
	return err
}

// Repository is the version-control surface Set needs.
// *git.Repo implements it.
type Repository interface {
	CurrentBranch(ctx context.Context) (string, error)
	RemoteRefExists(ctx context.Context, ref string) bool
	SetUpstream(ctx context.Context, branch, upstream string) error
}

// Set makes ref the upstream of branch, or of the current branch when branch
// is empty. It returns the branch that was configured.
func Set(ctx context.Context, repo Repository, branch, ref string) (string, error) {
	parsed, err := Parse(ref)
	if err != nil {
		return "", err
	}

	if branch == "" {
		current, err := repo.CurrentBranch(ctx)
		if err != nil {
			return "", err
		}
		if current == "" {
			return "", ErrDetachedHead
		}
		branch = current
	}

	if !repo.RemoteRefExists(ctx, parsed.String()) {
		return "", goerr.Wrap(ErrNotFound, "upstream does not exist, fetch it first",
			goerr.V("upstream", parsed.String()),
		)
	}

	log.FromContext(ctx).Debug("setting upstream", "branch", branch, "upstream", parsed)
	if err := repo.SetUpstream(ctx, branch, parsed.String()); err != nil {
		return "", goerr.Wrap(err, "failed to set upstream",
			goerr.V("branch", branch),
			goerr.V("upstream", parsed.String()),
		)
	}
	return branch, nil
}
