package branchsync

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidCounts indicates ahead/behind output that is not two unsigned integers.
	ErrInvalidCounts = goerr.New("invalid ahead/behind counts")

	// ErrEmptyBranch indicates an empty branch name was passed to the resolver.
	ErrEmptyBranch = goerr.New("branch name is empty")

	// ErrDetachedHead indicates no branch is checked out and none was named.
	ErrDetachedHead = goerr.New("HEAD is detached: check out a branch or name one explicitly")
)
