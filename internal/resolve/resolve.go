package resolve

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sahilm/fuzzy"
)

// ErrBranchNotFound indicates the named branch does not exist locally.
var ErrBranchNotFound = goerr.New("branch not found")

// maxSuggestions caps the names offered in a not-found error.
const maxSuggestions = 3

// Branches lists local branches.
type Branches interface {
	LocalBranches(ctx context.Context) ([]string, error)
}

// NotFoundError carries the suggestions for a missing branch.
type NotFoundError struct {
	Branch      string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("branch %q not found", e.Branch)
	if len(e.Suggestions) > 0 {
		msg += "; did you mean " + strings.Join(e.Suggestions, ", ") + "?"
	}
	return msg
}

// Is makes errors.Is(err, ErrBranchNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// Branch returns name if it is a local branch. An empty name is passed
// through untouched; callers treat it as the current branch.
func Branch(ctx context.Context, repo Branches, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	branches, err := repo.LocalBranches(ctx)
	if err != nil {
		return "", err
	}
	if slices.Contains(branches, name) {
		return name, nil
	}
	return "", &NotFoundError{Branch: name, Suggestions: Suggest(name, branches)}
}

// Suggest returns up to three branches resembling name, best match first.
// A branch matches when name fuzzy-matches it, or it fuzzy-matches name
// (for names that overshoot, like "main2").
func Suggest(name string, branches []string) []string {
	var out []string
	add := func(b string) {
		if len(out) < maxSuggestions && !slices.Contains(out, b) {
			out = append(out, b)
		}
	}

	for _, m := range fuzzy.FindFrom(name, branchSource(branches)) {
		add(m.Str)
	}
	for _, b := range branches {
		if len(fuzzy.Find(b, []string{name})) > 0 {
			add(b)
		}
	}
	return out
}

// branchSource implements fuzzy.Source over branch names.
type branchSource []string

func (s branchSource) String(i int) string { return s[i] }
func (s branchSource) Len() int            { return len(s) }
