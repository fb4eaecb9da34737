// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoDir, "git", "fetch", "origin"); err != nil {
//	    // err contains stderr output if available
//	    return fmt.Errorf("fetch failed: %w", err)
//	}
//
//	// For commands that return output:
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "branch")
//
// Every invocation is traced through the [log.Logger] attached to the context,
// so "git-x -v" prints each command with its duration.
//
// # Design Notes
//
// git-x shells out to the git CLI rather than using Go git libraries. This
// keeps merge and rebase behavior identical to what the user gets from git
// itself, including hooks, rerere and credential helpers.
package cmd
