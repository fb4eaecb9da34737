// Package cmd provides helpers for executing shell commands with proper error handling.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/simeg/git-x-sub001/internal/log"
)

// RunContext executes a command in dir and returns stderr in the error message if it fails.
// The command is traced through the logger attached to ctx.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := OutputContext(ctx, dir, name, args...)
	return err
}

// OutputContext executes a command in dir and returns stdout, with stderr in the error if it fails.
// Returns ctx.Err() unchanged when the context was cancelled.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		// Some git commands (merge) report conflicts on stdout only
		if outMsg := strings.TrimSpace(stdout.String()); outMsg != "" {
			return nil, fmt.Errorf("%s", outMsg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
