// Package progress provides progress indication components.
//
// This package contains components for showing progress during
// long-running operations: a spinner while remotes are fetched and
// a progress bar while branches are reconciled. Both draw to the
// writer they are given (stderr in the CLI) so stdout stays clean.
package progress

import (
	"fmt"
	"io"
	"time"

	tea "charm.land/bubbletea/v2"
)

// stopTimeout bounds how long Stop waits for the program to exit.
const stopTimeout = 500 * time.Millisecond

// runner owns the lifecycle of a bubbletea program drawing to out.
type runner struct {
	out     io.Writer
	program *tea.Program
	done    chan struct{}
}

func newRunner(out io.Writer) runner {
	return runner{out: out, done: make(chan struct{})}
}

func (r *runner) start(model tea.Model) {
	r.program = tea.NewProgram(model, tea.WithoutSignalHandler(), tea.WithOutput(r.out))
	go func() {
		_, _ = r.program.Run()
		close(r.done)
	}()
}

// stop quits the program, waits for it, and clears the line.
func (r *runner) stop() {
	if r.program != nil {
		r.program.Quit()
	}

	select {
	case <-r.done:
	case <-time.After(stopTimeout):
	}

	fmt.Fprint(r.out, "\r\033[K")
}
