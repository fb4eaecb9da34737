package progress

import (
	"fmt"
	"io"
	"sync"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"

	"github.com/simeg/git-x-sub001/internal/ui/styles"
)

// progressUpdate is sent to update the progress bar
type progressUpdate struct {
	current int
	message string
}

// ProgressBar wraps a Bubbletea progress bar for simple non-interactive use.
// Use this for determinate operations where you know the total count.
type ProgressBar struct {
	runner
	updateCh  chan progressUpdate
	mu        sync.Mutex
	isRunning bool
	total     int
	current   int
	message   string
}

// progressBarModel is the internal Bubbletea model
type progressBarModel struct {
	progress progress.Model
	total    int
	current  int
	message  string
	updateCh chan progressUpdate
}

func (m progressBarModel) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m progressBarModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.updateCh
		if !ok {
			return tea.Quit()
		}
		return update
	}
}

func (m progressBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressUpdate:
		m.current = msg.current
		m.message = msg.message
		return m, m.waitForUpdate()
	case tea.KeyPressMsg:
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}
}

func (m progressBarModel) View() tea.View {
	if m.message == "" {
		return tea.NewView("")
	}

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.current) / float64(m.total)
	}

	// [████████░░░░░░░░]  45% Syncing feature/login (3/7)
	bar := m.progress.ViewAs(percent)
	return tea.NewView(fmt.Sprintf("%s %3d%% %s", bar, int(percent*100), m.message))
}

// NewProgressBar creates a progress bar drawing to out with the given total
// and message.
func NewProgressBar(out io.Writer, total int, message string) *ProgressBar {
	return &ProgressBar{
		runner:   newRunner(out),
		updateCh: make(chan progressUpdate, 10),
		total:    total,
		message:  message,
	}
}

// Start begins the progress bar display.
func (p *ProgressBar) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		return
	}

	prog := progress.New(
		progress.WithWidth(30),
		progress.WithoutPercentage(),
		progress.WithColors(styles.Primary, styles.Accent),
	)

	p.start(progressBarModel{
		progress: prog,
		total:    p.total,
		current:  p.current,
		message:  p.message,
		updateCh: p.updateCh,
	})
	p.isRunning = true
}

// SetProgress updates the current progress and message.
func (p *ProgressBar) SetProgress(current int, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		p.current = current
		p.message = message
		return
	}

	// Drop the update rather than block the caller when the channel is full.
	// The channel is closed under the same mutex.
	select {
	case p.updateCh <- progressUpdate{current: current, message: message}:
	default:
	}
}

// Branch reports that the branch at index of total is being processed.
// Its signature matches branchsync.Options.Progress.
func (p *ProgressBar) Branch(branch string, index, total int) {
	p.SetProgress(index, branchMessage(branch, index, total))
}

func branchMessage(branch string, index, total int) string {
	return fmt.Sprintf("Syncing %s (%d/%d)", branch, index+1, total)
}

// Stop stops the progress bar and clears the line.
func (p *ProgressBar) Stop() {
	p.mu.Lock()
	if !p.isRunning {
		p.mu.Unlock()
		return
	}
	p.isRunning = false
	close(p.updateCh)
	p.mu.Unlock()

	p.stop()
}

// Total returns the total count for the progress bar.
func (p *ProgressBar) Total() int {
	return p.total
}
