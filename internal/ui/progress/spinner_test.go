package progress

import (
	"bytes"
	"strings"
	"testing"

	"charm.land/bubbles/v2/spinner"
)

func TestSpinner_UpdateBeforeStart(t *testing.T) {
	t.Parallel()

	s := NewSpinner(&bytes.Buffer{}, "Fetching origin")
	s.UpdateMessage("Fetching upstream")
	if s.lastMsg != "Fetching upstream" {
		t.Errorf("lastMsg = %q", s.lastMsg)
	}
	// Stop without Start should not panic
	s.Stop()
}

func TestSpinnerModel(t *testing.T) {
	t.Parallel()

	m := spinnerModel{spinner: spinner.New(), message: "Fetching origin"}
	if !strings.Contains(m.View().Content, "Fetching origin") {
		t.Errorf("View() = %q, want message", m.View().Content)
	}

	updated, cmd := m.Update(messageUpdate("Comparing branches"))
	um := updated.(spinnerModel)
	if um.message != "Comparing branches" {
		t.Errorf("message = %q", um.message)
	}
	if cmd == nil {
		t.Error("update should keep waiting for the next message")
	}

	um.message = ""
	if um.View().Content != "" {
		t.Error("View() should be empty without a message")
	}
}
