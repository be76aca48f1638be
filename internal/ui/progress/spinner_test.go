package progress

import (
	"strings"
	"testing"
)

func TestSpinnerModelMessageUpdate(t *testing.T) {
	t.Parallel()

	m := spinnerModel{message: "Fetching nexus-core", msgCh: make(chan string)}

	updated, cmd := m.Update(messageUpdate("Fetching nexus-extend"))
	got := updated.(spinnerModel)

	if got.message != "Fetching nexus-extend" {
		t.Errorf("message = %q, want %q", got.message, "Fetching nexus-extend")
	}
	if cmd == nil {
		t.Error("update should re-arm the message wait")
	}
}

func TestSpinnerModelQuit(t *testing.T) {
	t.Parallel()

	m := spinnerModel{msgCh: make(chan string)}
	_, cmd := m.Update(quitMsg{})
	if cmd == nil {
		t.Fatal("quitMsg should produce a command")
	}
}

func TestSpinnerModelView(t *testing.T) {
	t.Parallel()

	m := spinnerModel{}
	if got := m.View(); got != "" {
		t.Errorf("View with empty message = %q, want empty", got)
	}

	m.message = "Fetching"
	if got := m.View(); !strings.Contains(got, "Fetching") {
		t.Errorf("View = %q, want message included", got)
	}
}

func TestNoopSpinner(t *testing.T) {
	t.Parallel()

	// A zero spinner (non-TTY path) must tolerate all calls.
	s := &Spinner{}
	s.Update("anything")
	s.Stop()
}
