// Package progress provides progress indication for long-running operations.
package progress

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/nexus-switchboard/nex/internal/ui"
)

// messageUpdate is sent to update the spinner message
type messageUpdate string

// quitMsg stops the program when the message channel closes
type quitMsg struct{}

// Spinner wraps a Bubbletea spinner for simple non-interactive use.
// When stderr is not a terminal, all methods are no-ops.
type Spinner struct {
	program *tea.Program
	msgCh   chan string
	done    chan struct{}
}

// spinnerModel is the internal Bubbletea model
type spinnerModel struct {
	spinner spinner.Model
	message string
	msgCh   chan string
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForMessage())
}

func (m spinnerModel) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.msgCh
		if !ok {
			return quitMsg{}
		}
		return messageUpdate(msg)
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quitMsg:
		return m, tea.Quit
	case messageUpdate:
		m.message = string(msg)
		return m, m.waitForMessage()
	case tea.KeyMsg:
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.message == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// Start creates and starts a spinner with the given message.
// The spinner renders on stderr so primary output stays clean.
func Start(message string) *Spinner {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return &Spinner{}
	}

	s := &Spinner{
		msgCh: make(chan string, 8),
		done:  make(chan struct{}),
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ui.Success)),
	)

	s.program = tea.NewProgram(
		spinnerModel{spinner: sp, message: message, msgCh: s.msgCh},
		tea.WithOutput(os.Stderr),
	)

	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()

	return s
}

// Update changes the spinner message. Drops the update if the spinner is
// busy rather than blocking the caller.
func (s *Spinner) Update(message string) {
	if s.program == nil {
		return
	}
	select {
	case s.msgCh <- message:
	default:
	}
}

// Stop ends the spinner and waits for the terminal to be restored.
func (s *Spinner) Stop() {
	if s.program == nil {
		return
	}
	close(s.msgCh)
	<-s.done
}
