// Package prompt provides the interactive confirmations nex asks for
// before destructive batch operations like pushing every project.
package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmResult holds the outcome of a confirmation prompt. Cancelled is
// distinct from a "no" answer so callers can tell an abort from a decline.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		// Default answer is no.
		m.done = true
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyCtrlC:
		m.done = true
		m.cancelled = true
		return m, tea.Quit
	}

	switch key.String() {
	case "y", "Y":
		m.done = true
		m.confirmed = true
		return m, tea.Quit
	case "n", "N":
		m.done = true
		return m, tea.Quit
	case "q":
		m.done = true
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s [y/N] ", m.prompt)
}

// Confirm shows a yes/no prompt and returns the user's choice.
// Enter defaults to no.
func Confirm(prompt string) (ConfirmResult, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt})
	final, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := final.(confirmModel)
	return ConfirmResult{Confirmed: m.confirmed, Cancelled: m.cancelled}, nil
}
