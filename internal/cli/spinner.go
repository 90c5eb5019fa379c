// Package cli has small terminal helpers shared by the commands.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type spinnerModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
	err      error
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return spinnerModel{spinner: s, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case doneMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

type doneMsg struct {
	err error
}

// ExecuteWithSpinner runs fn while showing a spinner on stderr. Without
// a TTY it just prints the message once and runs fn inline.
func ExecuteWithSpinner[T any](message string, fn func() (T, error)) (T, error) {
	if !IsATTY() {
		fmt.Fprintf(os.Stderr, "%s\n", message)
		return fn()
	}

	var result T
	var fnErr error
	done := make(chan struct{})

	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(os.Stderr))
	go func() {
		result, fnErr = fn()
		close(done)
		p.Send(doneMsg{err: fnErr})
	}()

	if _, err := p.Run(); err != nil {
		// Spinner failed; wait for fn and return its result anyway.
		<-done
		return result, fnErr
	}
	<-done
	if fnErr != nil {
		var zero T
		return zero, fnErr
	}
	return result, nil
}

// IsATTY reports whether stdout is a terminal.
func IsATTY() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
