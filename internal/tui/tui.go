// Package tui is the full-screen chat view: a scrollback viewport over
// a textarea, talking to the model through the injected execute
// function. Nothing here persists; /save in the line-mode chat is the
// way to keep a conversation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evhall/gembox/internal/chat"
	"github.com/evhall/gembox/internal/persona"
)

// Config wires the view to the rest of the program. ExecuteFn gets the
// limited history (prompt included as the final user message) and the
// active system prompt.
type Config struct {
	Model        string
	Persona      persona.Persona
	HistoryLimit int
	ExecuteFn    func(messages []chat.Message, system string) (string, error)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	roleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	noticeStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type model struct {
	cfg      Config
	viewport viewport.Model
	textarea textarea.Model
	messages []chat.Message
	current  persona.Persona
	notices  map[int]string // message index -> notice text
	waiting  bool
	width    int
}

type responseMsg struct {
	content string
	err     error
}

// Run starts the program in the alternate screen and blocks until the
// user quits.
func Run(cfg Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(cfg Config) model {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetHeight(3)

	vp := viewport.New(80, 20)

	return model{
		cfg:      cfg,
		viewport: vp,
		textarea: ta,
		current:  cfg.Persona,
		notices:  map[int]string{},
		width:    80,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()

			if strings.HasPrefix(input, "/persona") {
				return m.switchPersona(strings.TrimSpace(strings.TrimPrefix(input, "/persona"))), nil
			}

			m.messages = append(m.messages, chat.UserMessage(input))
			m.waiting = true
			m.refresh()
			return m, m.execute(input)
		}

	case responseMsg:
		m.waiting = false
		if msg.err != nil {
			m.notices[len(m.messages)] = errorStyle.Render(fmt.Sprintf("error: %v", msg.err))
		} else {
			m.messages = append(m.messages, chat.ModelMessage(msg.content))
		}
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		headerHeight := 2
		footerHeight := 5
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.textarea.SetWidth(msg.Width - 2)
		m.refresh()
		return m, nil
	}

	return m, tea.Batch(taCmd, vpCmd)
}

func (m model) switchPersona(name string) model {
	if name == "" {
		m.notices[len(m.messages)] = noticeStyle.Render("personas: " + strings.Join(persona.Names(), ", "))
		m.refresh()
		return m
	}
	p, err := persona.Get(name)
	if err != nil {
		m.notices[len(m.messages)] = errorStyle.Render(err.Error())
	} else {
		m.current = p
		m.notices[len(m.messages)] = noticeStyle.Render("persona switched to " + p.Name)
	}
	m.refresh()
	return m
}

func (m model) View() string {
	header := headerStyle.Render(fmt.Sprintf("gembox | model: %s | persona: %s", m.cfg.Model, m.current.Name))
	header += "\n" + strings.Repeat("─", m.width)

	footer := strings.Repeat("─", m.width) + "\n"
	if m.waiting {
		footer += noticeStyle.Render("Waiting for response...") + "\n"
	} else {
		footer += m.textarea.View() + "\n"
	}
	footer += noticeStyle.Render("enter to send · /persona NAME to switch · esc to quit")

	return header + "\n" + m.viewport.View() + "\n" + footer
}

func (m *model) refresh() {
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

func (m model) renderMessages() string {
	var sb strings.Builder
	for i, msg := range m.messages {
		if n, ok := m.notices[i]; ok {
			sb.WriteString(n + "\n\n")
		}
		sb.WriteString(roleStyle.Render("["+msg.Role+"]") + " " + msg.Content + "\n\n")
	}
	if n, ok := m.notices[len(m.messages)]; ok {
		sb.WriteString(n + "\n\n")
	}
	return sb.String()
}

func (m model) execute(prompt string) tea.Cmd {
	history := m.messages[:len(m.messages)-1]
	system := m.current.SystemPrompt
	limit := m.cfg.HistoryLimit
	fn := m.cfg.ExecuteFn
	return func() tea.Msg {
		messages := chat.BuildHistory(history, limit, prompt)
		reply, err := fn(messages, system)
		return responseMsg{content: reply, err: err}
	}
}
