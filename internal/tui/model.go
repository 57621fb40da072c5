package tui

import (
	"github.com/anonto42/nano-midea/notifications/internal/panel"
	"github.com/anonto42/nano-midea/notifications/internal/render"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the interactive terminal front end of a panel.Panel
type Model struct {
	panel    *panel.Panel
	cursor   int
	input    textinput.Model
	width    int
	quitting bool
}

func NewModel(p *panel.Panel) Model {
	input := textinput.New()
	input.Placeholder = "Write a reply..."
	input.Prompt = "> "
	input.CharLimit = 2000

	return Model{panel: p, input: input}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.panel.View().Items

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case "m":
		m.panel.MarkAllRead()

	case "enter", "r":
		if m.cursor >= len(items) || !items[m.cursor].Repliable {
			return m, nil
		}
		if !m.panel.OpenReply(items[m.cursor].ID) {
			return m, nil
		}
		// the draft survives switching notifications
		m.input.SetValue(m.panel.Session().DraftText)
		m.input.CursorEnd()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		m.panel.SetDraftText(m.input.Value())
		if m.panel.SubmitReply() {
			m.input.Reset()
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.panel.SetDraftText(m.input.Value())
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	opts := render.TerminalOptions{
		Cursor: m.cursor,
		Width:  m.width,
		Help:   true,
	}
	if m.input.Focused() {
		opts.Input = m.input.View()
	}
	return render.Terminal(m.panel.View(), opts)
}

// Run starts the program and blocks until the user quits
func Run(p *panel.Panel, opts ...tea.ProgramOption) error {
	program := tea.NewProgram(NewModel(p), opts...)
	_, err := program.Run()
	return err
}
