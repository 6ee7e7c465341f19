package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/pomocli/internal/ports"
)

type promptModel struct {
	title       string
	hint        string
	input       textinput.Model
	cancelled   bool
	interrupted bool
	width       int
	height      int
	theme       Theme
}

func newPromptModel(req ports.PromptRequest, theme Theme) promptModel {
	ti := textinput.New()
	ti.Placeholder = req.Placeholder
	ti.CharLimit = 120
	ti.Width = 50
	ti.SetValue(req.Initial)
	ti.CursorEnd()
	ti.Focus()

	return promptModel{
		title: req.Title,
		hint:  req.Hint,
		input: ti,
		theme: theme,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, tea.Quit
		case "esc":
			m.cancelled = true
			return m, tea.Quit
		case "ctrl+c":
			m.interrupted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.theme.titleStyle().Render(m.title) + "\n\n")
	if m.hint != "" {
		b.WriteString(truncate(m.hint, m.width-4) + "\n\n")
	}
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.theme.helpStyle().Render("ESC to cancel"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// value returns the trimmed buffer contents, which may be empty.
func (m promptModel) value() string {
	return strings.TrimSpace(m.input.Value())
}
