package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/pomocli/internal/ports"
)

type menuModel struct {
	title       string
	options     []string
	footer      string
	cursor      int
	cancelled   bool
	interrupted bool
	width       int
	height      int
	theme       Theme
}

func newMenuModel(req ports.MenuRequest, theme Theme) menuModel {
	return menuModel{
		title:   req.Title,
		options: req.Options,
		footer:  req.Footer,
		theme:   theme,
	}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(m.options)
		case "enter":
			return m, tea.Quit
		case "q", "Q":
			m.cancelled = true
			return m, tea.Quit
		case "ctrl+c":
			m.interrupted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.theme.titleStyle().Render(m.title) + "\n\n")

	maxLine := m.width - 4
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(m.theme.selectStyle().Render(truncate("▸ "+opt, maxLine)))
		} else {
			b.WriteString(m.theme.helpStyle().Render(truncate("  "+opt, maxLine)))
		}
		b.WriteString("\n")
	}

	if m.footer != "" {
		b.WriteString("\n" + m.theme.helpStyle().Render(truncate(m.footer, maxLine)))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
