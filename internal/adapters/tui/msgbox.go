package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type messageModel struct {
	title       string
	lines       []string
	interrupted bool
	width       int
	height      int
	theme       Theme
}

func newMessageModel(title string, lines []string, theme Theme) messageModel {
	return messageModel{title: title, lines: lines, theme: theme}
}

func (m messageModel) Init() tea.Cmd { return nil }

func (m messageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m messageModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.theme.titleStyle().Render(m.title) + "\n\n")
	for _, line := range m.lines {
		b.WriteString(truncate(line, m.width-10) + "\n")
	}
	b.WriteString("\n" + m.theme.helpStyle().Render("Press any key..."))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorTitle)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
