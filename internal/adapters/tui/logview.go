package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const logviewFooter = "Up/Down: scroll  PgUp/PgDn: page  Home/End: jump  /: filter  q: back"

type logviewModel struct {
	path  string
	lines []string // newest first, as handed over by the caller

	viewport  viewport.Model
	filter    textinput.Model
	filtering bool
	query     string

	interrupted bool
	ready       bool
	width       int
	height      int
	theme       Theme
}

func newLogviewModel(path string, lines []string, theme Theme) logviewModel {
	fi := textinput.New()
	fi.Prompt = "/"
	fi.CharLimit = 60
	fi.Width = 30

	return logviewModel{
		path:   path,
		lines:  lines,
		filter: fi,
		theme:  theme,
	}
}

func (m logviewModel) Init() tea.Cmd { return nil }

func (m logviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 6
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = vpHeight
		}
		m.setContent()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "Q":
			return m, tea.Quit
		case "esc":
			if m.query != "" {
				m.clearFilter()
				return m, nil
			}
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		case "home":
			m.viewport.GotoTop()
			return m, nil
		case "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateFilter handles keys while the filter input is focused. The list
// narrows live as the query changes.
func (m logviewModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearFilter()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if q := m.filter.Value(); q != m.query {
		m.query = q
		m.setContent()
		m.viewport.GotoTop()
	}
	return m, cmd
}

func (m *logviewModel) clearFilter() {
	m.filtering = false
	m.query = ""
	m.filter.Reset()
	m.filter.Blur()
	m.setContent()
	m.viewport.GotoTop()
}

// visibleLines applies the fuzzy filter, best matches first.
func (m logviewModel) visibleLines() []string {
	if m.query == "" {
		return m.lines
	}
	matches := fuzzy.Find(m.query, m.lines)
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, m.lines[match.Index])
	}
	return out
}

func (m *logviewModel) setContent() {
	if !m.ready {
		return
	}
	visible := m.visibleLines()
	if len(visible) == 0 && m.query != "" {
		m.viewport.SetContent(m.theme.helpStyle().Render("(no matches)"))
		return
	}
	clipped := make([]string, len(visible))
	for i, line := range visible {
		clipped[i] = truncate(line, m.viewport.Width)
	}
	m.viewport.SetContent(strings.Join(clipped, "\n"))
}

func (m logviewModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var filterRow string
	switch {
	case m.filtering:
		filterRow = m.filter.View()
	case m.query != "":
		filterRow = m.theme.helpStyle().Render("filter: " + m.query + "  (esc clears)")
	}

	sections := []string{
		m.theme.titleStyle().Render("Previous Pomodoros"),
		m.theme.helpStyle().Render(truncate("Log file: "+m.path, m.width-4)),
		filterRow,
		m.viewport.View(),
		"",
		m.theme.helpStyle().Render(truncate(logviewFooter, m.width-4)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
