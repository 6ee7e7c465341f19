package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme shared by every screen.
type Theme struct {
	ColorWork          string
	ColorBreak         string
	ColorDone          string
	ColorTitle         string
	ColorTask          string
	ColorHelp          string
	WorkGradientStart  string
	WorkGradientEnd    string
	BreakGradientStart string
	BreakGradientEnd   string
	IconApp            string
	IconGit            string
}

// DefaultTheme returns the fixed pomocli color scheme.
func DefaultTheme() Theme {
	return Theme{
		ColorWork:          "#7C6FE0",
		ColorBreak:         "#4ECDC4",
		ColorDone:          "#2ECC71",
		ColorTitle:         "#6B7280",
		ColorTask:          "#A0AEC0",
		ColorHelp:          "#95A5A6",
		WorkGradientStart:  "#7C6FE0",
		WorkGradientEnd:    "#A78BFA",
		BreakGradientStart: "#4ECDC4",
		BreakGradientEnd:   "#2ECC71",
		IconApp:            "🍅",
		IconGit:            "🌿",
	}
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorTitle))
}

func (t Theme) helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorHelp))
}

func (t Theme) taskStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorTask))
}

func (t Theme) doneStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorDone))
}

// accentStyle is the session color: purple for work, teal for breaks.
func (t Theme) accentStyle(isBreak bool) lipgloss.Style {
	if isBreak {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorBreak))
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorWork))
}

// selectStyle highlights the active menu row.
func (t Theme) selectStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorWork))
}

// truncate clips s to width runes. Longer text ends in an ellipsis so a
// too-small terminal degrades instead of failing.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
