package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// clockFont maps the digits 0-9 and the colon to five-row block glyphs.
// Digits are 5 cells wide, the colon 1 cell.
var clockFont = map[rune][]string{
	'0': {
		"█████",
		"█   █",
		"█   █",
		"█   █",
		"█████",
	},
	'1': {
		"  █  ",
		" ██  ",
		"  █  ",
		"  █  ",
		"█████",
	},
	'2': {
		"█████",
		"    █",
		"█████",
		"█    ",
		"█████",
	},
	'3': {
		"█████",
		"    █",
		"█████",
		"    █",
		"█████",
	},
	'4': {
		"█   █",
		"█   █",
		"█████",
		"    █",
		"    █",
	},
	'5': {
		"█████",
		"█    ",
		"█████",
		"    █",
		"█████",
	},
	'6': {
		"█████",
		"█    ",
		"█████",
		"█   █",
		"█████",
	},
	'7': {
		"█████",
		"    █",
		"    █",
		"    █",
		"    █",
	},
	'8': {
		"█████",
		"█   █",
		"█████",
		"█   █",
		"█████",
	},
	'9': {
		"█████",
		"█   █",
		"█████",
		"    █",
		"█████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
}

// renderClock renders a time string like "24:59" as five rows of block
// glyphs. Below 40 columns it falls back to a single styled line.
func renderClock(timeStr string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < 40 {
		return style.Render(timeStr)
	}

	var rows [5]string
	for _, ch := range timeStr {
		glyph, ok := clockFont[ch]
		if !ok {
			continue
		}
		for i := range rows {
			if rows[i] != "" {
				rows[i] += " "
			}
			rows[i] += glyph[i]
		}
	}

	styled := make([]string, len(rows))
	for i, row := range rows {
		styled[i] = style.Render(row)
	}
	return strings.Join(styled, "\n")
}
