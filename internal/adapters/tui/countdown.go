package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/pomocli/internal/domain"
	"github.com/xvierd/pomocli/internal/ports"
)

const (
	// tickInterval is the display/input poll cadence. Remaining time is
	// recomputed from the wall clock on every tick, so a stalled render
	// never skews the schedule.
	tickInterval = 100 * time.Millisecond

	// Alert pulse timing: each pulse is one bell plus one reverse-video
	// flash, ~120ms on and ~120ms off.
	flashInterval = 120 * time.Millisecond
	alertPulses   = 5
)

type countdownPhase int

const (
	phaseRunning countdownPhase = iota
	phaseAlerting
	phaseDone
)

// tickMsg carries the wall-clock instant of a countdown tick.
type tickMsg time.Time

// flashMsg advances the alert flash sequence.
type flashMsg time.Time

type countdownModel struct {
	run      *domain.Countdown
	progress progress.Model
	isBreak  bool
	repoLine string
	bell     ports.Alerter
	theme    Theme

	phase      countdownPhase
	remaining  time.Duration
	percent    float64
	flashOn    bool
	pulsesLeft int

	aborted     bool
	interrupted bool

	width  int
	height int
}

func newCountdownModel(run *domain.Countdown, isBreak bool, repoLine string, bell ports.Alerter, theme Theme) countdownModel {
	var pbar progress.Model
	if isBreak {
		pbar = progress.New(progress.WithGradient(theme.BreakGradientStart, theme.BreakGradientEnd))
	} else {
		pbar = progress.New(progress.WithGradient(theme.WorkGradientStart, theme.WorkGradientEnd))
	}

	return countdownModel{
		run:       run,
		progress:  pbar,
		isBreak:   isBreak,
		repoLine:  repoLine,
		bell:      bell,
		theme:     theme,
		remaining: run.Total,
	}
}

func (m countdownModel) Init() tea.Cmd {
	return tickCmd()
}

func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 4

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
		switch m.phase {
		case phaseRunning:
			switch msg.String() {
			case "q", "Q":
				m.aborted = true
				return m, tea.Quit
			}
		case phaseAlerting:
			// Keys pressed during the alert are drained here so they
			// cannot leak into the next screen.
		case phaseDone:
			return m, tea.Quit
		}

	case tickMsg:
		if m.phase != phaseRunning {
			return m, nil
		}
		now := time.Time(msg)
		m.remaining = m.run.Remaining(now)
		if p := m.run.Percent(now); p > m.percent {
			m.percent = p
		}
		if m.run.Done(now) {
			m.phase = phaseAlerting
			m.remaining = 0
			m.percent = 1
			m.pulsesLeft = alertPulses
			m.flashOn = true
			m.bell.Bell()
			return m, flashCmd()
		}
		return m, tickCmd()

	case flashMsg:
		if m.phase != phaseAlerting {
			return m, nil
		}
		if m.flashOn {
			m.flashOn = false
			return m, flashCmd()
		}
		m.pulsesLeft--
		if m.pulsesLeft <= 0 {
			m.phase = phaseDone
			return m, nil
		}
		m.flashOn = true
		m.bell.Bell()
		return m, flashCmd()
	}

	return m, nil
}

func (m countdownModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	if m.phase == phaseRunning {
		content = m.viewRunning()
	} else {
		content = m.viewComplete()
	}

	if m.phase == phaseAlerting && m.flashOn {
		content = lipgloss.NewStyle().Reverse(true).Render(content)
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m countdownModel) viewRunning() string {
	accent := m.theme.accentStyle(m.isBreak)

	var sections []string
	sections = append(sections, m.theme.titleStyle().Render(m.theme.IconApp+" Pomodoro Timer"))
	sections = append(sections, "")
	sections = append(sections, accent.Render(m.run.Label))

	if m.run.Task != "" {
		sections = append(sections, m.theme.taskStyle().Render(truncate("Task: "+m.run.Task, m.width-4)))
	}

	timeStr := formatDuration(m.remaining)
	var accentColor lipgloss.Color
	if m.isBreak {
		accentColor = lipgloss.Color(m.theme.ColorBreak)
	} else {
		accentColor = lipgloss.Color(m.theme.ColorWork)
	}
	sections = append(sections, "")
	sections = append(sections, renderClock(timeStr, accentColor, m.width))
	sections = append(sections, m.theme.helpStyle().Render(timeStr+" remaining"))

	sections = append(sections, "")
	sections = append(sections, m.progress.ViewAs(m.percent))

	footer := "q: abort timer"
	if m.repoLine != "" {
		footer += " · " + m.theme.IconGit + " " + m.repoLine
	}
	sections = append(sections, "")
	sections = append(sections, m.theme.helpStyle().Render(truncate(footer, m.width-4)))

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m countdownModel) viewComplete() string {
	var sections []string
	sections = append(sections, m.theme.titleStyle().Render(m.theme.IconApp+" Pomodoro Timer"))
	sections = append(sections, "")
	sections = append(sections, m.theme.doneStyle().Render(m.run.Label+" complete!"))

	if m.run.Task != "" {
		sections = append(sections, m.theme.taskStyle().Render(truncate("Task: "+m.run.Task, m.width-4)))
	}

	sections = append(sections, m.progress.ViewAs(1.0))
	sections = append(sections, "")
	sections = append(sections, m.theme.helpStyle().Render("Press any key..."))

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// tickCmd schedules the next countdown tick.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// flashCmd schedules the next alert flash transition.
func flashCmd() tea.Cmd {
	return tea.Tick(flashInterval, func(t time.Time) tea.Msg {
		return flashMsg(t)
	})
}

// formatDuration formats a duration as MM:SS.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
