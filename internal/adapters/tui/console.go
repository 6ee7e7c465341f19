// Package tui implements the interactive screens with the Bubbletea
// framework. Each screen is its own model run as a fullscreen program;
// the Console type adapts them to the ports.Console interface.
package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/pomocli/internal/domain"
	"github.com/xvierd/pomocli/internal/ports"
)

// Console runs the interactive screens on the controlling terminal.
type Console struct {
	theme    Theme
	bell     ports.Alerter
	repoLine func() string
}

// New creates a console. repoLine supplies the git context shown during
// work countdowns; it may be nil or return "" when there is none.
func New(bell ports.Alerter, repoLine func() string) *Console {
	return &Console{
		theme:    DefaultTheme(),
		bell:     bell,
		repoLine: repoLine,
	}
}

// Ensure Console implements ports.Console.
var _ ports.Console = (*Console)(nil)

// run executes one screen to completion and maps an interrupt signal to
// the domain sentinel.
func (c *Console) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, domain.ErrInterrupted
		}
		return nil, fmt.Errorf("failed to run screen: %w", err)
	}
	return final, nil
}

// Menu presents a wrap-around selectable list.
func (c *Console) Menu(req ports.MenuRequest) (ports.MenuResult, error) {
	final, err := c.run(newMenuModel(req, c.theme))
	if err != nil {
		return ports.MenuResult{}, err
	}

	m := final.(menuModel)
	if m.interrupted {
		return ports.MenuResult{}, domain.ErrInterrupted
	}
	if m.cancelled {
		return ports.MenuResult{Cancelled: true}, nil
	}
	return ports.MenuResult{Index: m.cursor}, nil
}

// Prompt captures one line of text.
func (c *Console) Prompt(req ports.PromptRequest) (ports.PromptResult, error) {
	final, err := c.run(newPromptModel(req, c.theme))
	if err != nil {
		return ports.PromptResult{}, err
	}

	m := final.(promptModel)
	if m.interrupted {
		return ports.PromptResult{}, domain.ErrInterrupted
	}
	if m.cancelled {
		return ports.PromptResult{Cancelled: true}, nil
	}
	return ports.PromptResult{Value: m.value()}, nil
}

// Countdown runs one timed interval to completion or abort.
func (c *Console) Countdown(req ports.CountdownRequest) (domain.Outcome, error) {
	var repoLine string
	if !req.IsBreak && c.repoLine != nil {
		repoLine = c.repoLine()
	}

	run := domain.NewCountdown(req.Duration, req.Label, req.Task)
	final, err := c.run(newCountdownModel(run, req.IsBreak, repoLine, c.bell, c.theme))
	if err != nil {
		return "", err
	}

	m := final.(countdownModel)
	switch {
	case m.interrupted:
		return domain.OutcomeInterrupted, domain.ErrInterrupted
	case m.aborted:
		return domain.OutcomeAborted, nil
	default:
		return domain.OutcomeCompleted, nil
	}
}

// ShowMessage displays a titled message box and waits for any key.
func (c *Console) ShowMessage(title string, lines ...string) error {
	final, err := c.run(newMessageModel(title, lines, c.theme))
	if err != nil {
		return err
	}
	if final.(messageModel).interrupted {
		return domain.ErrInterrupted
	}
	return nil
}

// ShowLog displays pre-ordered log lines in a scrollable viewer.
func (c *Console) ShowLog(path string, lines []string) error {
	final, err := c.run(newLogviewModel(path, lines, c.theme))
	if err != nil {
		return err
	}
	if final.(logviewModel).interrupted {
		return domain.ErrInterrupted
	}
	return nil
}
