// Package ports defines the interfaces (driven and driving ports)
// between the session flows and the terminal, log file, and alert
// infrastructure.
package ports

import (
	"time"

	"github.com/xvierd/pomocli/internal/domain"
)

// MenuRequest describes one selectable menu screen.
type MenuRequest struct {
	Title   string
	Options []string
	Footer  string
}

// MenuResult holds the outcome of a menu interaction. Cancelled is set
// when the user backs out with q instead of selecting an option.
type MenuResult struct {
	Index     int
	Cancelled bool
}

// PromptRequest describes a single-line text prompt. Initial pre-fills
// the editable buffer; Placeholder is ghost text shown while empty.
type PromptRequest struct {
	Title       string
	Hint        string
	Placeholder string
	Initial     string
}

// PromptResult holds the outcome of a text prompt. Cancelled (Escape) is
// distinct from an empty Value, which is a legitimate submission.
type PromptResult struct {
	Value     string
	Cancelled bool
}

// CountdownRequest describes one timed interval to run.
type CountdownRequest struct {
	Duration time.Duration
	Label    string
	Task     string
	IsBreak  bool
}

// Console renders the interactive screens. Every method blocks until the
// user leaves the screen and returns domain.ErrInterrupted when the
// program is interrupted mid-screen.
// This is a driven port (implemented by the TUI adapter).
type Console interface {
	// Menu presents a wrap-around selectable list.
	Menu(req MenuRequest) (MenuResult, error)

	// Prompt captures one line of text.
	Prompt(req PromptRequest) (PromptResult, error)

	// Countdown runs a timer to completion or abort, firing the alert
	// sequence when it completes.
	Countdown(req CountdownRequest) (domain.Outcome, error)

	// ShowMessage displays a titled message box and waits for any key.
	ShowMessage(title string, lines ...string) error

	// ShowLog displays pre-ordered log lines in a scrollable viewer.
	ShowLog(path string, lines []string) error
}
