// Package app contains the session flow controller, which orchestrates
// the menus, prompts, countdowns and log writes that make up a pomocli
// session. All terminal interaction goes through the ports.Console
// interface so the flows are testable with a scripted fake.
package app

import (
	"fmt"
	"strconv"

	"github.com/xvierd/pomocli/internal/config"
	"github.com/xvierd/pomocli/internal/domain"
	"github.com/xvierd/pomocli/internal/ports"
)

// placeholderTask is logged when the user submits a blank task name.
const placeholderTask = "Untitled task"

// Controller drives the main menu loop and its flows.
type Controller struct {
	console    ports.Console
	logbook    ports.Logbook
	notifier   ports.Notifier
	configPath string
	settings   config.Settings
}

// New creates a controller. configPath locates the settings file; it is
// read on Run and re-read after every flow that may have changed it.
func New(console ports.Console, logbook ports.Logbook, notifier ports.Notifier, configPath string) *Controller {
	return &Controller{
		console:    console,
		logbook:    logbook,
		notifier:   notifier,
		configPath: configPath,
	}
}

// Run presents the main menu until the user quits. It returns
// domain.ErrInterrupted when a screen was interrupted; any other error
// is a failed flow.
func (c *Controller) Run() error {
	c.settings = config.Load(c.configPath)

	for {
		res, err := c.console.Menu(ports.MenuRequest{
			Title: "PomoCLI",
			Options: []string{
				"Start Pomodoro",
				"View previous pomodoros",
				"Settings",
				"Quit",
			},
			Footer: "Up/Down: move  Enter: select  q: quit",
		})
		if err != nil {
			return err
		}
		if res.Cancelled {
			return nil
		}

		switch res.Index {
		case 0:
			if err := c.startPomodoro(); err != nil {
				return err
			}
			c.settings = config.Load(c.configPath)
		case 1:
			if err := c.viewHistory(); err != nil {
				return err
			}
		case 2:
			if err := c.adjustSettings(); err != nil {
				return err
			}
			c.settings = config.Load(c.configPath)
		case 3:
			return nil
		}
	}
}

// startPomodoro runs one task prompt → work timer → break offer flow.
// Only the work session is logged; breaks leave no trace.
func (c *Controller) startPomodoro() error {
	res, err := c.console.Prompt(ports.PromptRequest{
		Title: "Start Pomodoro",
		Hint:  "What task are you working on?",
	})
	if err != nil {
		return err
	}
	if res.Cancelled {
		return nil
	}

	task := res.Value
	if task == "" {
		task = placeholderTask
	}

	if err := c.logEvent(task, domain.StateStart); err != nil {
		return err
	}

	outcome, err := c.console.Countdown(ports.CountdownRequest{
		Duration: c.settings.WorkDuration(),
		Label:    "WORK",
		Task:     task,
	})
	if err != nil {
		return err
	}

	if outcome == domain.OutcomeAborted {
		if err := c.logEvent(task, domain.StateAbort); err != nil {
			return err
		}
		return c.console.ShowMessage("Pomodoro", "Work timer aborted.", "Logged as ABORT.")
	}

	if err := c.logEvent(task, domain.StateEnd); err != nil {
		return err
	}
	_ = c.notifier.NotifyWorkComplete(task)

	breakRes, err := c.console.Menu(ports.MenuRequest{
		Title:   "Break",
		Options: []string{"Start break now", "Skip break and return to menu"},
		Footer:  "Enter: select  q: back (acts like skip)",
	})
	if err != nil {
		return err
	}
	if breakRes.Cancelled || breakRes.Index != 0 {
		return nil
	}

	outcome, err = c.console.Countdown(ports.CountdownRequest{
		Duration: c.settings.BreakDuration(),
		Label:    "BREAK",
		Task:     task,
		IsBreak:  true,
	})
	if err != nil {
		return err
	}
	if outcome == domain.OutcomeCompleted {
		_ = c.notifier.NotifyBreakOver()
	}
	return nil
}

// adjustSettings loops over the settings menu, editing an in-memory copy
// that is only persisted by an explicit save. Backing out discards it.
func (c *Controller) adjustSettings() error {
	edited := c.settings

	for {
		res, err := c.console.Menu(ports.MenuRequest{
			Title: "Settings",
			Options: []string{
				fmt.Sprintf("Work duration (minutes):  %d", edited.WorkMinutes),
				fmt.Sprintf("Break duration (minutes): %d", edited.BreakMinutes),
				"Save and return",
			},
			Footer: "Enter: select  q: back (without saving)",
		})
		if err != nil {
			return err
		}
		if res.Cancelled {
			return nil
		}

		switch res.Index {
		case 0:
			n, ok, err := c.promptMinutes("Set work minutes (1-180):", edited.WorkMinutes)
			if err != nil {
				return err
			}
			if ok {
				edited.WorkMinutes = n
				edited.Clamp()
			}
		case 1:
			n, ok, err := c.promptMinutes("Set break minutes (1-60):", edited.BreakMinutes)
			if err != nil {
				return err
			}
			if ok {
				edited.BreakMinutes = n
				edited.Clamp()
			}
		case 2:
			if err := config.Save(c.configPath, edited); err != nil {
				if msgErr := c.console.ShowMessage("Settings", "Could not save settings."); msgErr != nil {
					return msgErr
				}
				continue
			}
			c.settings = edited
			return c.console.ShowMessage("Settings", "Saved.")
		}
	}
}

// promptMinutes asks for a new duration value, pre-filled with the
// current one. ok is false when the user cancelled or the input was not
// a number; the invalid-number notice has already been shown.
func (c *Controller) promptMinutes(hint string, current int) (n int, ok bool, err error) {
	res, err := c.console.Prompt(ports.PromptRequest{
		Title:   "Settings",
		Hint:    hint,
		Initial: strconv.Itoa(current),
	})
	if err != nil {
		return 0, false, err
	}
	if res.Cancelled {
		return 0, false, nil
	}

	n, convErr := strconv.Atoi(res.Value)
	if convErr != nil {
		if err := c.console.ShowMessage("Settings", "Invalid number."); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}
	return n, true, nil
}

// viewHistory shows the log newest-first.
func (c *Controller) viewHistory() error {
	lines := c.logbook.ReadAll()
	if len(lines) == 0 {
		return c.console.ShowMessage("Previous Pomodoros", "No log entries found yet.")
	}

	reversed := make([]string, len(lines))
	for i, line := range lines {
		reversed[len(lines)-1-i] = line
	}
	return c.console.ShowLog(c.logbook.Path(), reversed)
}

// logEvent appends one lifecycle line. A write failure is reported once
// and the flow continues with logging degraded.
func (c *Controller) logEvent(task string, state domain.EntryState) error {
	if err := c.logbook.Append(task, state); err != nil {
		return c.console.ShowMessage("Pomodoro", "Could not write to the log file.")
	}
	return nil
}
