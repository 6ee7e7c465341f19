// Package domain contains the core entities for pomocli:
// log entries, the countdown timer, and session outcomes.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the minute-granularity layout used in log lines.
const TimestampLayout = "2006-01-02 T=15:04"

var (
	// ErrInterrupted signals that the user interrupted the program
	// (Ctrl-C or SIGINT) during an interactive screen.
	ErrInterrupted = errors.New("interrupted")

	// ErrMalformedEntry is returned when a log line does not match the
	// expected "<timestamp> - <STATE>: <task>" shape.
	ErrMalformedEntry = errors.New("malformed log entry")
)

// EntryState marks the lifecycle event a log entry records.
type EntryState string

const (
	StateStart EntryState = "START"
	StateEnd   EntryState = "END"
	StateAbort EntryState = "ABORT"
)

// LogEntry is one recorded session event.
type LogEntry struct {
	At    time.Time
	State EntryState
	Task  string
}

// Line renders the entry in the on-disk format
// "<YYYY-MM-DD T=HH:MM> - <STATE>: <task>".
func (e LogEntry) Line() string {
	return fmt.Sprintf("%s - %s: %s", e.At.Format(TimestampLayout), e.State, e.Task)
}

// ParseLine parses a log line back into an entry. The task text is kept
// verbatim, including any further ": " sequences it contains.
func ParseLine(line string) (LogEntry, error) {
	sep := strings.Index(line, " - ")
	if sep < 0 {
		return LogEntry{}, ErrMalformedEntry
	}

	at, err := time.ParseInLocation(TimestampLayout, line[:sep], time.Local)
	if err != nil {
		return LogEntry{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}

	rest := line[sep+len(" - "):]
	colon := strings.Index(rest, ": ")
	if colon < 0 {
		return LogEntry{}, ErrMalformedEntry
	}

	state := EntryState(rest[:colon])
	switch state {
	case StateStart, StateEnd, StateAbort:
	default:
		return LogEntry{}, fmt.Errorf("%w: unknown state %q", ErrMalformedEntry, rest[:colon])
	}

	return LogEntry{At: at, State: state, Task: rest[colon+len(": "):]}, nil
}
