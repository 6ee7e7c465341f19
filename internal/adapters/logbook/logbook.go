// Package logbook persists session history as an append-only text file.
package logbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xvierd/pomocli/internal/domain"
	"github.com/xvierd/pomocli/internal/ports"
)

// readErrorLine is shown in place of content when the log file exists
// but cannot be read.
const readErrorLine = "[Error reading log file]"

// FileLogbook appends session events to a plain text file, one line per
// event. Lines are never edited or removed.
type FileLogbook struct {
	path string
}

// New creates a logbook backed by the file at path. The file is created
// on the first append.
func New(path string) *FileLogbook {
	return &FileLogbook{path: path}
}

// Ensure FileLogbook implements ports.Logbook.
var _ ports.Logbook = (*FileLogbook)(nil)

// Append writes one timestamped event line for the given task.
func (l *FileLogbook) Append(task string, state domain.EntryState) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	entry := domain.LogEntry{At: time.Now(), State: state, Task: task}
	if _, err := f.WriteString(entry.Line() + "\n"); err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}
	return nil
}

// ReadAll returns every line in file order. A missing file yields an
// empty slice; any other read failure yields the sentinel error line.
func (l *FileLogbook) ReadAll() []string {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return []string{readErrorLine}
	}

	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// Entries parses the log into structured entries, skipping lines that
// do not match the expected format.
func (l *FileLogbook) Entries() []domain.LogEntry {
	var entries []domain.LogEntry
	for _, line := range l.ReadAll() {
		entry, err := domain.ParseLine(line)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Path returns the location of the log file.
func (l *FileLogbook) Path() string {
	return l.path
}

// DefaultPath returns the log file location in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "pomocli_log.txt"), nil
}
