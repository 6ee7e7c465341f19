package ports

import "github.com/xvierd/pomocli/internal/domain"

// Logbook records session lifecycle events as append-only text lines.
// This is a driven port (implemented by adapters).
type Logbook interface {
	// Append writes one timestamped event line for the given task.
	Append(task string, state domain.EntryState) error

	// ReadAll returns every line in file order. A missing file yields an
	// empty slice; any other read failure yields a single sentinel line.
	ReadAll() []string

	// Entries returns the well-formed lines parsed into entries,
	// skipping lines that do not parse.
	Entries() []domain.LogEntry

	// Path returns the location of the underlying file for display.
	Path() string
}
