package logbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xvierd/pomocli/internal/domain"
)

func newTestLogbook(t *testing.T) *FileLogbook {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "log.txt"))
}

func TestReadAll_MissingFile(t *testing.T) {
	book := newTestLogbook(t)

	lines := book.ReadAll()
	if len(lines) != 0 {
		t.Errorf("ReadAll() on missing file = %v, want empty", lines)
	}
}

func TestAppend_ThenReadAll(t *testing.T) {
	book := newTestLogbook(t)

	tasks := []string{"A", "B", "C"}
	for _, task := range tasks {
		if err := book.Append(task, domain.StateStart); err != nil {
			t.Fatalf("Append(%q) error = %v", task, err)
		}
	}

	lines := book.ReadAll()
	if len(lines) != len(tasks) {
		t.Fatalf("ReadAll() returned %d lines, want %d", len(lines), len(tasks))
	}

	for i, task := range tasks {
		if !strings.HasSuffix(lines[i], "- START: "+task) {
			t.Errorf("line %d = %q, want START entry for %q", i, lines[i], task)
		}
	}
}

func TestAppend_PreservesExistingLines(t *testing.T) {
	book := newTestLogbook(t)

	if err := book.Append("first", domain.StateStart); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := book.Append("first", domain.StateEnd); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	lines := book.ReadAll()
	if len(lines) != 2 {
		t.Fatalf("ReadAll() returned %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "START") {
		t.Errorf("first line = %q, want START entry", lines[0])
	}
	if !strings.Contains(lines[1], "END") {
		t.Errorf("second line = %q, want END entry", lines[1])
	}
}

func TestAppend_LineFormat(t *testing.T) {
	book := newTestLogbook(t)

	if err := book.Append("Write report", domain.StateAbort); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	lines := book.ReadAll()
	if len(lines) != 1 {
		t.Fatalf("ReadAll() returned %d lines, want 1", len(lines))
	}

	entry, err := domain.ParseLine(lines[0])
	if err != nil {
		t.Fatalf("appended line %q does not parse: %v", lines[0], err)
	}
	if entry.State != domain.StateAbort {
		t.Errorf("State = %q, want %q", entry.State, domain.StateAbort)
	}
	if entry.Task != "Write report" {
		t.Errorf("Task = %q, want %q", entry.Task, "Write report")
	}
}

func TestReadAll_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")

	// A directory at the log path makes the read fail without the file
	// being missing.
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	book := New(path)
	lines := book.ReadAll()
	if len(lines) != 1 || lines[0] != readErrorLine {
		t.Errorf("ReadAll() = %v, want [%q]", lines, readErrorLine)
	}
}

func TestEntries_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")

	content := "2025-03-14 T=09:00 - START: A\n" +
		"garbage line\n" +
		"2025-03-14 T=09:25 - END: A\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to seed log file: %v", err)
	}

	book := New(path)
	entries := book.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() returned %d entries, want 2", len(entries))
	}
	if entries[0].State != domain.StateStart || entries[1].State != domain.StateEnd {
		t.Errorf("Entries() states = %q, %q, want START, END", entries[0].State, entries[1].State)
	}
}

func TestPath(t *testing.T) {
	book := New("/tmp/some_log.txt")
	if got := book.Path(); got != "/tmp/some_log.txt" {
		t.Errorf("Path() = %q, want %q", got, "/tmp/some_log.txt")
	}
}
