package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/xvierd/pomocli/internal/domain"
)

func TestHistoryCmd(t *testing.T) {
	t.Run("history command structure", func(t *testing.T) {
		if historyCmd.Use != "history" {
			t.Errorf("historyCmd.Use = %q, want %q", historyCmd.Use, "history")
		}
	})

	t.Run("history command has json flag", func(t *testing.T) {
		flag := historyCmd.Flags().Lookup("json")
		if flag == nil {
			t.Fatal("historyCmd should have --json flag")
		}
	})

	t.Run("history command has limit flag", func(t *testing.T) {
		flag := historyCmd.Flags().Lookup("limit")
		if flag == nil {
			t.Fatal("historyCmd should have --limit flag")
		}
		if flag.Shorthand != "n" {
			t.Errorf("limit flag shorthand = %q, want %q", flag.Shorthand, "n")
		}
	})

	t.Run("history is registered on root", func(t *testing.T) {
		for _, sub := range rootCmd.Commands() {
			if sub == historyCmd {
				return
			}
		}
		t.Error("historyCmd should be registered on rootCmd")
	})
}

func TestNewestFirst(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	entry := func(task string) domain.LogEntry {
		return domain.LogEntry{At: at, State: domain.StateStart, Task: task}
	}

	tests := []struct {
		name  string
		tasks []string
		limit int
		want  []string
	}{
		{"reverses file order", []string{"a", "b", "c"}, 0, []string{"c", "b", "a"}},
		{"limit keeps newest", []string{"a", "b", "c"}, 2, []string{"c", "b"}},
		{"limit larger than log", []string{"a"}, 5, []string{"a"}},
		{"empty log", nil, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []domain.LogEntry
			for _, task := range tt.tasks {
				entries = append(entries, entry(task))
			}

			got := newestFirst(entries, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for i, task := range tt.want {
				if got[i].Task != task {
					t.Errorf("entry[%d].Task = %q, want %q", i, got[i].Task, task)
				}
			}
		})
	}
}

func TestStateColor(t *testing.T) {
	tests := []struct {
		state domain.EntryState
		want  *color.Color
	}{
		{domain.StateEnd, color.New(color.FgGreen)},
		{domain.StateAbort, color.New(color.FgRed)},
		{domain.StateStart, color.New(color.FgCyan)},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			if got := stateColor(tt.state); !got.Equals(tt.want) {
				t.Errorf("stateColor(%q) has wrong attributes", tt.state)
			}
		})
	}
}

func TestFormatHistoryLine(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.Local)

	t.Run("fits within width", func(t *testing.T) {
		entry := domain.LogEntry{At: at, State: domain.StateEnd, Task: "write report"}
		got := formatHistoryLine(entry, 80)
		want := "2025-06-01 T=09:30 - END: write report"
		if got != want {
			t.Errorf("formatHistoryLine() = %q, want %q", got, want)
		}
	})

	t.Run("long task truncated with ellipsis", func(t *testing.T) {
		entry := domain.LogEntry{At: at, State: domain.StateStart, Task: strings.Repeat("x", 100)}
		got := formatHistoryLine(entry, 60)
		if len(got) != 60 {
			t.Errorf("formatHistoryLine() length = %d, want 60", len(got))
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("formatHistoryLine() = %q, want ... suffix", got)
		}
	})

	t.Run("timestamp and state never cut", func(t *testing.T) {
		entry := domain.LogEntry{At: at, State: domain.StateAbort, Task: strings.Repeat("y", 100)}
		got := formatHistoryLine(entry, 60)
		if !strings.HasPrefix(got, "2025-06-01 T=09:30 - ABORT") {
			t.Errorf("formatHistoryLine() = %q, want intact prefix", got)
		}
	})
}
