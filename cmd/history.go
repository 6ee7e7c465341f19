package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomocli/internal/adapters/logbook"
	"github.com/xvierd/pomocli/internal/domain"
)

var (
	historyJSON  bool
	historyLimit int
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged sessions, newest first",
	Long: `List the session log without entering the fullscreen interface.

Each line shows the timestamp, the lifecycle state (START, END or ABORT)
and the task name, newest first.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output entries in JSON format")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show at most N entries (0 shows all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := resolveLogPath()
	if err != nil {
		return err
	}

	entries := newestFirst(logbook.New(path).Entries(), historyLimit)

	if historyJSON {
		return printHistoryJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No log entries found yet.")
		return nil
	}

	width := historyWidth()
	for _, entry := range entries {
		fmt.Println(formatHistoryLine(entry, width))
	}
	return nil
}

// newestFirst reverses entries in place and caps the result at limit
// entries. A limit of zero keeps everything.
func newestFirst(entries []domain.LogEntry, limit int) []domain.LogEntry {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func printHistoryJSON(entries []domain.LogEntry) error {
	list := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		list = append(list, map[string]interface{}{
			"at":    entry.At.Format(domain.TimestampLayout),
			"state": string(entry.State),
			"task":  entry.Task,
		})
	}
	data := map[string]interface{}{
		"entries": list,
		"count":   len(list),
	}
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}

// stateColor maps a lifecycle state to its listing color.
func stateColor(state domain.EntryState) *color.Color {
	switch state {
	case domain.StateEnd:
		return color.New(color.FgGreen)
	case domain.StateAbort:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}

// formatHistoryLine renders one entry in the on-disk line shape with the
// state token colored, truncated to the terminal width. Only the task
// part is ever cut; timestamp and state are plain ASCII.
func formatHistoryLine(entry domain.LogEntry, width int) string {
	prefix := entry.At.Format(domain.TimestampLayout) + " - "
	state := string(entry.State)
	suffix := ": " + entry.Task

	room := width - len(prefix) - len(state)
	if runes := []rune(suffix); len(runes) > room && room > 3 {
		suffix = string(runes[:room-3]) + "..."
	}
	return prefix + stateColor(entry.State).Sprint(state) + suffix
}

// historyWidth returns the current terminal width, defaulting to 80.
func historyWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}
