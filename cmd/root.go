// Package cmd provides the CLI commands for pomocli.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomocli/internal/adapters/git"
	"github.com/xvierd/pomocli/internal/adapters/logbook"
	"github.com/xvierd/pomocli/internal/adapters/notification"
	"github.com/xvierd/pomocli/internal/adapters/tui"
	"github.com/xvierd/pomocli/internal/app"
	"github.com/xvierd/pomocli/internal/config"
	"github.com/xvierd/pomocli/internal/domain"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	logPath    string
	configPath string
	noNotify   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomocli",
	Short: "PomoCLI - A fullscreen Pomodoro timer for the terminal",
	Long: `PomoCLI is a terminal Pomodoro timer with a big countdown clock,
break tracking and an append-only session log.

Run "pomocli" with no arguments to open the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSession,
}

// Execute runs the root command and translates its errors into exit codes.
// A user interrupt is a clean exit, not a failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, domain.ErrInterrupted) {
			fmt.Println("Session cancelled.")
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to the session log file (default: ~/pomocli_log.txt)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the settings file (default: ~/.pomocli_config.json)")
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("PomoCLI\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(historyCmd)
}

// resolveLogPath returns the --log override or the default location.
func resolveLogPath() (string, error) {
	if logPath != "" {
		return logPath, nil
	}
	return logbook.DefaultPath()
}

// resolveConfigPath returns the --config override or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// repoLine resolves the git context shown in the work timer footer.
// Outside a repository it returns "" and the footer omits it.
func repoLine() string {
	gitCtx, err := git.Detect("")
	if err != nil {
		return ""
	}
	return gitCtx.String()
}

// runSession wires the adapters together and runs the interactive menu
// loop until the user quits.
func runSession(cmd *cobra.Command, args []string) error {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}
	lgPath, err := resolveLogPath()
	if err != nil {
		return err
	}

	notifier := notification.New(!noNotify)
	console := tui.New(notifier, repoLine)
	book := logbook.New(lgPath)

	return app.New(console, book, notifier, cfgPath).Run()
}
