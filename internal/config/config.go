// Package config provides persistence for the timer duration settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Valid ranges and defaults for the two duration settings, in minutes.
const (
	MinWorkMinutes     = 1
	MaxWorkMinutes     = 180
	DefaultWorkMinutes = 25

	MinBreakMinutes     = 1
	MaxBreakMinutes     = 60
	DefaultBreakMinutes = 5
)

// Settings holds the work and break durations in minutes.
type Settings struct {
	WorkMinutes  int `mapstructure:"work_minutes"`
	BreakMinutes int `mapstructure:"break_minutes"`
}

// DefaultSettings returns the standard 25/5 configuration.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:  DefaultWorkMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// WorkDuration returns the work interval length.
func (s Settings) WorkDuration() time.Duration {
	return time.Duration(s.WorkMinutes) * time.Minute
}

// BreakDuration returns the break interval length.
func (s Settings) BreakDuration() time.Duration {
	return time.Duration(s.BreakMinutes) * time.Minute
}

// Clamp forces both durations into their valid ranges.
func (s *Settings) Clamp() {
	s.WorkMinutes = clampInt(s.WorkMinutes, MinWorkMinutes, MaxWorkMinutes)
	s.BreakMinutes = clampInt(s.BreakMinutes, MinBreakMinutes, MaxBreakMinutes)
}

// Load reads settings from the JSON file at path. It never fails: a
// missing or unparsable file yields the defaults, a field that cannot be
// coerced to an integer yields that field's default, and both fields are
// clamped into range before returning. Unknown fields are ignored.
func Load(path string) Settings {
	settings := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return settings
	}

	if raw := v.Get("work_minutes"); raw != nil {
		if n, err := cast.ToIntE(raw); err == nil {
			settings.WorkMinutes = n
		}
	}
	if raw := v.Get("break_minutes"); raw != nil {
		if n, err := cast.ToIntE(raw); err == nil {
			settings.BreakMinutes = n
		}
	}

	settings.Clamp()
	return settings
}

// Save writes the two integer settings as human-readable JSON at path,
// replacing any prior content.
func Save(path string, settings Settings) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.Set("work_minutes", settings.WorkMinutes)
	v.Set("break_minutes", settings.BreakMinutes)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// DefaultPath returns the settings file location in the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".pomocli_config.json"), nil
}

func clampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
