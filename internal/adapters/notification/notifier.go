// Package notification provides the terminal bell and desktop
// notification utilities.
package notification

import (
	"fmt"
	"io"
	"os"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomocli/internal/ports"
)

// Notifier rings the terminal bell for timer alerts and sends desktop
// notifications when sessions complete.
type Notifier struct {
	enabled bool
	out     io.Writer
}

// New creates a notifier. When enabled is false, desktop notifications
// are suppressed; the bell always rings.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled, out: os.Stdout}
}

// Ensure Notifier implements both notification ports.
var (
	_ ports.Alerter  = (*Notifier)(nil)
	_ ports.Notifier = (*Notifier)(nil)
)

// Bell rings the terminal bell. If the system beep fails, it falls back
// to writing the BEL control character so the alert still sounds.
func (n *Notifier) Bell() {
	if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		fmt.Fprint(n.out, "\a")
	}
}

// NotifyWorkComplete displays a desktop notification for a finished work
// session.
func (n *Notifier) NotifyWorkComplete(task string) error {
	if !n.enabled {
		return nil
	}
	return beeep.Notify("🍅 Pomodoro Complete!", fmt.Sprintf("Finished: %s", task), "")
}

// NotifyBreakOver displays a desktop notification for a finished break.
func (n *Notifier) NotifyBreakOver() error {
	if !n.enabled {
		return nil
	}
	return beeep.Notify("☕ Break Over!", "Your break is complete. Ready to focus?", "")
}
