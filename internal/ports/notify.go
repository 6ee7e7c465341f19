package ports

// Alerter produces the audible half of the end-of-timer alert.
// This is a driven port (implemented by the notification adapter).
type Alerter interface {
	// Bell rings the terminal bell. Implementations must not fail; a
	// broken bell degrades to writing the BEL control character.
	Bell()
}

// Notifier sends desktop notifications for completed sessions.
// This is a driven port (implemented by the notification adapter).
type Notifier interface {
	// NotifyWorkComplete announces a finished work session.
	NotifyWorkComplete(task string) error

	// NotifyBreakOver announces a finished break.
	NotifyBreakOver() error
}
