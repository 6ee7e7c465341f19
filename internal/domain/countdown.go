package domain

import "time"

// Outcome is how a countdown run ended.
type Outcome string

const (
	OutcomeCompleted   Outcome = "completed"
	OutcomeAborted     Outcome = "aborted"
	OutcomeInterrupted Outcome = "interrupted"
)

// Countdown represents a single timed interval. The schedule is anchored
// to wall-clock time at construction; remaining time and progress are
// always recomputed from the clock, never from tick counts, so the timer
// stays accurate when rendering stalls.
type Countdown struct {
	Total time.Duration
	Start time.Time
	End   time.Time
	Label string
	Task  string
}

// NewCountdown creates a countdown of the given length starting now.
func NewCountdown(total time.Duration, label, task string) *Countdown {
	start := time.Now()
	return &Countdown{
		Total: total,
		Start: start,
		End:   start.Add(total),
		Label: label,
		Task:  task,
	}
}

// Remaining returns the time left at the given instant, never negative.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	remaining := c.End.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Percent returns the completion fraction at the given instant,
// clamped to [0, 1]. It is monotonically non-decreasing in now.
func (c *Countdown) Percent(now time.Time) float64 {
	if c.Total <= 0 {
		return 1
	}
	elapsed := now.Sub(c.Start)
	if elapsed <= 0 {
		return 0
	}
	pct := float64(elapsed) / float64(c.Total)
	if pct > 1 {
		return 1
	}
	return pct
}

// Done reports whether the scheduled end has passed.
func (c *Countdown) Done(now time.Time) bool {
	return !now.Before(c.End)
}
