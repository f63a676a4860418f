package model

import "time"

// Status is the derived display state of a streak.
type Status string

const (
	// StatusNew means the streak has never been completed, or was reset.
	StatusNew Status = "new"
	// StatusDone means the streak was completed today.
	StatusDone Status = "done"
	// StatusDue means the streak was completed yesterday and is still alive.
	StatusDue Status = "due"
	// StatusLapsed means the last completion was two or more days ago;
	// the next completion restarts the count at 1.
	StatusLapsed Status = "lapsed"
)

// ComputeStatus returns the derived state for a streak at now.
// A completion date in the future is reported as lapsed, since completing
// it would restart the count.
func ComputeStatus(s *Streak, now time.Time) Status {
	if s.LastCompletedDate == nil {
		return StatusNew
	}
	last := *s.LastCompletedDate
	switch {
	case IsToday(last, now):
		return StatusDone
	case IsYesterday(last, now):
		return StatusDue
	default:
		return StatusLapsed
	}
}
