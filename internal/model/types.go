// Package model defines the core data structures for dundun.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Streak is a habit tracked by consecutive daily completions.
type Streak struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Count         int    `json:"count"`
	LongestStreak int    `json:"longestStreak"`
	// LastCompletedDate is the start of the day the streak was last marked
	// complete. Nil if never completed or after a reset.
	LastCompletedDate *time.Time `json:"lastCompletedDate"`
}

// NewStreak returns a streak with a fresh ID and zeroed counters.
func NewStreak(title string) Streak {
	return Streak{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// Same reports whether s and other are the same streak.
// Identity is by ID only; titles and counters may differ.
func (s *Streak) Same(other *Streak) bool {
	return s.ID == other.ID
}

// Clone returns a copy of s that shares no memory with it.
func (s Streak) Clone() Streak {
	if s.LastCompletedDate != nil {
		d := *s.LastCompletedDate
		s.LastCompletedDate = &d
	}
	return s
}

// CloneAll returns a deep copy of streaks, preserving order.
func CloneAll(streaks []Streak) []Streak {
	out := make([]Streak, len(streaks))
	for i, s := range streaks {
		out[i] = s.Clone()
	}
	return out
}
