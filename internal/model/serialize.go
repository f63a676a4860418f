package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// EncodeStreaks serializes the collection as a JSON array.
// A nil or empty collection encodes as "[]". Absent dates encode as null.
func EncodeStreaks(streaks []Streak) ([]byte, error) {
	if streaks == nil {
		streaks = []Streak{}
	}
	data, err := json.Marshal(streaks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode streaks: %w", err)
	}
	return data, nil
}

// storedStreak mirrors Streak with the required keys as pointers, so a
// missing key can be told apart from a zero value.
type storedStreak struct {
	ID                *string    `json:"id"`
	Title             *string    `json:"title"`
	Count             *int       `json:"count"`
	LongestStreak     *int       `json:"longestStreak"`
	LastCompletedDate *time.Time `json:"lastCompletedDate"`
}

// DecodeStreaks parses a JSON array of streaks.
// Every element must be an object carrying a non-empty id plus title,
// count and longestStreak; lastCompletedDate may be null or absent.
// Anything else rejects the whole collection.
func DecodeStreaks(data []byte) ([]Streak, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("failed to decode streaks: expected a JSON array")
	}

	var stored []*storedStreak
	if err := json.Unmarshal(trimmed, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode streaks: %w", err)
	}

	streaks := make([]Streak, 0, len(stored))
	for i, st := range stored {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("failed to decode streaks: element %d: %w", i, err)
		}
		streaks = append(streaks, Streak{
			ID:                *st.ID,
			Title:             *st.Title,
			Count:             *st.Count,
			LongestStreak:     *st.LongestStreak,
			LastCompletedDate: st.LastCompletedDate,
		})
	}
	return streaks, nil
}

func (st *storedStreak) check() error {
	switch {
	case st == nil:
		return fmt.Errorf("null record")
	case st.ID == nil || *st.ID == "":
		return fmt.Errorf("missing id")
	case st.Title == nil:
		return fmt.Errorf("missing title")
	case st.Count == nil:
		return fmt.Errorf("missing count")
	case st.LongestStreak == nil:
		return fmt.Errorf("missing longestStreak")
	}
	return nil
}
