// Package cli provides CLI infrastructure for dundun.
package cli

import (
	"fmt"
	"strings"

	"github.com/dundun/dundun/internal/model"
)

// ResolveStreak finds the streak a user meant by arg.
//
// Lookup order: exact ID, then exact title (case-insensitive), then unique
// ID prefix (case-insensitive). A title or prefix that matches more than
// one streak is an AmbiguousError.
func ResolveStreak(streaks []model.Streak, arg string) (model.Streak, error) {
	input := strings.TrimSpace(arg)
	if input == "" {
		return model.Streak{}, &ValidationError{Field: "streak", Message: "must not be empty"}
	}

	if id, err := model.NormalizeID(input); err == nil {
		for _, s := range streaks {
			if s.ID == id {
				return s, nil
			}
		}
		return model.Streak{}, &NotFoundError{Type: "streak", ID: input}
	}

	var titled []model.Streak
	for _, s := range streaks {
		if strings.EqualFold(s.Title, input) {
			titled = append(titled, s)
		}
	}
	switch len(titled) {
	case 1:
		return titled[0], nil
	case 0:
	default:
		return model.Streak{}, &AmbiguousError{Input: input, Matches: displayNames(titled)}
	}

	if model.IsIDPrefix(input) {
		prefix := strings.ToLower(input)
		var matches []model.Streak
		for _, s := range streaks {
			if strings.HasPrefix(s.ID, prefix) {
				matches = append(matches, s)
			}
		}
		switch len(matches) {
		case 1:
			return matches[0], nil
		case 0:
		default:
			return model.Streak{}, &AmbiguousError{Input: input, Matches: displayNames(matches)}
		}
	}

	return model.Streak{}, &NotFoundError{Type: "streak", ID: input}
}

// DisplayName is how a streak is referred to in messages: short ID and title.
func DisplayName(s model.Streak) string {
	return fmt.Sprintf("%s (%s)", model.ShortID(s.ID), s.Title)
}

func displayNames(streaks []model.Streak) []string {
	names := make([]string, len(streaks))
	for i, s := range streaks {
		names[i] = DisplayName(s)
	}
	return names
}
