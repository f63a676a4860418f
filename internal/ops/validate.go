package ops

import (
	"fmt"

	"github.com/dundun/dundun/internal/model"
	"github.com/google/uuid"
)

// ValidationErrorType represents the type of validation error.
type ValidationErrorType string

const (
	ValidationErrorMissingID     ValidationErrorType = "missing_id"
	ValidationErrorDuplicateID   ValidationErrorType = "duplicate_id"
	ValidationErrorNegativeCount ValidationErrorType = "negative_count"
	ValidationErrorLongest       ValidationErrorType = "longest_below_count"
	ValidationErrorDateNotDay    ValidationErrorType = "date_not_day"
)

// ValidationError represents a data integrity issue in a streak.
type ValidationError struct {
	Type    ValidationErrorType
	ItemID  string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s - %s", e.ItemID, e.Type, e.Message)
}

// ValidationFix represents an auto-repair action taken.
type ValidationFix struct {
	Type        ValidationErrorType
	ItemID      string
	Description string
}

// ValidateStreaks checks a collection for invariant violations.
// Returns one error per violation, in collection order.
func ValidateStreaks(streaks []model.Streak) []ValidationError {
	var errors []ValidationError
	seen := make(map[string]bool)

	for i := range streaks {
		st := &streaks[i]
		itemID := st.ID
		if itemID == "" {
			itemID = fmt.Sprintf("#%d", i+1)
			errors = append(errors, ValidationError{
				Type:    ValidationErrorMissingID,
				ItemID:  itemID,
				Message: fmt.Sprintf("streak %q has no ID", st.Title),
			})
		} else if seen[st.ID] {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorDuplicateID,
				ItemID:  itemID,
				Message: "ID appears more than once",
			})
		}
		seen[st.ID] = true

		if st.Count < 0 || st.LongestStreak < 0 {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorNegativeCount,
				ItemID:  itemID,
				Message: fmt.Sprintf("count=%d longest=%d must not be negative", st.Count, st.LongestStreak),
			})
		}

		if st.LongestStreak < st.Count {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorLongest,
				ItemID:  itemID,
				Message: fmt.Sprintf("longest streak %d is below current count %d", st.LongestStreak, st.Count),
			})
		}

		if st.LastCompletedDate != nil && !model.IsDayStart(*st.LastCompletedDate) {
			errors = append(errors, ValidationError{
				Type:    ValidationErrorDateNotDay,
				ItemID:  itemID,
				Message: fmt.Sprintf("last completed date %s has a time of day", st.LastCompletedDate.Format("2006-01-02T15:04:05Z07:00")),
			})
		}
	}

	return errors
}

// FixStreaks returns a repaired copy of streaks and the fixes it applied.
//
// Missing and duplicate IDs get fresh ones (the first holder of a
// duplicated ID keeps it). Negative counters become 0, a longest streak
// below the current count is raised to it, and dates are truncated to
// the start of their day. The result always passes ValidateStreaks.
func FixStreaks(streaks []model.Streak) ([]model.Streak, []ValidationFix) {
	fixed := model.CloneAll(streaks)
	var fixes []ValidationFix
	seen := make(map[string]bool)

	for i := range fixed {
		st := &fixed[i]

		if st.ID == "" || seen[st.ID] {
			typ := ValidationErrorDuplicateID
			if st.ID == "" {
				typ = ValidationErrorMissingID
			}
			newID := uuid.NewString()
			fixes = append(fixes, ValidationFix{
				Type:        typ,
				ItemID:      newID,
				Description: fmt.Sprintf("assigned new ID to %q", st.Title),
			})
			st.ID = newID
		}
		seen[st.ID] = true

		if st.Count < 0 || st.LongestStreak < 0 {
			fixes = append(fixes, ValidationFix{
				Type:        ValidationErrorNegativeCount,
				ItemID:      st.ID,
				Description: "set negative counters to 0",
			})
			st.Count = max(st.Count, 0)
			st.LongestStreak = max(st.LongestStreak, 0)
		}

		if st.LongestStreak < st.Count {
			fixes = append(fixes, ValidationFix{
				Type:        ValidationErrorLongest,
				ItemID:      st.ID,
				Description: fmt.Sprintf("raised longest streak from %d to %d", st.LongestStreak, st.Count),
			})
			st.LongestStreak = st.Count
		}

		if st.LastCompletedDate != nil && !model.IsDayStart(*st.LastCompletedDate) {
			day := model.StartOfDay(*st.LastCompletedDate)
			fixes = append(fixes, ValidationFix{
				Type:        ValidationErrorDateNotDay,
				ItemID:      st.ID,
				Description: fmt.Sprintf("truncated last completed date to %s", day.Format(model.DateFormat)),
			})
			st.LastCompletedDate = &day
		}
	}

	return fixed, fixes
}
