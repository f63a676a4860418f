package cli

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a streak was not found.
type NotFoundError struct {
	Type string // "streak"
	ID   string // the ID or title that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

// AmbiguousError indicates an ID prefix or title matched more than one streak.
type AmbiguousError struct {
	Input   string   // what the user typed
	Matches []string // display names of the candidates
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%q is ambiguous, matches: %s", e.Input, strings.Join(e.Matches, ", "))
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

// FormatSaveWarning describes a failed save. The change took effect for
// this invocation but will not be there next time.
func FormatSaveWarning(err error) string {
	if err == nil {
		return ""
	}
	return "warning: changes not saved: " + err.Error()
}
