package model

import "time"

// DateFormat is the layout used when a day is shown to the user.
const DateFormat = "2006-01-02"

// StartOfDay returns midnight at the start of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a falls on the same calendar day as b.
// The comparison is made in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsYesterday reports whether d falls on the calendar day before now.
// AddDate is used rather than subtracting 24h so DST transitions don't
// shift the boundary.
func IsYesterday(d, now time.Time) bool {
	return SameDay(d, StartOfDay(now).AddDate(0, 0, -1))
}

// IsToday reports whether d falls on now's calendar day.
func IsToday(d, now time.Time) bool {
	return SameDay(d, now)
}

// IsDayStart reports whether t is exactly midnight in its own location.
func IsDayStart(t time.Time) bool {
	return t.Equal(StartOfDay(t))
}
