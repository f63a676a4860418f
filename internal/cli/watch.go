package cli

import (
	"context"
	"time"

	"github.com/dundun/dundun/internal/model"
)

// DayWatcher notices when the calendar day rolls over.
// It only reports the change; redrawing is up to the caller.
type DayWatcher struct {
	now     func() time.Time
	lastDay time.Time
}

// NewDayWatcher returns a watcher that starts on the current day.
func NewDayWatcher(now func() time.Time) *DayWatcher {
	return &DayWatcher{now: now, lastDay: model.StartOfDay(now())}
}

// Day returns the day the watcher last saw.
func (w *DayWatcher) Day() time.Time {
	return w.lastDay
}

// Check reports whether the day changed since the last call.
// Moving the clock backwards across midnight also counts as a change.
func (w *DayWatcher) Check() bool {
	now := w.now()
	if model.SameDay(w.lastDay, now) {
		return false
	}
	w.lastDay = model.StartOfDay(now)
	return true
}

// Poll calls onTick every interval until ctx is done. rolled is true when
// the calendar day changed since the previous tick. onTick runs on the
// calling goroutine.
func (w *DayWatcher) Poll(ctx context.Context, interval time.Duration, onTick func(rolled bool)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			onTick(w.Check())
		}
	}
}
