package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWatcherCheck(t *testing.T) {
	now := time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)
	w := NewDayWatcher(func() time.Time { return now })

	assert.True(t, w.Day().Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Check(), "no change on the same day")

	now = now.Add(30 * time.Second)
	assert.False(t, w.Check())

	now = now.Add(time.Minute) // 00:00:30 on the 20th
	assert.True(t, w.Check(), "midnight passed")
	assert.True(t, w.Day().Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Check(), "reported only once")

	now = now.Add(-time.Hour)
	assert.True(t, w.Check(), "clock moved back a day")
}

func TestDayWatcherPoll(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	w := NewDayWatcher(func() time.Time { return now })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks []bool
	w.Poll(ctx, time.Millisecond, func(rolled bool) {
		if ctx.Err() != nil {
			return // a tick raced with cancel
		}
		ticks = append(ticks, rolled)
		switch len(ticks) {
		case 2:
			now = now.AddDate(0, 0, 1)
		case 4:
			cancel()
		}
	})

	assert.Equal(t, []bool{false, false, true, false}, ticks)
}
