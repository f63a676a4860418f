package ops

import (
	"io"
	"log"
	"time"

	"github.com/dundun/dundun/internal/model"
)

// DefaultKey is the name of the blob holding the streak collection.
const DefaultKey = "streaks"

// StreakStore owns the ordered collection of streaks and keeps the blob
// store in sync with it. Every mutation is followed by a full save.
//
// A StreakStore is not safe for concurrent use. Operations that target an
// unknown ID do nothing. Persistence failures are logged and recorded for
// SaveErr, never returned.
type StreakStore struct {
	blobs   BlobStore
	key     string
	now     func() time.Time
	logger  *log.Logger
	streaks []model.Streak

	saveErr error

	subs   map[int]func([]model.Streak)
	nextID int
}

// Option configures a StreakStore.
type Option func(*StreakStore)

// WithClock sets the source of the current time. The store's calendar is
// the location of the returned times.
func WithClock(now func() time.Time) Option {
	return func(s *StreakStore) { s.now = now }
}

// WithLogger sets where swallowed persistence failures are logged.
func WithLogger(l *log.Logger) Option {
	return func(s *StreakStore) { s.logger = l }
}

// WithKey sets the blob name the collection is stored under.
func WithKey(key string) Option {
	return func(s *StreakStore) { s.key = key }
}

// NewStreakStore returns a store backed by blobs and loads the persisted
// collection.
func NewStreakStore(blobs BlobStore, opts ...Option) *StreakStore {
	s := &StreakStore{
		blobs:  blobs,
		key:    DefaultKey,
		now:    time.Now,
		logger: log.New(io.Discard, "", 0),
		subs:   make(map[int]func([]model.Streak)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load()
	return s
}

// Streaks returns a copy of the collection in display order.
func (s *StreakStore) Streaks() []model.Streak {
	return model.CloneAll(s.streaks)
}

// Get returns a copy of the streak with the given ID.
func (s *StreakStore) Get(id string) (model.Streak, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Streak{}, false
	}
	return s.streaks[i].Clone(), true
}

// Add appends a new streak with zeroed counters and returns it.
// The title is not validated.
func (s *StreakStore) Add(title string) model.Streak {
	streak := model.NewStreak(title)
	s.streaks = append(s.streaks, streak)
	s.commit()
	return streak.Clone()
}

// Complete marks the streak done for today.
// Completing twice on the same day changes nothing. A completion the day
// after the last one extends the run; anything else starts a new run at 1.
func (s *StreakStore) Complete(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	st := &s.streaks[i]
	now := s.now()
	today := model.StartOfDay(now)

	if st.LastCompletedDate != nil && model.IsToday(*st.LastCompletedDate, now) {
		return
	}

	if st.LastCompletedDate != nil && model.IsYesterday(*st.LastCompletedDate, now) {
		st.Count++
	} else {
		st.Count = 1
	}

	if st.Count > st.LongestStreak {
		st.LongestStreak = st.Count
	}

	st.LastCompletedDate = &today
	s.commit()
}

// IsCompletedToday reports whether the streak was last completed today.
func (s *StreakStore) IsCompletedToday(id string) bool {
	i := s.index(id)
	if i < 0 || s.streaks[i].LastCompletedDate == nil {
		return false
	}
	return model.IsToday(*s.streaks[i].LastCompletedDate, s.now())
}

// Undo reverses today's completion. It does nothing unless the streak was
// completed today.
//
// If the run being undone held the longest-streak record (count equal to
// longest), the record is pulled back to the new count. A record from an
// earlier, larger run is left alone.
func (s *StreakStore) Undo(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	st := &s.streaks[i]
	if st.LastCompletedDate == nil || !model.IsToday(*st.LastCompletedDate, s.now()) {
		return
	}

	originalCount := st.Count
	originalLongest := st.LongestStreak

	if st.Count > 0 {
		st.Count--
	}
	st.LastCompletedDate = nil

	if originalCount == originalLongest {
		st.LongestStreak = st.Count
	}
	s.commit()
}

// Reset zeroes the current run without deleting the streak.
// If the current run held the record, the record is erased with it.
func (s *StreakStore) Reset(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	st := &s.streaks[i]

	originalCount := st.Count
	originalLongest := st.LongestStreak

	st.Count = 0
	st.LastCompletedDate = nil

	if originalCount == originalLongest {
		st.LongestStreak = 0
	}
	s.commit()
}

// Rename changes a streak's title. The ID is unchanged.
func (s *StreakStore) Rename(id, title string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.streaks[i].Title = title
	s.commit()
}

// Delete removes the streak permanently.
func (s *StreakStore) Delete(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.streaks = append(s.streaks[:i], s.streaks[i+1:]...)
	s.commit()
}

// Load replaces the in-memory collection with the persisted one.
// A missing or malformed blob leaves the store empty.
func (s *StreakStore) Load() {
	s.streaks = []model.Streak{}

	data, err := s.blobs.ReadBlob(s.key)
	if err != nil {
		s.logger.Printf("[store] load %q: %v", s.key, err)
	} else if streaks, err := model.DecodeStreaks(data); err != nil {
		s.logger.Printf("[store] load %q: %v", s.key, err)
	} else {
		s.streaks = streaks
	}

	s.notify()
}

// Save writes the whole collection to the blob store, replacing the
// previous snapshot. Failures are logged and recorded, not returned.
func (s *StreakStore) Save() {
	data, err := model.EncodeStreaks(s.streaks)
	if err == nil {
		err = s.blobs.WriteBlob(s.key, data)
	}
	if err != nil {
		s.logger.Printf("[store] save %q: %v", s.key, err)
	}
	s.saveErr = err
}

// SaveErr returns the error from the most recent save, or nil if it
// succeeded.
func (s *StreakStore) SaveErr() error {
	return s.saveErr
}

// Subscribe registers fn to be called with a copy of the collection after
// every change and every load. The returned func unregisters it.
func (s *StreakStore) Subscribe(fn func([]model.Streak)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// commit persists the collection and tells subscribers about the change.
func (s *StreakStore) commit() {
	s.Save()
	s.notify()
}

func (s *StreakStore) notify() {
	if len(s.subs) == 0 {
		return
	}
	// Subscribers run in registration order.
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fn(model.CloneAll(s.streaks))
		}
	}
}

func (s *StreakStore) index(id string) int {
	for i := range s.streaks {
		if s.streaks[i].ID == id {
			return i
		}
	}
	return -1
}
