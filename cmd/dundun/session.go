package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dundun/dundun/internal/cli"
	"github.com/dundun/dundun/internal/model"
	"github.com/dundun/dundun/internal/ops"
	"github.com/dundun/dundun/internal/storage"
)

// now is the clock every command uses. Tests replace it.
var now = time.Now

// session bundles what a command needs to work on the streak collection.
type session struct {
	storage *storage.Storage
	config  *storage.Config
	blobs   storage.Blobs
	store   *ops.StreakStore
}

// rootDir picks the directory holding .dundun/: --dir, then $DUNDUN_DIR,
// then the home directory.
func rootDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	if dir := os.Getenv("DUNDUN_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory (set --dir or DUNDUN_DIR): %w", err)
	}
	return home, nil
}

// openStorage opens the .dundun/ directory without touching the blobs.
func openStorage() (*storage.Storage, error) {
	dir, err := rootDir()
	if err != nil {
		return nil, err
	}
	return storage.Open(dir)
}

// openSession opens storage, reads the user config, and loads the streaks.
// The caller must Close the session.
func openSession() (*session, error) {
	s, err := openStorage()
	if err != nil {
		return nil, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := log.New(io.Discard, "", 0)
	if flagVerbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	s.SetLogger(logger)

	blobs, err := s.OpenBlobs()
	if err != nil {
		return nil, err
	}

	store := ops.NewStreakStore(blobs,
		ops.WithClock(func() time.Time { return now() }),
		ops.WithLogger(logger),
	)

	return &session{storage: s, config: cfg, blobs: blobs, store: store}, nil
}

// Close releases the blob backend.
func (s *session) Close() error {
	return s.blobs.Close()
}

// resolve finds the streak named by arg.
func (s *session) resolve(arg string) (model.Streak, error) {
	return cli.ResolveStreak(s.store.Streaks(), arg)
}

// warnUnsaved tells the user on stderr if the last save failed.
func (s *session) warnUnsaved() {
	if err := s.store.SaveErr(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatSaveWarning(err))
	}
}
