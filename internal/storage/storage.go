// Package storage provides file system operations for .dundun/ directories.
package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// dataDir is the name of the dundun directory.
	dataDir = ".dundun"
	// configFile is the name of the config file within .dundun/.
	configFile = "config.yaml"
	// currentVersion is the storage layout version written by Init.
	currentVersion = 1
)

// Backend selects where blobs are kept.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// ErrBlobNotFound is returned by ReadBlob when no blob has the given key.
var ErrBlobNotFound = errors.New("blob not found")

// Blobs is a named-blob store that must be closed after use.
type Blobs interface {
	ReadBlob(key string) ([]byte, error)
	WriteBlob(key string, data []byte) error
	Close() error
}

// StorageConfig contains settings stored in .dundun/config.yaml.
type StorageConfig struct {
	Version int     `yaml:"version"`
	Backend Backend `yaml:"backend"`
}

// Storage provides access to a .dundun/ directory.
type Storage struct {
	root   string // path to directory containing .dundun/
	cfg    StorageConfig
	logger *log.Logger
}

// ParseBackend validates a backend name. An empty name selects the file
// backend.
func ParseBackend(name string) (Backend, error) {
	switch Backend(name) {
	case "", BackendFile:
		return BackendFile, nil
	case BackendSQLite:
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown backend %q (want %s or %s)", name, BackendFile, BackendSQLite)
	}
}

// Open returns a Storage for the given directory.
// Returns error if .dundun/ does not exist.
func Open(dir string) (*Storage, error) {
	path := filepath.Join(dir, dataDir)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".dundun/ directory not found in %s (run 'dundun init')", dir)
		}
		return nil, fmt.Errorf("failed to access .dundun/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".dundun is not a directory")
	}

	cfg, err := loadStorageConfig(filepath.Join(path, configFile))
	if err != nil {
		return nil, err
	}

	return &Storage{root: dir, cfg: *cfg}, nil
}

// Init creates the .dundun/ directory using the given backend.
// Returns error if .dundun/ already exists.
func Init(dir string, backend Backend) (*Storage, error) {
	path := filepath.Join(dir, dataDir)

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf(".dundun/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .dundun/: %w", err)
	}

	backend, err := ParseBackend(string(backend))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .dundun/: %w", err)
	}

	cfg := StorageConfig{Version: currentVersion, Backend: backend}
	cfgData, err := yaml.Marshal(&cfg)
	if err != nil {
		os.RemoveAll(path)
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(path, configFile), cfgData, 0644); err != nil {
		os.RemoveAll(path)
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	s := &Storage{root: dir, cfg: cfg}

	// Create the backend's files up front so a broken setup fails here
	// rather than on the first save.
	blobs, err := s.OpenBlobs()
	if err != nil {
		os.RemoveAll(path)
		return nil, fmt.Errorf("failed to initialize %s backend: %w", backend, err)
	}
	if err := blobs.Close(); err != nil {
		return nil, err
	}

	return s, nil
}

// loadStorageConfig reads .dundun/config.yaml. A missing file means a
// version 1 directory using the file backend.
func loadStorageConfig(path string) (*StorageConfig, error) {
	cfg := &StorageConfig{Version: currentVersion, Backend: BackendFile}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config.yaml: %w", err)
	}

	backend, err := ParseBackend(string(cfg.Backend))
	if err != nil {
		return nil, fmt.Errorf("invalid config.yaml: %w", err)
	}
	cfg.Backend = backend
	return cfg, nil
}

// Root returns the root directory containing .dundun/.
func (s *Storage) Root() string {
	return s.root
}

// DataPath returns the path to the .dundun/ directory.
func (s *Storage) DataPath() string {
	return filepath.Join(s.root, dataDir)
}

// Backend returns the configured blob backend.
func (s *Storage) Backend() Backend {
	return s.cfg.Backend
}

// SetLogger sets where backends opened by OpenBlobs log. By default
// nothing is logged.
func (s *Storage) SetLogger(l *log.Logger) {
	s.logger = l
}

// OpenBlobs opens the configured blob backend.
func (s *Storage) OpenBlobs() (Blobs, error) {
	switch s.cfg.Backend {
	case BackendSQLite:
		return OpenSQLiteBlobs(filepath.Join(s.DataPath(), sqliteFile), s.logger)
	default:
		return OpenFileBlobs(filepath.Join(s.DataPath(), blobsDir))
	}
}
