package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// blobsDir is the subdirectory of .dundun/ used by the file backend.
const blobsDir = "blobs"

// validKey restricts blob keys to names that are safe as file names.
var validKey = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// FileBlobs stores each blob as <dir>/<key>.json.
type FileBlobs struct {
	dir string
}

// OpenFileBlobs returns a file backend rooted at dir, creating dir if needed.
func OpenFileBlobs(dir string) (*FileBlobs, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &FileBlobs{dir: dir}, nil
}

func (f *FileBlobs) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

// ReadBlob returns the contents of the named blob.
func (f *FileBlobs) ReadBlob(key string) ([]byte, error) {
	path, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, key)
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

// WriteBlob replaces the named blob. The new contents are written to a
// temporary file and renamed into place, so readers never see a partial
// blob.
func (f *FileBlobs) WriteBlob(key string, data []byte) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace blob %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; it exists to satisfy Blobs.
func (f *FileBlobs) Close() error {
	return nil
}
