package ops

import (
	"fmt"
	"sync"
)

// BlobStore is the named-blob storage a StreakStore persists to.
// storage.FileBlobs and storage.SQLiteBlobs implement it, as does
// MemoryBlobs.
type BlobStore interface {
	ReadBlob(key string) ([]byte, error)
	WriteBlob(key string, data []byte) error
}

// MemoryBlobs is a BlobStore held entirely in memory.
type MemoryBlobs struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryBlobs returns an empty in-memory blob store.
func NewMemoryBlobs() *MemoryBlobs {
	return &MemoryBlobs{blobs: make(map[string][]byte)}
}

// ReadBlob returns a copy of the named blob.
func (m *MemoryBlobs) ReadBlob(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %q not found", key)
	}
	return append([]byte(nil), data...), nil
}

// WriteBlob replaces the named blob with a copy of data.
func (m *MemoryBlobs) WriteBlob(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = append([]byte(nil), data...)
	return nil
}
