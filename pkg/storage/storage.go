package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ObjectStorage is the outbound object-storage port. The core hands over
// raw bytes and gets back a retrievable key; it never deals with the
// storage backend directly. Implementations are selected at startup by
// configuration.
type ObjectStorage interface {
	// Store writes the object under a generated key within the given
	// prefix and returns that key.
	Store(prefix, filename string, content []byte, contentType string) (string, error)
	// URL returns a retrievable URL for a previously stored key.
	URL(key string) string
}

// FileStorage is an ObjectStorage backed by a local directory. Keys map to
// files with path separators flattened, mirroring how a bucket would hold
// them.
type FileStorage struct {
	baseDir string
	bucket  string
}

// NewFileStorage creates a FileStorage rooted at baseDir, creating the
// directory if needed.
func NewFileStorage(baseDir, bucket string) (*FileStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", baseDir, err)
	}
	return &FileStorage{baseDir: baseDir, bucket: bucket}, nil
}

// Store writes the object to disk and returns its key.
func (s *FileStorage) Store(prefix, filename string, content []byte, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s-%s", prefix, uuid.New().String(), filename)
	path := filepath.Join(s.baseDir, strings.ReplaceAll(key, "/", "_"))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to store object %s: %w", key, err)
	}
	return key, nil
}

// URL returns the bucket-style URL for a stored key.
func (s *FileStorage) URL(key string) string {
	return fmt.Sprintf("https://%s.storage.local/%s", s.bucket, key)
}

// MemoryStorage is an in-memory ObjectStorage for tests and local runs
// without a disk-backed store. Safe for concurrent use.
type MemoryStorage struct {
	bucket  string
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage(bucket string) *MemoryStorage {
	return &MemoryStorage{
		bucket:  bucket,
		objects: make(map[string][]byte),
	}
}

// Store keeps the object in memory and returns its key.
func (s *MemoryStorage) Store(prefix, filename string, content []byte, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s-%s", prefix, uuid.New().String(), filename)
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(content))
	copy(buf, content)
	s.objects[key] = buf
	return key, nil
}

// URL returns the bucket-style URL for a stored key.
func (s *MemoryStorage) URL(key string) string {
	return fmt.Sprintf("https://%s.storage.local/%s", s.bucket, key)
}

// Get returns a stored object, reporting whether the key exists. Used by
// tests to verify uploads.
func (s *MemoryStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.objects[key]
	return content, ok
}
