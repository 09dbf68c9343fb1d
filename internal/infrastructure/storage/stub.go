package storage

import (
	"context"
	"sync"
	"time"
)

// Ensure StubObjectStorage implements ObjectStorage
var _ ObjectStorage = (*StubObjectStorage)(nil)

// StubObjectStorage is an in-memory ObjectStorage for development and tests.
// Uploads are recorded and download URLs are deterministic, derived from the
// key alone.
type StubObjectStorage struct {
	// BaseURL is the base URL for generated download URLs.
	// Defaults to "https://storage.example.com" if not set.
	BaseURL string

	// UploadErr and PresignErr, when set, are returned by the respective
	// operations. Tests use these to simulate backend failures.
	UploadErr  error
	PresignErr error

	mu      sync.Mutex
	objects map[string][]byte
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Upload records the object in memory
func (s *StubObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return NewStorageError(ErrCodeInvalidKey, "storage key is required", nil)
	}
	if s.UploadErr != nil {
		return s.UploadErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[key] = stored
	return nil
}

// PresignDownload returns a deterministic URL for the key
func (s *StubObjectStorage) PresignDownload(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, NewStorageError(ErrCodeInvalidKey, "storage key is required", nil)
	}
	if s.PresignErr != nil {
		return "", time.Time{}, s.PresignErr
	}

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/" + key, expiresAt, nil
}

// Object returns the stored bytes for a key, if any
func (s *StubObjectStorage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

// Len returns the number of stored objects
func (s *StubObjectStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
