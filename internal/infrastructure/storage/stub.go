package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	attachmentapp "github.com/rentdesk/backend/internal/application/attachment"
	"github.com/rentdesk/backend/internal/domain/attachment"
)

// Ensure StubObjectStorage implements ObjectStorageService
var _ attachmentapp.ObjectStorageService = (*StubObjectStorage)(nil)

// StubObjectStorage is an in-memory ObjectStorageService for development and
// tests. URLs it hands out are fake and not actually usable for transfers.
type StubObjectStorage struct {
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubObjectStorage creates a stub storage with an empty object set
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// GenerateUploadURL returns a fake upload URL
func (s *StubObjectStorage) GenerateUploadURL(
	_ context.Context,
	storageKey, _ string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	url := fmt.Sprintf("%s/upload/%s?expires=%s", s.BaseURL, storageKey, expiresAt.Format(time.RFC3339))
	return url, expiresAt, nil
}

// GenerateDownloadURL returns a fake download URL
func (s *StubObjectStorage) GenerateDownloadURL(
	_ context.Context,
	storageKey string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	url := fmt.Sprintf("%s/download/%s?expires=%s", s.BaseURL, storageKey, expiresAt.Format(time.RFC3339))
	return url, expiresAt, nil
}

// DeleteObject removes the object from the in-memory set
func (s *StubObjectStorage) DeleteObject(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, storageKey)
	return nil
}

// ObjectExists reports whether the key was put into the stub. Keys that were
// never put report true so flows that presign uploads out of band still work.
func (s *StubObjectStorage) ObjectExists(_ context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.objects) == 0 {
		return true, nil
	}
	_, ok := s.objects[storageKey]
	return ok, nil
}

// Put stores object bytes in memory. Test helper standing in for the client
// side of a presigned upload.
func (s *StubObjectStorage) Put(storageKey string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[storageKey] = data
}

// Get returns the stored object bytes
func (s *StubObjectStorage) Get(storageKey string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[storageKey]
	return data, ok
}

// Ensure StubThumbnailGenerator implements ThumbnailGenerator
var _ attachmentapp.ThumbnailGenerator = (*StubThumbnailGenerator)(nil)

// StubThumbnailGenerator returns the thumbnail key without producing an image
type StubThumbnailGenerator struct{}

// Generate derives the thumbnail key from the original storage key
func (g *StubThumbnailGenerator) Generate(_ context.Context, storageKey string) (string, error) {
	return attachment.ThumbnailKeyFor(storageKey), nil
}
