package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/guardshell/riskscan/internal/domain"
)

// ErrNotFound is returned when a settings key has never been written.
var ErrNotFound = fmt.Errorf("not found")

// MemoryStore is the default, session-scoped implementation of
// ports.Store. History lives only as long as the process.
type MemoryStore struct {
	mu       sync.RWMutex
	records  []domain.ScanRecord
	settings map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{settings: make(map[string]string)}
}

// Append adds a record to the history. Newest records come first in List.
func (s *MemoryStore) Append(_ context.Context, record *domain.ScanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	return nil
}

// List returns up to limit records, newest first. limit <= 0 means all.
func (s *MemoryStore) List(_ context.Context, limit int) ([]domain.ScanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.records)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]domain.ScanRecord, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

// Clear discards the session's history.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}

// Get returns a settings value or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.settings[key]
	if !ok {
		return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
	}
	return value, nil
}

// Set writes a settings value.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = value
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
