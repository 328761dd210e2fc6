package kvstore

import (
	"context"
	"sync"
	"time"

	"ticket-monarch/internal/infra"
	"ticket-monarch/internal/pkg/clock"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore keeps records in process memory. A zero ttl disables expiry.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]memoryEntry
	ttl   time.Duration
	clock clock.Clock
}

func NewMemoryStore(clk clock.Clock, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data:  make(map[string]memoryEntry),
		ttl:   ttl,
		clock: clk,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.data[key]
	s.mu.RUnlock()

	if !ok || s.expired(entry) {
		return nil, infra.WrapStoreErr(nil, infra.KindNotFound, "key not found", nil)
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	entry := memoryEntry{value: stored}
	if s.ttl > 0 {
		entry.expiresAt = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.data[key] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Batch applies the writes and deletes under one lock.
func (s *MemoryStore) Batch(_ context.Context, set map[string][]byte, del []string) error {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range set {
		stored := make([]byte, len(value))
		copy(stored, value)
		s.data[key] = memoryEntry{value: stored, expiresAt: expiresAt}
	}
	for _, key := range del {
		delete(s.data, key)
	}
	return nil
}

// PurgeExpired evicts entries past their expiry and reports how many were dropped.
func (s *MemoryStore) PurgeExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for key, entry := range s.data {
		if s.expired(entry) {
			delete(s.data, key)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.clock.Now().Before(e.expiresAt)
}
