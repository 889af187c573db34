package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count     int
	expiresAt time.Time
}

// MemoryStore is an in-process AttemptStore used when no Redis address
// is configured, and by tests. Expired counters are dropped lazily on
// the next read or write of the same key.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]*memoryEntry
	threshold int
	window    time.Duration
	now       func() time.Time
}

// NewMemoryStore creates an in-memory AttemptStore.
func NewMemoryStore(threshold int, window time.Duration) *MemoryStore {
	return &MemoryStore{
		entries:   make(map[string]*memoryEntry),
		threshold: threshold,
		window:    window,
		now:       time.Now,
	}
}

func (s *MemoryStore) Check(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.live(key)
	if e == nil {
		return true, nil
	}
	return e.count < s.threshold, nil
}

func (s *MemoryStore) RecordFailure(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.live(key)
	if e == nil {
		e = &memoryEntry{}
		s.entries[key] = e
	}
	e.count++
	e.expiresAt = s.now().Add(s.window)
	return nil
}

func (s *MemoryStore) RecordSuccess(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// live returns the entry for key, dropping it first if expired.
// Caller must hold mu.
func (s *MemoryStore) live(key string) *memoryEntry {
	e, ok := s.entries[key]
	if !ok {
		return nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil
	}
	return e
}
