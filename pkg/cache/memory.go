package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process Store used when no Redis address is
// configured. Expired entries are evicted lazily on the next read.
type MemoryStore struct {
	mutex   sync.RWMutex
	entries map[string]memoryEntry

	// now is swappable so expiry behaviour can be tested without sleeping
	now func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mutex.RLock()
	entry, ok := s.entries[key]
	s.mutex.RUnlock()

	if !ok {
		return "", false
	}

	if !s.now().Before(entry.expiresAt) {
		s.mutex.Lock()
		delete(s.entries, key)
		s.mutex.Unlock()

		return "", false
	}

	return entry.value, true
}

func (s *MemoryStore) Set(_ context.Context, key string, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s.mutex.Lock()
	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
	s.mutex.Unlock()
}
