package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goalside/sportsdata/internal/platform/resilience"
)

// DefaultTTL matches the refresh window the media frontend expects for
// provider-backed data.
const DefaultTTL = 5 * time.Minute

// entry is immutable once stored; a refresh replaces it wholesale so
// concurrent readers never observe a partially written value.
type entry struct {
	value    any
	storedAt time.Time
}

// Store is a keyed TTL memoizer for provider fetches. Loader failures are
// never stored: a failed refresh leaves the key untouched and the error
// propagates to the caller.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	flight  resilience.SingleFlight
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if now.Sub(e.storedAt) >= s.ttl {
		s.mu.Lock()
		// Re-check: a refresh may have landed between the unlock and here.
		if current, still := s.entries[key]; still && current.storedAt.Equal(e.storedAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:    value,
		storedAt: s.now(),
	}
	s.mu.Unlock()
}

// Delete removes one entry.
func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// DeleteAll clears the whole cache.
func (s *Store) DeleteAll(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

// DeletePrefix removes every entry whose key starts with prefix, so one
// league's keys can be invalidated together.
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

// Len reports the live entry count (expired entries included until read).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value for key while it is younger than the
// TTL, otherwise runs loader and stores its result on success only.
// Concurrent misses for the same key are collapsed into one loader call.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Lookup is the typed front of Store.GetOrLoad.
func Lookup[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	value, err := s.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache key %q holds %T, not %T", key, value, zero)
	}
	return typed, nil
}
