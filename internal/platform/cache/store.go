package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openliga/liga-ranking/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-process TTL cache with singleflight-protected loads.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	flight  resilience.SingleFlight
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := time.Now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(now) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key, loading it at most once across
// concurrent callers on a miss.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (any, error)) (any, error) {
	if key == "" {
		return nil, fmt.Errorf("cache key is required")
	}
	if v, ok := s.Get(ctx, key); ok {
		return v, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, v)
		return v, nil
	})
	return v, err
}

// Invalidate drops keys after writes so readers observe fresh rows.
func (s *Store) Invalidate(_ context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

// InvalidatePrefix drops every key starting with prefix.
func (s *Store) InvalidatePrefix(_ context.Context, prefix string) {
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
