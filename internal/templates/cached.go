package templates

import (
	"context"
	"fmt"
	"sync"

	"github.com/sudhanva/roadmap-engine/internal/types"
)

// CachedStore wraps a Store with an in-memory cache keyed by dimension/value.
// Template content is read-only, so cached entries never expire; Invalidate
// exists for content redeploys. Failed loads are not cached.
type CachedStore struct {
	inner Store

	mu    sync.RWMutex
	cache map[string]types.Template
}

// NewCachedStore wraps the given store with caching.
func NewCachedStore(inner Store) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: make(map[string]types.Template),
	}
}

// Load returns the cached template when present, otherwise delegates to the
// wrapped store and caches the result.
func (s *CachedStore) Load(ctx context.Context, dimension Dimension, value string) (types.Template, error) {
	key := cacheKey(dimension, value)

	s.mu.RLock()
	tpl, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	tpl, err := s.inner.Load(ctx, dimension, value)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = tpl
	s.mu.Unlock()

	return tpl, nil
}

// Invalidate drops a single cached entry, forcing a reload on next access.
func (s *CachedStore) Invalidate(dimension Dimension, value string) {
	s.mu.Lock()
	delete(s.cache, cacheKey(dimension, value))
	s.mu.Unlock()
}

func cacheKey(dimension Dimension, value string) string {
	return fmt.Sprintf("%s/%s", dimension, value)
}
