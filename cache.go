package layersmith

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	st "github.com/unkn0wn-root/layersmith/storage"
)

// Cache is the two-tier composite store: a bounded strict-LRU memory
// tier in front of the durable backend, keyed by derived cache keys.
//
// The mutex guards only the LRU; backend I/O always happens outside the
// lock. Concurrent misses on one key may both reach the backend - an
// accepted at-least-once write, since the same key always carries the
// same bytes.
type Cache struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[string, []byte]
	capacity int

	backend st.Backend
	log     Logger
	hooks   Hooks
}

// CacheStats describes the memory tier.
type CacheStats struct {
	Entries  int
	Capacity int
}

// CacheOptions tune a Cache. Only Backend is required.
type CacheOptions struct {
	// Required
	Backend st.Backend

	Capacity int    // memory tier entries; 0 => 1000
	Logger   Logger // if nil, NopLogger
	Hooks    Hooks  // if nil, NopHooks
}

// NewCache builds a two-tier cache over any Backend, independently
// usable from the renderer.
func NewCache(opts CacheOptions) (*Cache, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("layersmith: cache backend is required")
	}
	capacity := coalesce(opts.Capacity, 1000)
	if capacity < 0 {
		return nil, fmt.Errorf("layersmith: cache capacity must be positive, got %d", capacity)
	}

	lru, err := simplelru.NewLRU[string, []byte](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("layersmith: build lru: %w", err)
	}

	return &Cache{
		lru:      lru,
		capacity: capacity,
		backend:  opts.Backend,
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:    coalesce[Hooks](opts.Hooks, NopHooks{}),
	}, nil
}

// Get checks the memory tier first; on a memory miss it queries the
// backend and promotes a hit into memory (evicting the least-recently
// used entry at capacity). A miss in both tiers returns (nil, false,
// nil) - absence is a valid, non-error outcome.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	data, ok := c.lru.Get(key)
	c.mu.Unlock()
	if ok {
		c.hooks.MemoryHit(key)
		c.log.Debug("memory cache hit", Fields{"key": key})
		return data, true, nil
	}

	data, ok, err := c.backend.FetchCached(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		c.hooks.Miss(key)
		c.log.Debug("cache miss", Fields{"key": key})
		return nil, false, nil
	}

	c.mu.Lock()
	c.lru.Add(key, data)
	c.mu.Unlock()

	c.hooks.BackendHit(key)
	c.log.Debug("backend cache hit", Fields{"key": key, "bytes": len(data)})
	return data, true, nil
}

// Put writes to the backend first; the memory tier is only updated on
// backend success, so memory never claims a composite the durable tier
// does not hold.
func (c *Cache) Put(ctx context.Context, key string, data []byte) error {
	if err := c.backend.SaveToCache(ctx, key, data); err != nil {
		return err
	}

	c.mu.Lock()
	c.lru.Add(key, data)
	c.mu.Unlock()

	c.hooks.Stored(key, len(data))
	c.log.Info("cached composite", Fields{"key": key, "bytes": len(data)})
	return nil
}

// Stats reports the memory tier. No side effects.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Entries: c.lru.Len(), Capacity: c.capacity}
}

// Clear drops the memory tier; the durable tier is untouched.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.lru.Purge()
	c.mu.Unlock()
}
