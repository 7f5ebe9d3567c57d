package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is missing or expired.
var ErrCacheMiss = errors.New("cache miss")

type DocumentCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, expiration time.Duration) error
	Close() error
}

const (
	DefaultMaxEntries = 1024
	sweepInterval     = time.Minute
)

type localEntry struct {
	expires time.Time
	data    []byte
}

// Cache keeps documents in memory and, when a redis client is configured,
// shares them with other instances through redis.
type Cache struct {
	mu       sync.RWMutex
	clock    clock.Clock
	client   *redis.Client
	memCache map[string]localEntry
	swept    time.Time
	// LocalTTL caps how long an entry read from redis lives in memory.
	LocalTTL time.Duration
	// MaxEntries bounds the memory cache, the entry closest to expiry is
	// evicted first.
	MaxEntries int
}

func NewMemoryCache(clk clock.Clock) *Cache {
	if clk == nil {
		clk = clock.New()
	}
	return &Cache{
		clock:    clk,
		memCache:   make(map[string]localEntry),
		swept:      clk.Now(),
		LocalTTL:   time.Minute,
		MaxEntries: DefaultMaxEntries,
	}
}

func NewCache(addr, password string, db int) *Cache {
	c := NewMemoryCache(nil)
	c.client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return c
}

// NewCacheWithClient uses an existing redis client, e.g. one built from a URL.
func NewCacheWithClient(client *redis.Client, clk clock.Clock) *Cache {
	c := NewMemoryCache(clk)
	c.client = client
	return c
}

func (c *Cache) getLocal(key string) ([]byte, bool) {
	c.mu.RLock()
	local, found := c.memCache[key]
	c.mu.RUnlock()
	if !found {
		return nil, false
	}
	if c.clock.Now().Before(local.expires) {
		return local.data, true
	}
	c.mu.Lock()
	delete(c.memCache, key)
	c.mu.Unlock()
	return nil, false
}

func (c *Cache) setLocal(key string, data []byte, expiration time.Duration) {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.memCache[key]; !found {
		if now.Sub(c.swept) >= sweepInterval || c.full() {
			c.sweepLocked(now)
		}
		for c.full() {
			c.evictLocked()
		}
	}
	c.memCache[key] = localEntry{expires: now.Add(expiration), data: data}
}

func (c *Cache) full() bool {
	return c.MaxEntries > 0 && len(c.memCache) >= c.MaxEntries
}

// sweepLocked drops expired entries, mu must be held.
func (c *Cache) sweepLocked(now time.Time) {
	for key, entry := range c.memCache {
		if !now.Before(entry.expires) {
			delete(c.memCache, key)
		}
	}
	c.swept = now
}

func (c *Cache) evictLocked() {
	var oldest string
	var expires time.Time
	for key, entry := range c.memCache {
		if oldest == "" || entry.expires.Before(expires) {
			oldest, expires = key, entry.expires
		}
	}
	delete(c.memCache, oldest)
}

// Len returns the number of entries held in memory, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.memCache)
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	if data, ok := c.getLocal(key); ok {
		return data, nil
	}
	if c.client == nil {
		return nil, ErrCacheMiss
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	c.setLocal(key, data, c.LocalTTL)
	return data, nil
}

func (c *Cache) Set(ctx context.Context, key string, data []byte, expiration time.Duration) error {
	c.setLocal(key, data, expiration)
	if c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// CacheHelper renders a document on a miss and stores it. Cache failures
// never fail the request, the document is rendered directly instead.
type CacheHelper struct {
	Cache      DocumentCache
	Expiration time.Duration
	OnError    func(key string, err error)
}

func NewCacheHelper(cache DocumentCache, expiration time.Duration) *CacheHelper {
	return &CacheHelper{Cache: cache, Expiration: expiration}
}

func (h *CacheHelper) report(key string, err error) {
	if h.OnError != nil {
		h.OnError(key, err)
	}
}

// Handle returns the cached document for key, rendering it with fn on a miss.
// hit reports whether the document came from the cache.
func (h *CacheHelper) Handle(ctx context.Context, key string, fn func() ([]byte, error)) (data []byte, hit bool, err error) {
	if h.Cache != nil {
		data, err := h.Cache.Get(ctx, key)
		if err == nil {
			return data, true, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			h.report(key, err)
		}
	}
	data, err = fn()
	if err != nil {
		return nil, false, err
	}
	if h.Cache != nil {
		if err := h.Cache.Set(ctx, key, data, h.Expiration); err != nil {
			h.report(key, err)
		}
	}
	return data, false, nil
}
