package cache

import (
	"sync"
	"time"
)

const (
	defaultMemoryMaxEntries = 100
	defaultMemoryTTL        = 5 * time.Minute
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache é a camada L1: um mapa limitado com TTL fixo, local ao
// processo. Quando cheio, a entrada mais próxima de expirar é descartada.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	maxEntries int
	ttl        time.Duration

	hits   int64
	misses int64

	now func() time.Time
}

func NewMemoryCache(maxEntries int, ttl time.Duration) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = defaultMemoryMaxEntries
	}
	if ttl <= 0 {
		ttl = defaultMemoryTTL
	}

	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (c *MemoryCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		if ok {
			delete(c.entries, key)
		}
		c.misses++
		return nil, false
	}

	c.hits++
	return entry.value, true
}

func (c *MemoryCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}

	c.entries[key] = memoryEntry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// evictLocked remove expirados e, se ainda cheio, a entrada mais antiga
func (c *MemoryCache) evictLocked() {
	now := c.now()

	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	if len(c.entries) < c.maxEntries {
		return
	}

	var oldestKey string
	var oldestExpiry time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.expiresAt.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expiresAt
		}
	}
	delete(c.entries, oldestKey)
}

func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeletePattern remove todas as chaves que casam com o padrão e retorna a
// contagem removida
func (c *MemoryCache) DeletePattern(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if MatchPattern(key, pattern) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *MemoryCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
}

func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryCache) Counters() (hits, misses int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
