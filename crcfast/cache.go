package crcfast

import "sync"

// keyCacheEntry is the cache key: folding constants depend only on
// width, poly and reflection mode (I3).
type keyCacheEntry struct {
	width     Width
	poly      uint64
	reflected bool
}

// KeyCache memoizes GenerateKeys results behind a read-mostly lock:
// lookups that hit take only an RLock, and generation for a miss
// happens outside any lock so concurrent misses for different
// parameters never serialize on each other. A duplicate generation
// racing the cache insert is harmless — GenerateKeys is pure, so two
// goroutines computing the same entry just agree and the loser's
// result is discarded.
type KeyCache struct {
	mu sync.RWMutex
	m  map[keyCacheEntry]KeyStorage
}

func newKeyCache() *KeyCache {
	return &KeyCache{m: make(map[keyCacheEntry]KeyStorage)}
}

// Get returns the folding constants for (width, poly, reflected),
// generating and caching them on first use.
func (c *KeyCache) Get(width Width, poly uint64, reflected bool) KeyStorage {
	key := keyCacheEntry{width: width, poly: poly, reflected: reflected}

	c.mu.RLock()
	ks, ok := c.m[key]
	c.mu.RUnlock()
	if ok {
		return ks
	}

	ks = GenerateKeys(width, poly, reflected)

	c.mu.Lock()
	c.m[key] = ks
	c.mu.Unlock()
	return ks
}

// globalKeyCache backs Lookup's catalogue and every call to New.
var globalKeyCache = newKeyCache()
