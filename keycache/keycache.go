// Package keycache keeps expanded AES-128 key schedules around for callers that encrypt many blocks under few keys.
package keycache

import (
	"sync"
	"sync/atomic"

	"github.com/Concord1/AES-128/aes128"
	"github.com/Concord1/AES-128/types"
	"github.com/Concord1/AES-128/utils"
	"github.com/floatdrop/lru"
)

const DefaultSize = 64

// Cache Bounded LRU of expanded keys. Safe for concurrent use.
type Cache struct {
	lock  sync.Mutex
	cache *lru.LRU[types.Key, *aes128.Cipher]

	hits   atomic.Uint64
	misses atomic.Uint64
}

func New(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	return &Cache{
		cache: lru.New[types.Key, *aes128.Cipher](size),
	}
}

// Get Returns the cipher for key, expanding and storing it on a miss
func (c *Cache) Get(key types.Key) *aes128.Cipher {
	c.lock.Lock()
	defer c.lock.Unlock()

	if v := c.cache.Get(key); v != nil {
		c.hits.Add(1)
		return *v
	}
	c.misses.Add(1)

	cipher := aes128.New(&key)
	if evicted := c.cache.Set(key, cipher); evicted != nil && utils.IsLogLevelDebug() {
		utils.Debugf("KeyCache", "evicted key schedule, size = %d", c.cache.Len())
	}
	return cipher
}

func (c *Cache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.cache.Len()
}

func (c *Cache) Hits() uint64 {
	return c.hits.Load()
}

func (c *Cache) Misses() uint64 {
	return c.misses.Load()
}
