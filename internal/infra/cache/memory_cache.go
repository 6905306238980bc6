package cache

import (
	"context"
	"encoding/json"
	"time"

	"cashmemo/internal/domain/service"
	"cashmemo/internal/errors"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const fallbackMaxEntries = 1024

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// memoryCache keeps JSON-encoded values so callers see the same copy
// semantics as with Redis. The LRU bounds the key count and drops entries
// after defaultTTL; a shorter per-call TTL is enforced on read.
type memoryCache struct {
	entries    *expirable.LRU[string, memoryEntry]
	defaultTTL time.Duration
	now        func() time.Time
}

// NewMemoryCache creates a process-local cache holding at most maxEntries keys.
func NewMemoryCache(maxEntries int, defaultTTL time.Duration) service.ReferenceCache {
	if maxEntries <= 0 {
		maxEntries = fallbackMaxEntries
	}

	return &memoryCache{
		entries:    expirable.NewLRU[string, memoryEntry](maxEntries, nil, defaultTTL),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return false, nil
	}
	// Stale entries are left for the LRU to reap; removing here could drop a fresher Set.
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		return false, nil
	}

	if err := json.Unmarshal(entry.raw, dest); err != nil {
		return false, errors.Wrapf(err, "decode cached %s", key)
	}

	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode cached %s", key)
	}

	entry := memoryEntry{raw: raw}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.entries.Add(key, entry)

	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.entries.Remove(key)

	return nil
}
