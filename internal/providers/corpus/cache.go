package corpus

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sandevgo/memberqa/internal/core"
)

// Cache is a read-through cache of the corpus. The first Load fetches from
// upstream; later loads reuse the snapshot until Invalidate is called.
// Known names are derived together with the messages and dropped with them.
type Cache struct {
	fetcher core.Fetcher
	group   singleflight.Group

	mu       sync.RWMutex
	snapshot core.Snapshot
	valid    bool
	version  uint64
}

func NewCache(fetcher core.Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Load returns the cached snapshot or fetches a fresh one. Concurrent
// callers for the same cache version share one fetch; each caller still
// returns as soon as its own ctx is done.
func (c *Cache) Load(ctx context.Context) (core.Snapshot, error) {
	c.mu.RLock()
	snap, valid, version := c.snapshot, c.valid, c.version
	c.mu.RUnlock()
	if valid {
		return snap, nil
	}

	// The shared fetch outlives any single caller; the client timeout bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(fmt.Sprintf("corpus-%d", version), func() (any, error) {
		msgs, err := c.fetcher.Fetch(fetchCtx)
		if err != nil {
			return core.Snapshot{}, err
		}
		snap := core.Snapshot{Messages: msgs, Names: KnownNames(msgs)}
		c.update(snap, version)
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return core.Snapshot{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return core.Snapshot{}, res.Err
		}
		return res.Val.(core.Snapshot), nil
	}
}

// Invalidate marks the cache stale; the next Load refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
	c.snapshot = core.Snapshot{}
	c.version++
}

// update stores snap unless the cache was invalidated while it was fetched.
func (c *Cache) update(snap core.Snapshot, version uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version != version {
		return
	}
	c.snapshot = snap
	c.valid = true
}

// KnownNames returns the sorted distinct non-empty author names.
func KnownNames(msgs []core.Message) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, m := range msgs {
		if m.UserName == "" {
			continue
		}
		if _, ok := seen[m.UserName]; ok {
			continue
		}
		seen[m.UserName] = struct{}{}
		names = append(names, m.UserName)
	}
	sort.Strings(names)
	return names
}
