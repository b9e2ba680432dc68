// Package cache provides the memoization layer for derived statement views.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// StatementCache memoizes derived statement views per
// (businessID, reportKind, params) with a bounded revalidation window.
// Invalidation is tag-based: every business has a generation counter baked
// into its keys, so bumping it on a successful journal post makes all of that
// business's cached views unreachable at once. Slightly stale reads between
// a write and the next query are acceptable; statements are advisory.
type StatementCache struct {
	lru *expirable.LRU[string, any]

	mu   sync.RWMutex
	gens map[string]uint64
}

// New creates a statement cache holding at most size entries, each valid for
// at most ttl after being set.
func New(size int, ttl time.Duration) *StatementCache {
	return &StatementCache{
		lru:  expirable.NewLRU[string, any](size, nil, ttl),
		gens: make(map[string]uint64),
	}
}

func (c *StatementCache) generation(businessID string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gens[businessID]
}

func (c *StatementCache) key(businessID, kind, params string) string {
	return fmt.Sprintf("%s:%d:%s:%s", businessID, c.generation(businessID), kind, params)
}

// Get returns the cached value for the given view, if still valid.
func (c *StatementCache) Get(businessID, kind, params string) (any, bool) {
	return c.lru.Get(c.key(businessID, kind, params))
}

// Set stores a freshly derived view.
func (c *StatementCache) Set(businessID, kind, params string, value any) {
	c.lru.Add(c.key(businessID, kind, params), value)
}

// Invalidate drops every cached view for a business by advancing its
// generation. Stale entries age out of the LRU on their own.
func (c *StatementCache) Invalidate(businessID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[businessID]++
}
