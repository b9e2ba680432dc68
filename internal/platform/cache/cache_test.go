package cache_test

import (
	"testing"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/platform/cache"
	"github.com/stretchr/testify/assert"
)

func TestStatementCache_SetGet(t *testing.T) {
	c := cache.New(16, time.Minute)

	_, ok := c.Get("biz-1", "balance-sheet", "2025-01-31")
	assert.False(t, ok, "empty cache should miss")

	c.Set("biz-1", "balance-sheet", "2025-01-31", 42)

	got, ok := c.Get("biz-1", "balance-sheet", "2025-01-31")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	// Different params are different views
	_, ok = c.Get("biz-1", "balance-sheet", "2025-02-28")
	assert.False(t, ok)
}

func TestStatementCache_InvalidateIsPerBusiness(t *testing.T) {
	c := cache.New(16, time.Minute)

	c.Set("biz-1", "income-statement", "2025-01", "stale")
	c.Set("biz-2", "income-statement", "2025-01", "fresh")

	c.Invalidate("biz-1")

	_, ok := c.Get("biz-1", "income-statement", "2025-01")
	assert.False(t, ok, "invalidated business's views must miss")

	got, ok := c.Get("biz-2", "income-statement", "2025-01")
	assert.True(t, ok, "other businesses' views survive")
	assert.Equal(t, "fresh", got)
}

func TestStatementCache_TTLExpiry(t *testing.T) {
	c := cache.New(16, 10*time.Millisecond)

	c.Set("biz-1", "cashflow", "2025-01", 1)
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("biz-1", "cashflow", "2025-01")
	assert.False(t, ok, "entries past the revalidation window must miss")
}
