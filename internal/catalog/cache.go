package catalog

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/metrics"
)

// CacheConfig sizes the catalog cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports cache effectiveness since start or the last Clear
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Pools     int   `json:"pools"`
	PoolItems int   `json:"pool_items"`
}

// catalogCache holds the active pool list and per-pool item lists.
// Slices are cloned on the way in and out so callers cannot alias cached data.
type catalogCache struct {
	pools  *expirable.LRU[string, []domain.Pool]
	items  *expirable.LRU[string, []domain.PoolItem]
	hits   atomic.Int64
	misses atomic.Int64
}

func newCatalogCache(cfg CacheConfig) *catalogCache {
	return &catalogCache{
		pools: expirable.NewLRU[string, []domain.Pool](1, nil, cfg.TTL),
		items: expirable.NewLRU[string, []domain.PoolItem](cfg.Size, nil, cfg.TTL),
	}
}

func (c *catalogCache) getPools() ([]domain.Pool, bool) {
	pools, ok := c.pools.Get(activePoolsKey)
	c.record(CacheKindPools, ok)
	if !ok {
		return nil, false
	}
	return slices.Clone(pools), true
}

func (c *catalogCache) setPools(pools []domain.Pool) {
	c.pools.Add(activePoolsKey, slices.Clone(pools))
}

func (c *catalogCache) getItems(poolID string) ([]domain.PoolItem, bool) {
	items, ok := c.items.Get(poolID)
	c.record(CacheKindPoolItems, ok)
	if !ok {
		return nil, false
	}
	return slices.Clone(items), true
}

func (c *catalogCache) setItems(poolID string, items []domain.PoolItem) {
	c.items.Add(poolID, slices.Clone(items))
}

func (c *catalogCache) record(kind string, hit bool) {
	if hit {
		c.hits.Add(1)
		metrics.CatalogCacheLookups.WithLabelValues(kind, metrics.CacheResultHit).Inc()
		return
	}
	c.misses.Add(1)
	metrics.CatalogCacheLookups.WithLabelValues(kind, metrics.CacheResultMiss).Inc()
}

// Clear removes all entries and resets the counters.
func (c *catalogCache) Clear() {
	c.pools.Purge()
	c.items.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

func (c *catalogCache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Pools:     c.pools.Len(),
		PoolItems: c.items.Len(),
	}
}
