package stats

import (
	"sync"

	"github.com/trezcool/darasa/core/record"
)

type cacheKey struct {
	scope   string
	version string
}

// Cache memoizes aggregators by (scope, snapshot version) so repeated renders
// of the same view do not re-walk all four collections. A refreshed snapshot
// carries a new version key and naturally misses.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]*Aggregator
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*Aggregator)}
}

// For returns the memoized aggregator for the given view, building it on a miss.
func (c *Cache) For(view record.View) *Aggregator {
	key := cacheKey{scope: view.ScopeKey, version: view.Version}

	c.mu.Lock()
	defer c.mu.Unlock()
	if agg, ok := c.entries[key]; ok {
		return agg
	}
	agg := NewAggregator(view)
	c.entries[key] = agg
	return agg
}

// Evict drops all entries for snapshot versions other than the given one,
// keeping the cache from growing across refreshes.
func (c *Cache) Evict(keepVersion string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.version != keepVersion {
			delete(c.entries, key)
		}
	}
}
