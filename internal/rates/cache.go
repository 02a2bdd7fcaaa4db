package rates

import (
	"sync"
	"time"

	"converterservice/internal/provider"
)

// tableCache is a process-local store of fetched rate tables keyed by
// (base currency, timestamp bucket). Entries are only ever replaced whole.
// Expired entries are kept so a failed refresh can still serve them.
type tableCache struct {
	mu     sync.RWMutex
	tables map[string]*provider.RateTable
	ttl    time.Duration
	now    func() time.Time
}

func newTableCache(ttl time.Duration) *tableCache {
	return &tableCache{
		tables: make(map[string]*provider.RateTable),
		ttl:    ttl,
		now:    time.Now,
	}
}

// lookup returns the cached table for the key. fresh is false when the entry
// is absent or older than the TTL; an expired table is still returned so
// callers can fall back to it.
func (c *tableCache) lookup(key string) (table *provider.RateTable, fresh bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table, ok := c.tables[key]
	if !ok {
		return nil, false
	}
	return table, c.now().Sub(table.FetchedAt) <= c.ttl
}

func (c *tableCache) store(key string, table *provider.RateTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tables[key] = table
}
