package gsheets

import (
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gsheets/gsheetsclient"
)

type cachedWorksheet struct {
	worksheet *gsheetsclient.Worksheet
	expiresAt time.Time
}

// worksheetCache guarda as abas lidas por um tempo de validade fixo
type worksheetCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]cachedWorksheet
}

func newWorksheetCache(ttl time.Duration) *worksheetCache {
	return &worksheetCache{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]cachedWorksheet),
	}
}

func (c *worksheetCache) get(name string) (*gsheetsclient.Worksheet, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[name]
	if !ok {
		return nil, false
	}
	if c.now().After(item.expiresAt) {
		delete(c.items, name)
		return nil, false
	}
	return item.worksheet, true
}

func (c *worksheetCache) put(name string, worksheet *gsheetsclient.Worksheet) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[name] = cachedWorksheet{
		worksheet: worksheet,
		expiresAt: c.now().Add(c.ttl),
	}
}
