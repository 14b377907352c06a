package settings

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"selfcare/internal/domain"
)

const cacheKey = "app_settings"

// Cache memoizes the tenant branding fetch. Failed fetches are not cached,
// so a later caller retries naturally.
type Cache struct {
	portal domain.PortalClient
	group  singleflight.Group

	mu    sync.RWMutex
	value domain.AppSettings
	valid bool
}

// New constructs a Cache over the portal client.
func New(portal domain.PortalClient) *Cache {
	return &Cache{portal: portal}
}

// Get returns the cached branding, fetching it once if needed. Concurrent
// first callers are collapsed into a single upstream request.
func (c *Cache) Get(ctx context.Context) (domain.AppSettings, error) {
	c.mu.RLock()
	if c.valid {
		value := c.value
		c.mu.RUnlock()
		return value, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(cacheKey, func() (any, error) {
		fetched, err := c.portal.AppSettings(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.value, c.valid = fetched, true
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return domain.AppSettings{}, err
	}
	return v.(domain.AppSettings), nil
}

// Invalidate drops the cached value so the next Get refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.value = domain.AppSettings{}
	c.mu.Unlock()
}

// Compile-time assertion that Cache implements domain.SettingsSource.
var _ domain.SettingsSource = (*Cache)(nil)
