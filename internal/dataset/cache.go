package dataset

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"obesitydash/domain/survey"
	"obesitydash/internal"
	"obesitydash/ports"
)

// Cache wraps a SurveySource and keeps the loaded table for a TTL. A TTL of zero
// re-reads the source on every call; concurrent loads share one read either way.
type Cache struct {
	source ports.SurveySource
	ttl    time.Duration
	now    func() time.Time
	logger *internal.Logger

	group singleflight.Group

	mu       sync.RWMutex
	table    *survey.Table
	loadedAt time.Time
}

// NewCache creates a cache in front of source
func NewCache(source ports.SurveySource, ttl time.Duration, logger *internal.Logger) *Cache {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Cache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
		logger: logger.Component("DatasetCache"),
	}
}

// Describe implements ports.SurveySource
func (c *Cache) Describe() string {
	return c.source.Describe()
}

// LoadTable implements ports.SurveySource
func (c *Cache) LoadTable(ctx context.Context) (*survey.Table, error) {
	if table, ok := c.fresh(); ok {
		return table, nil
	}

	// the flight is shared, so one caller's cancellation must not fail the others
	loadCtx := context.WithoutCancel(ctx)
	v, err, shared := c.group.Do("table", func() (interface{}, error) {
		table, err := c.source.LoadTable(loadCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.table = table
		c.loadedAt = c.now()
		c.mu.Unlock()
		return table, nil
	})
	if err != nil {
		c.logger.Error("loading %s failed: %v", c.source.Describe(), err)
		return nil, err
	}
	if shared {
		c.logger.Trace("shared in-flight load of %s", c.source.Describe())
	}
	return v.(*survey.Table), nil
}

// Invalidate drops the cached table
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.table = nil
	c.mu.Unlock()
}

func (c *Cache) fresh() (*survey.Table, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.table == nil || c.now().Sub(c.loadedAt) >= c.ttl {
		return nil, false
	}
	return c.table, true
}
