package dashboard

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const chartKeyPrefix = "dashboard:chart"

// ChartKey scopes a chart name to the dataset it was rendered from.
func ChartKey(datasetID uuid.UUID, parts ...string) string {
	return strings.Join(append([]string{chartKeyPrefix, datasetID.String()}, parts...), ":")
}

// CacheObserver receives one call per chart lookup with "hit", "miss" or
// "error".
type CacheObserver interface {
	ChartCacheResult(result string)
}

// ChartCache stores rendered SVG charts. It uses Redis when a client is
// configured and an in-process TTL map otherwise.
type ChartCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
	local  *localCache
	group  singleflight.Group
	obs    CacheObserver
}

// NewChartCache instantiates the cache. client may be nil.
func NewChartCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ChartCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ChartCache{
		client: client,
		ttl:    ttl,
		logger: logger,
		local:  newLocalCache(ttl),
	}
}

// SetObserver attaches o to the cache. It must be called before the first
// Fetch.
func (c *ChartCache) SetObserver(o CacheObserver) {
	if c != nil {
		c.obs = o
	}
}

// Fetch returns the cached chart for key or renders, stores and returns it.
// Concurrent misses for the same key share a single render.
func (c *ChartCache) Fetch(ctx context.Context, key string, render func(context.Context) (template.HTML, error)) (template.HTML, error) {
	if render == nil {
		return "", errors.New("dashboard: chart renderer required")
	}
	if c == nil {
		return render(ctx)
	}
	if chart, ok := c.get(ctx, key); ok {
		c.observe("hit")
		return chart, nil
	}
	c.observe("miss")

	resultChan := c.group.DoChan(key, func() (interface{}, error) {
		chart, err := render(ctx)
		if err != nil {
			return nil, err
		}
		// Stored for every waiter, even once the first caller has gone.
		c.set(context.WithoutCancel(ctx), key, chart)
		return chart, nil
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			c.observe("error")
			return "", res.Err
		}
		return res.Val.(template.HTML), nil
	}
}

func (c *ChartCache) get(ctx context.Context, key string) (template.HTML, bool) {
	if c.client == nil {
		return c.local.Get(key)
	}
	payload, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return template.HTML(payload), true
	}
	if !errors.Is(err, redis.Nil) {
		c.warn("chart cache get", key, err)
	}
	return "", false
}

func (c *ChartCache) set(ctx context.Context, key string, chart template.HTML) {
	if c.client == nil {
		c.local.Set(key, chart)
		return
	}
	if err := c.client.Set(ctx, key, string(chart), c.ttl).Err(); err != nil {
		c.warn("chart cache set", key, err)
	}
}

func (c *ChartCache) observe(result string) {
	if c.obs != nil {
		c.obs.ChartCacheResult(result)
	}
}

func (c *ChartCache) warn(msg, key string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, slog.String("key", key), slog.Any("error", err))
	}
}

type cacheItem struct {
	value   template.HTML
	expires time.Time
}

type localCache struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]cacheItem
	now   func() time.Time
}

func newLocalCache(ttl time.Duration) *localCache {
	return &localCache{ttl: ttl, items: make(map[string]cacheItem), now: time.Now}
}

func (c *localCache) Get(key string) (template.HTML, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if c.now().After(item.expires) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return "", false
	}
	return item.value, true
}

func (c *localCache) Set(key string, value template.HTML) {
	c.mu.Lock()
	c.items[key] = cacheItem{value: value, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
