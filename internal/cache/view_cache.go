package cache

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ViewCache invalidates cached representations of a view by its logical
// path. Callers do not consult any state beyond the error.
type ViewCache interface {
	Invalidate(ctx context.Context, path string) error
}

// Options selects the cache backend. An empty Addr means in-memory.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// New returns a Redis-backed view cache when an address is configured,
// falling back to the in-memory cache for single-instance deployments.
func New(opts Options, logger *zap.Logger) ViewCache {
	if opts.Addr == "" {
		logger.Info("view cache: using in-memory backend")
		return NewMemoryViewCache()
	}
	logger.Info("view cache: using redis backend", zap.String("addr", opts.Addr))
	return NewRedisViewCache(opts)
}

const viewKeyPrefix = "view:"

// RedisViewCache drops the rendered-view key so the next read rebuilds it.
type RedisViewCache struct {
	client *redis.Client
}

func NewRedisViewCache(opts Options) *RedisViewCache {
	return &RedisViewCache{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
	}
}

func (c *RedisViewCache) Invalidate(ctx context.Context, path string) error {
	return c.client.Del(ctx, viewKeyPrefix+path).Err()
}

// MemoryViewCache tracks stale view paths in-process. State is not
// shared across instances.
type MemoryViewCache struct {
	mu    sync.Mutex
	stale map[string]struct{}
}

func NewMemoryViewCache() *MemoryViewCache {
	return &MemoryViewCache{stale: make(map[string]struct{})}
}

func (c *MemoryViewCache) Invalidate(ctx context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stale[path] = struct{}{}
	return nil
}

// Stale reports whether a path has been invalidated since the last Reset.
func (c *MemoryViewCache) Stale(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.stale[path]
	return ok
}

// Reset clears recorded invalidations, typically after a view rebuild.
func (c *MemoryViewCache) Reset(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.stale, path)
}
