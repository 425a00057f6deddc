package availability

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned on a cache miss.
var ErrNotFound = errors.New("availability: cache entry not found")

// Cache stores computed display labels. Caching never changes results,
// it only skips recomputation; implementations may drop entries at any
// time.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RedisCache keeps labels in Redis with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps a redis client. A non-positive ttl defaults to
// five minutes.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

type memoryEntry struct {
	value   string
	expires time.Time
}

// MemoryCache is an in-process fallback with the same TTL semantics.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MemoryCache{entries: make(map[string]memoryEntry), ttl: ttl}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	if time.Now().After(e.expires) {
		delete(c.entries, key)
		return "", ErrNotFound
	}
	return e.value, nil
}

func (c *MemoryCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{value: value, expires: time.Now().Add(c.ttl)}
	return nil
}

// FailoverCache reads from a primary and falls back to a secondary
// when the primary errors (not on plain misses). Writes go to both;
// write failures are logged, never surfaced.
type FailoverCache struct {
	primary  Cache
	fallback Cache
	logger   *zerolog.Logger
}

func NewFailoverCache(primary, fallback Cache, logger *zerolog.Logger) *FailoverCache {
	return &FailoverCache{primary: primary, fallback: fallback, logger: logger}
}

func (c *FailoverCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.primary.Get(ctx, key)
	if err == nil {
		return val, nil
	}
	if errors.Is(err, ErrNotFound) {
		return "", ErrNotFound
	}

	c.logger.Warn().Err(err).Msg("primary cache failed, using fallback")
	return c.fallback.Get(ctx, key)
}

func (c *FailoverCache) Set(ctx context.Context, key, value string) error {
	if err := c.primary.Set(ctx, key, value); err != nil {
		c.logger.Warn().Err(err).Msg("primary cache write failed")
	}
	if err := c.fallback.Set(ctx, key, value); err != nil {
		c.logger.Warn().Err(err).Msg("fallback cache write failed")
	}
	return nil
}
