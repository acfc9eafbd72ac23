// Package viewcache caches computed view sets in Redis. Entries are
// keyed by dataset fingerprint and region, so a hit can only return
// what a fresh pipeline run over the same snapshot would produce; a
// reloaded dataset changes the fingerprint and leaves stale entries
// to expire.
package viewcache

import (
	"context"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Config configures Redis access for the view cache.
type Config struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration
}

// RedisCache stores serialized view sets with a TTL.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg Config) (*RedisCache, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = "127.0.0.1:6379"
	}
	if strings.TrimSpace(cfg.KeyPrefix) == "" {
		cfg.KeyPrefix = "riskmap:views"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis view cache: %w", err)
	}

	return &RedisCache{
		client: client,
		prefix: strings.TrimSpace(cfg.KeyPrefix),
		ttl:    cfg.TTL,
	}, nil
}

// Get returns the cached payload for (fingerprint, region). The
// second return is false on a miss.
func (c *RedisCache) Get(ctx context.Context, fingerprint, region string) ([]byte, bool, error) {
	res, err := c.client.Get(ctx, c.key(fingerprint, region)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached views: %w", err)
	}
	return res, true, nil
}

// Set stores the payload for (fingerprint, region).
func (c *RedisCache) Set(ctx context.Context, fingerprint, region string, payload []byte) error {
	if err := c.client.Set(ctx, c.key(fingerprint, region), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache views: %w", err)
	}
	return nil
}

// Close closes the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(fingerprint, region string) string {
	if region == "" {
		region = "_all"
	}
	return c.prefix + ":" + fingerprint + ":" + region
}
