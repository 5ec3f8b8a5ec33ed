package redis

import (
	"context"
	"time"

	"github.com/muhammadchandra19/quantstream/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Client defines the subset of Redis operations the service uses.
type Client interface {
	Ping(ctx context.Context) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Close() error
}

type client struct {
	config Config
	rdb    *redis.Client
}

var _ Client = (*client)(nil)

// NewClient creates a new Redis client and verifies the connection.
func NewClient(ctx context.Context, config Config) (Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        config.Addr,
		Username:    config.Username,
		Password:    config.Password,
		DB:          config.DB,
		DialTimeout: config.ConnectTimeout,
		MaxRetries:  config.MaxRetries,
		PoolSize:    config.PoolSize,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.NewErrorDetails(err.Error(), errors.RedisConnectionError, "addr")
	}

	return &client{
		config: config,
		rdb:    rdb,
	}, nil
}

// Ping verifies the connection is alive.
func (c *client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetails(err.Error(), errors.RedisConnectionError, "ping")
	}
	return nil
}

// Set stores a value under the prefixed key. A zero ttl falls back to the
// configured default TTL.
func (c *client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.config.DefaultTTL
	}
	if err := c.rdb.Set(ctx, c.config.PrefixKey+key, value, ttl).Err(); err != nil {
		return errors.NewErrorDetails(err.Error(), errors.RedisSetError, key)
	}
	return nil
}

// Get fetches the value stored under the prefixed key.
func (c *client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, c.config.PrefixKey+key).Result()
	if err != nil {
		return "", errors.NewErrorDetails(err.Error(), errors.RedisGetError, key)
	}
	return val, nil
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.rdb.Close()
}
