package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	tperrors "github.com/matzehuels/termplot/pkg/errors"
)

// redisPrefix namespaces every key this package writes.
const redisPrefix = "termplot:"

// RedisCache keeps entries in Redis so several servers share one render
// cache. Redis enforces the ttl.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to the server at url (redis://[user:pass@]host:port/db)
// and checks it with a ping.
func NewRedisCache(ctx context.Context, url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, tperrors.Wrap(tperrors.ErrCodeInvalidInput, err, "parse redis url")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, tperrors.Wrap(tperrors.ErrCodeInternal, err, "connect to redis at %s", opts.Addr)
	}
	return &RedisCache{client: client, prefix: redisPrefix}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
