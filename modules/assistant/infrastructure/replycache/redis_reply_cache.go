package replycache

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
)

// ReplyCache stores full AI replies keyed by a content hash so repeated
// identical questions skip the model ladder entirely. A miss returns the
// empty string with no error.
type ReplyCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, reply string) error
}

type RedisReplyCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisReplyCache(client *redis.Client, prefix string, ttl time.Duration) *RedisReplyCache {
	return &RedisReplyCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisReplyCache) Get(ctx context.Context, key string) (string, error) {
	reply, err := c.client.Get(ctx, c.prefix+":"+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read cached reply")
	}
	return reply, nil
}

func (c *RedisReplyCache) Set(ctx context.Context, key, reply string) error {
	if err := c.client.Set(ctx, c.prefix+":"+key, reply, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache reply")
	}
	return nil
}
