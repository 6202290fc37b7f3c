package cache

import (
	"context"
	"time"

	gocache "github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
)

// RedisStore backs the expiring cache with Redis so multiple instances can
// share capability results. Expiry is delegated to Redis key TTLs.
type RedisStore struct {
	cache *gocache.Cache[string]
}

func NewRedisStore(client *redis.Client) *RedisStore {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(DefaultTTL))

	return &RedisStore{
		cache: gocache.New[string](redisStore),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return "", false
	}

	return value, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s.cache.Set(ctx, key, value, store.WithExpiration(ttl))
}
