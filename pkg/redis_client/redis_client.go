package redis_client

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/voyago/voyago/pkg/config"
)

var Client *redis.Client

// Connect establishes the shared Redis connection used by the Redis-backed
// cache. Startup pings retry with exponential backoff so a briefly
// unavailable Redis does not kill the process.
func Connect(cfg config.RedisConfig) error {
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	return backoff.Retry(func() error {
		return Client.Ping(context.Background()).Err()
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4))
}
