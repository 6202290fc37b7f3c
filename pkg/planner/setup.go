package planner

import (
	"github.com/rs/zerolog/log"
	"github.com/voyago/voyago/pkg/cache"
	"github.com/voyago/voyago/pkg/config"
	"github.com/voyago/voyago/pkg/redis_client"
)

// NewStore picks the cache backend: Redis when an address is configured and
// reachable, the in-process store otherwise. The cache contract is identical
// either way.
func NewStore(cfg config.Config) cache.Store {
	if cfg.Redis.Address == "" {
		return cache.NewMemoryStore()
	}

	if err := redis_client.Connect(cfg.Redis); err != nil {
		log.Warn().Err(err).Str("address", cfg.Redis.Address).Msg("Redis unavailable, using in-process cache")

		return cache.NewMemoryStore()
	}

	return cache.NewRedisStore(redis_client.Client)
}
