package capability

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/voyago/voyago/pkg/cache"
)

// ErrNotConfigured signals that a capability has no credential bundle and the
// mock tier should be selected without attempting a live call.
var ErrNotConfigured = errors.New("capability not configured")

// ErrNoUsableResults signals a live response that parsed but contained
// nothing worth returning; treated the same as any other live failure.
var ErrNoUsableResults = errors.New("no usable results from live source")

// Source is one capability's live and mock tiers. Q is the query parameter
// struct, T the result. Live returns ErrNotConfigured when its credential
// bundle is absent; Mock must be a pure function of the query.
type Source[Q any, T any] interface {
	Capability() string
	SourceName() string
	Live(ctx context.Context, q Q) (T, error)
	Mock(q Q) T
}

// Resolve runs the three-tier policy for one capability: cache, then live,
// then deterministic mock. It records provenance for whichever tier won and
// never returns an error; upstream failures only surface through the result's
// advisory note.
func Resolve[Q any, T any](ctx context.Context, requestCtx *Context, source Source[Q, T], q Q) T {
	key := cache.Key(source.Capability(), q)

	if key != "" {
		if cachedValue, hit := requestCtx.Cache.Get(ctx, key); hit {
			var result T
			if err := json.Unmarshal([]byte(cachedValue), &result); err == nil {
				requestCtx.Provenance.Record(CacheTagPrefix + source.Capability())

				return result
			}

			// An unparsable entry is treated as a miss
			log.Warn().Str("key", key).Msg("Discarding corrupt cache entry")
		}
	}

	result, err := source.Live(ctx, q)
	if err == nil {
		requestCtx.Provenance.Record(source.SourceName())
		storeResult(ctx, requestCtx, key, result)

		return result
	}

	if !errors.Is(err, ErrNotConfigured) {
		log.Debug().Err(err).Str("capability", source.Capability()).Msg("Live lookup failed, falling back to mock data")
	}

	result = source.Mock(q)
	requestCtx.Provenance.Record(source.Capability() + MockTagSuffix)
	storeResult(ctx, requestCtx, key, result)

	return result
}

func storeResult[T any](ctx context.Context, requestCtx *Context, key string, result T) {
	if key == "" {
		return
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return
	}

	requestCtx.Cache.Set(ctx, key, string(resultJSON), cache.DefaultTTL)
}
