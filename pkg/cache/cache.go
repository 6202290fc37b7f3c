package cache

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a capability result stays visible.
const DefaultTTL = 6 * time.Hour

// Store is the expiring key-value contract shared by every capability
// provider. Values are JSON strings; an expired entry is treated as absent.
type Store interface {
	// Get returns the stored value, or ("", false) when the key is absent or
	// has expired.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a value for ttl. ttl <= 0 falls back to DefaultTTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration)
}
