package capability

import (
	"github.com/voyago/voyago/pkg/cache"
)

// Context is the per-request state threaded through every capability lookup.
// It borrows the shared cache and owns the provenance set for one planning
// call; it is created with the request and discarded with it.
type Context struct {
	Cache      cache.Store
	Provenance *Provenance
}

func NewContext(store cache.Store) *Context {
	return &Context{
		Cache:      store,
		Provenance: &Provenance{},
	}
}
