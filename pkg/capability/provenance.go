package capability

import (
	"strings"
	"sync"

	"github.com/voyago/voyago/pkg/util"
	"golang.org/x/exp/slices"
)

const (
	// CacheTagPrefix marks a capability served from the shared cache
	CacheTagPrefix = "cache:"

	// MockTagSuffix marks a capability that fell back to deterministic data
	MockTagSuffix = ":mock"

	// MockSourceName is the sentinel display name for any mock tier
	MockSourceName = "mock-data"
)

// Provenance is the append-only set of resolution tags recorded during one
// planning request.
type Provenance struct {
	mutex sync.Mutex
	tags  []string
}

func (p *Provenance) Record(tag string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !slices.Contains(p.tags, tag) {
		p.tags = append(p.tags, tag)
	}
}

func (p *Provenance) Tags() []string {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return slices.Clone(p.tags)
}

// Reduce collapses the tag set into the display source list and the
// served-from-cache flag. Cache tags set the flag but are excluded from the
// list; mock tags collapse to the mock-data sentinel. An empty list defaults
// to the sentinel too.
func (p *Provenance) Reduce() ([]string, bool) {
	cached := false
	var sources []string

	for _, tag := range p.Tags() {
		if strings.HasPrefix(tag, CacheTagPrefix) {
			cached = true
			continue
		}

		if strings.HasSuffix(tag, MockTagSuffix) {
			sources = append(sources, MockSourceName)
			continue
		}

		sources = append(sources, tag)
	}

	sources = util.RemoveDuplicateStrings(sources, []string{})

	if len(sources) == 0 {
		sources = []string{MockSourceName}
	}

	return sources, cached
}
