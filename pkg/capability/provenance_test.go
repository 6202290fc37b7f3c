package capability

import (
	"reflect"
	"testing"
)

func TestProvenanceReduceAllMock(t *testing.T) {
	provenance := &Provenance{}

	for _, capabilityName := range []string{"destination", "weather", "flights", "stays", "places"} {
		provenance.Record(capabilityName + MockTagSuffix)
	}

	sources, cached := provenance.Reduce()

	if cached {
		t.Error("expected cached flag to be false with no cache tags")
	}
	if !reflect.DeepEqual(sources, []string{MockSourceName}) {
		t.Errorf("expected sources to collapse to [%s], got %v", MockSourceName, sources)
	}
}

func TestProvenanceReduceMixed(t *testing.T) {
	provenance := &Provenance{}
	provenance.Record(CacheTagPrefix + "destination")
	provenance.Record("open-meteo")
	provenance.Record("stays" + MockTagSuffix)

	sources, cached := provenance.Reduce()

	if !cached {
		t.Error("expected cached flag with a cache tag present")
	}
	if !reflect.DeepEqual(sources, []string{"open-meteo", MockSourceName}) {
		t.Errorf("unexpected sources %v", sources)
	}
}

func TestProvenanceReduceEmpty(t *testing.T) {
	provenance := &Provenance{}

	sources, cached := provenance.Reduce()

	if cached {
		t.Error("expected cached flag to be false for an empty set")
	}
	if !reflect.DeepEqual(sources, []string{MockSourceName}) {
		t.Errorf("expected sentinel source list, got %v", sources)
	}
}

func TestProvenanceRecordIsSet(t *testing.T) {
	provenance := &Provenance{}
	provenance.Record("amadeus")
	provenance.Record("amadeus")

	if tags := provenance.Tags(); len(tags) != 1 {
		t.Errorf("expected duplicate tags to collapse, got %v", tags)
	}
}
