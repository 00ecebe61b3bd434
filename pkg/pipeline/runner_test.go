package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/floorplanner/internal/compliance"
	"github.com/matzehuels/floorplanner/pkg/cache"
)

func TestRunnerExecuteGeneratesPlan(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	result, err := runner.Execute(context.Background(), Options{Brief: sampleBrief()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Plan.Rooms) == 0 {
		t.Fatal("expected at least one placed room")
	}
	if result.Compliance != nil {
		t.Error("compliance report should be nil unless RunCompliance is set")
	}
}

func TestRunnerExecuteRunsCompliance(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		Brief:         sampleBrief(),
		Jurisdiction:  compliance.JurisdictionColorado,
		RunCompliance: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Compliance == nil {
		t.Fatal("expected a compliance report")
	}
	if result.Compliance.Jurisdiction != compliance.JurisdictionColorado {
		t.Errorf("jurisdiction = %s, want colorado", result.Compliance.Jurisdiction)
	}
}

func TestRunnerExecuteCachesGeneration(t *testing.T) {
	c := newMemCache()
	runner := NewRunner(c, nil, nil)
	opts := Options{Brief: sampleBrief()}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.CacheInfo.GenerateHit {
		t.Error("first run should not be a cache hit")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.CacheInfo.GenerateHit {
		t.Error("second run with identical options should hit the cache")
	}
	if second.Plan.Score.Overall != first.Plan.Score.Overall {
		t.Error("cached plan should match the original")
	}
}

func TestRunnerExecuteVariationsRanked(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		Brief:      sampleBrief(),
		Variations: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Variations) != 6 {
		t.Errorf("expected 6 variations, got %d", len(result.Variations))
	}
	for i := 1; i < len(result.Variations); i++ {
		if result.Variations[i-1].Score.Overall < result.Variations[i].Score.Overall {
			t.Error("variations should be ranked best-first")
		}
	}
}

func TestRunnerExecuteParallelVariationsMatchSequential(t *testing.T) {
	seq := NewRunner(cache.NewNullCache(), nil, nil)
	seqResult, err := seq.Execute(context.Background(), Options{Brief: sampleBrief(), Variations: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	par := NewRunner(cache.NewNullCache(), nil, nil)
	parResult, err := par.Execute(context.Background(), Options{Brief: sampleBrief(), Variations: true, Parallel: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seqResult.Variations) != len(parResult.Variations) {
		t.Fatalf("variation count mismatch: %d vs %d", len(seqResult.Variations), len(parResult.Variations))
	}
	for i := range seqResult.Variations {
		if seqResult.Variations[i].Strategy != parResult.Variations[i].Strategy {
			t.Errorf("variation %d strategy mismatch: %s vs %s", i, seqResult.Variations[i].Strategy, parResult.Variations[i].Strategy)
		}
		if seqResult.Variations[i].Score.Overall != parResult.Variations[i].Score.Overall {
			t.Errorf("variation %d score mismatch: %f vs %f", i, seqResult.Variations[i].Score.Overall, parResult.Variations[i].Score.Overall)
		}
	}
}

// memCache is a minimal in-memory Cache used to test hit/miss behavior
// without depending on the filesystem.
type memCache struct{ data map[string][]byte }

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := c.data[key]
	return data, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }
