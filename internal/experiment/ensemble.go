package experiment

import (
	"context"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/sortvis/internal/catalog"
)

// Ensemble repeats one configuration over consecutive seeds.
type Ensemble struct {
	base      Config
	numRuns   int
	seedStart int64
}

func NewEnsemble(base Config, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: base, numRuns: numRuns, seedStart: seedStart}
}

// Run executes every trial in its own goroutine. Results are ordered by seed.
func (e *Ensemble) Run(ctx context.Context, reg *catalog.Registry) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.base
			cfg.Seed = e.seedStart + int64(idx)
			results[idx], errs[idx] = New(cfg).Run(ctx, reg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize aggregates each metric over results.
func Summarize(results []*Result) map[string]Stats {
	samples := make(map[string][]float64)
	for _, r := range results {
		for name, v := range r.Metrics {
			samples[name] = append(samples[name], v)
		}
	}

	out := make(map[string]Stats, len(samples))
	for name, xs := range samples {
		mean, std := stat.MeanStdDev(xs, nil)
		if len(xs) < 2 {
			std = 0
		}
		out[name] = Stats{Mean: mean, StdDev: std, Min: floats.Min(xs), Max: floats.Max(xs)}
	}
	return out
}

// MetricNames returns the keys of a summary in sorted order.
func MetricNames(summary map[string]Stats) []string {
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
