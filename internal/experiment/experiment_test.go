package experiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortvis/internal/catalog"
	"github.com/san-kum/sortvis/internal/steps"
)

func randomConfig(algo string) Config {
	return Config{Algorithm: algo, Size: 8, Min: steps.DefaultMin, Max: steps.DefaultMax, Seed: 3}
}

func TestExperimentRun(t *testing.T) {
	reg := catalog.NewRegistry()
	res, err := New(Config{Algorithm: "bubble", Values: []int{5, 3, 8, 1}}).Run(context.Background(), reg)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 3, 8, 1}, res.Input.Values)
	assert.Len(t, res.Steps, 25)
	assert.Equal(t, 4.0, res.Metrics["swaps"])
	assert.Equal(t, 25.0, res.Metrics["steps"])
}

func TestExperimentDeterministic(t *testing.T) {
	reg := catalog.NewRegistry()
	a, err := New(randomConfig("quick")).Run(context.Background(), reg)
	require.NoError(t, err)
	b, err := New(randomConfig("quick")).Run(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, a.Input, b.Input)
	assert.Equal(t, a.Steps, b.Steps)
}

func TestExperimentErrors(t *testing.T) {
	reg := catalog.NewRegistry()

	_, err := New(Config{Algorithm: "bogo"}).Run(context.Background(), reg)
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)

	cfg := randomConfig("bubble")
	cfg.Min, cfg.Max = 10, 1
	_, err = New(cfg).Run(context.Background(), reg)
	assert.ErrorIs(t, err, steps.ErrEmptyRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(randomConfig("bubble")).Run(ctx, reg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnsemble(t *testing.T) {
	reg := catalog.NewRegistry()
	results, err := NewEnsemble(randomConfig("insertion"), 6, 100).Run(context.Background(), reg)
	require.NoError(t, err)
	require.Len(t, results, 6)

	for i, r := range results {
		assert.Equal(t, int64(100+i), r.Seed)
		assert.True(t, steps.IsAscending(r.Steps.Last().Values()))
	}

	single, err := New(Config{Algorithm: "insertion", Size: 8, Min: 1, Max: 50, Seed: 102}).Run(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, single.Input, results[2].Input)

	summary := Summarize(results)
	swaps := summary["swaps"]
	assert.LessOrEqual(t, swaps.Min, swaps.Mean)
	assert.LessOrEqual(t, swaps.Mean, swaps.Max)
	assert.Equal(t, 1.0, summary["sortedness"].Min)
	assert.Contains(t, MetricNames(summary), "comparisons")
}

func TestSummarize(t *testing.T) {
	results := []*Result{
		{Metrics: map[string]float64{"swaps": 2}},
		{Metrics: map[string]float64{"swaps": 4}},
		{Metrics: map[string]float64{"swaps": 6}},
	}
	s := Summarize(results)["swaps"]
	assert.Equal(t, 4.0, s.Mean)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 6.0, s.Max)
	assert.InDelta(t, 2.0, s.StdDev, 1e-9)

	one := Summarize(results[:1])["swaps"]
	assert.Zero(t, one.StdDev)
	assert.Empty(t, Summarize(nil))
}
