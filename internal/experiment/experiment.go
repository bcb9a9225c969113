package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/catalog"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/steps"
)

// Config describes one generated run. Values, when set, replace the random
// draw of Size elements from [Min, Max]. A zero Target picks one of the values.
type Config struct {
	Algorithm string
	Values    []int
	Target    int
	Size      int
	Min       int
	Max       int
	Seed      int64
}

type Result struct {
	Algorithm string
	Seed      int64
	Input     algorithms.Input
	Steps     steps.Sequence
	Metrics   map[string]float64
}

type Experiment struct {
	cfg        Config
	randSource *rand.Rand
}

func New(cfg Config) *Experiment {
	return &Experiment{
		cfg:        cfg,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Input draws the run input. Repeated calls continue the same random stream.
func (e *Experiment) Input() (algorithms.Input, error) {
	values := append([]int(nil), e.cfg.Values...)
	if len(values) == 0 {
		var err error
		values, err = steps.RandomValues(e.randSource, e.cfg.Size, e.cfg.Min, e.cfg.Max)
		if err != nil {
			return algorithms.Input{}, err
		}
	}
	target := e.cfg.Target
	if target == 0 {
		target = steps.PickTarget(e.randSource, values, e.cfg.Min)
	}
	return algorithms.Input{Values: values, Target: target}, nil
}

// Run generates the step sequence and evaluates the default metrics on it.
func (e *Experiment) Run(ctx context.Context, reg *catalog.Registry) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	algo, err := reg.Get(e.cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	in, err := e.Input()
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", e.cfg.Algorithm, err)
	}

	seq := algo.Generate(in)
	return &Result{
		Algorithm: e.cfg.Algorithm,
		Seed:      e.cfg.Seed,
		Input:     in,
		Steps:     seq,
		Metrics:   metrics.Evaluate(seq, metrics.Default()...),
	}, nil
}
