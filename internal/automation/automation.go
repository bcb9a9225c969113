package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortvis/internal/catalog"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/experiment"
	"github.com/san-kum/sortvis/internal/steps"
	"github.com/san-kum/sortvis/internal/storage"
)

var ErrEmptySweep = errors.New("automation: sweep needs at least one size and one trial")

// Scenario is a scripted list of runs loaded from YAML.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run. Preset, when set, supplies Values and Target
// unless those are given explicitly.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Preset    string `yaml:"preset,omitempty"`
	Values    []int  `yaml:"values,omitempty"`
	Target    int    `yaml:"target,omitempty"`
	Size      int    `yaml:"size,omitempty"`
	Min       int    `yaml:"min,omitempty"`
	Max       int    `yaml:"max,omitempty"`
	Seed      int64  `yaml:"seed,omitempty"`
	Save      bool   `yaml:"save,omitempty"`
}

// Outcome pairs a finished step with its stored run id, if it was saved.
type Outcome struct {
	Result *experiment.Result
	RunID  string
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Config turns a step into an experiment configuration with defaults filled.
func (s ScenarioStep) Config() (experiment.Config, error) {
	cfg := experiment.Config{
		Algorithm: s.Algorithm,
		Values:    s.Values,
		Target:    s.Target,
		Size:      s.Size,
		Min:       s.Min,
		Max:       s.Max,
		Seed:      s.Seed,
	}
	if s.Preset != "" {
		p := config.GetPreset(s.Preset)
		if p == nil {
			return cfg, fmt.Errorf("unknown preset: %s (available: %v)", s.Preset, config.ListPresets())
		}
		if len(cfg.Values) == 0 {
			cfg.Values = append([]int(nil), p.Values...)
		}
		if cfg.Target == 0 {
			cfg.Target = p.Target
		}
	}
	if cfg.Size == 0 {
		cfg.Size = steps.DefaultSize
	}
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Min, cfg.Max = steps.DefaultMin, steps.DefaultMax
	}
	return cfg, nil
}

// RunScenario executes all steps in order. Steps marked Save are written to
// store; a nil store skips saving. Results gathered before a failure are
// returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, reg *catalog.Registry, store *storage.Store, log zerolog.Logger) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		log.Info().Int("step", i+1).Int("of", len(scenario.Steps)).Str("algorithm", step.Algorithm).Msg("running scenario step")

		cfg, err := step.Config()
		if err != nil {
			return outcomes, fmt.Errorf("step %d: %w", i+1, err)
		}

		result, err := experiment.New(cfg).Run(ctx, reg)
		if err != nil {
			return outcomes, fmt.Errorf("step %d run: %w", i+1, err)
		}

		out := Outcome{Result: result}
		if step.Save && store != nil {
			out.RunID, err = store.Save(result.Algorithm, result.Input, result.Seed, result.Steps, result.Metrics)
			if err != nil {
				return outcomes, fmt.Errorf("step %d save: %w", i+1, err)
			}
			log.Debug().Str("run", out.RunID).Msg("scenario step stored")
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

// SizeSweep measures one algorithm over growing random arrays.
type SizeSweep struct {
	Algorithm string
	Sizes     []int
	Trials    int
	Min, Max  int
	Seed      int64
}

// SweepResult holds the aggregated metrics for one array size.
type SweepResult struct {
	Size  int
	Stats map[string]experiment.Stats
}

// RunSweep runs an ensemble of Trials random arrays per size. Every size uses
// the same seeds, so sizes differ only in length.
func RunSweep(ctx context.Context, sweep *SizeSweep, reg *catalog.Registry, log zerolog.Logger) ([]SweepResult, error) {
	if len(sweep.Sizes) == 0 || sweep.Trials < 1 {
		return nil, ErrEmptySweep
	}
	min, max := sweep.Min, sweep.Max
	if min == 0 && max == 0 {
		min, max = steps.DefaultMin, steps.DefaultMax
	}

	results := make([]SweepResult, 0, len(sweep.Sizes))
	for i, size := range sweep.Sizes {
		base := experiment.Config{Algorithm: sweep.Algorithm, Size: size, Min: min, Max: max}
		runs, err := experiment.NewEnsemble(base, sweep.Trials, sweep.Seed).Run(ctx, reg)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}
		results = append(results, SweepResult{Size: size, Stats: experiment.Summarize(runs)})
		log.Debug().Int("size", size).Int("done", i+1).Int("of", len(sweep.Sizes)).Msg("sweep")
	}

	return results, nil
}
