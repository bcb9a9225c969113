package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/catalog"
	"github.com/san-kum/sortvis/internal/playback"
	"github.com/san-kum/sortvis/internal/steps"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultDataDir   = ".sortvis"
	DefaultTheme     = "cyberpunk"
	DefaultLogLevel  = "info"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm string      `yaml:"algorithm"`
	Speed     float64     `yaml:"speed"`
	Seed      int64       `yaml:"seed"`
	Array     ArrayConfig `yaml:"array"`
	Theme     string      `yaml:"theme"`
	DataDir   string      `yaml:"data_dir"`
	LogLevel  string      `yaml:"log_level"`
}

// ArrayConfig describes the input array. Explicit Values win over the random
// Size/Min/Max draw. A zero Target means "pick one of the values".
type ArrayConfig struct {
	Size   int   `yaml:"size"`
	Min    int   `yaml:"min"`
	Max    int   `yaml:"max"`
	Values []int `yaml:"values,omitempty"`
	Target int   `yaml:"target"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Speed:     float64(playback.DefaultSpeed),
		Array: ArrayConfig{
			Size: steps.DefaultSize,
			Min:  steps.DefaultMin,
			Max:  steps.DefaultMax,
		},
		Theme:    DefaultTheme,
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the algorithm id, the speed and the array bounds.
func (c *Config) Validate(reg *catalog.Registry) error {
	if !reg.Has(c.Algorithm) {
		return fmt.Errorf("%w: unknown algorithm %q (available: %v)", ErrInvalidConfig, c.Algorithm, reg.IDs())
	}
	if !playback.Speed(c.Speed).Valid() {
		return fmt.Errorf("%w: speed %v not in %v", ErrInvalidConfig, c.Speed, playback.Speeds)
	}
	if len(c.Array.Values) > 0 {
		return nil
	}
	if c.Array.Size < 0 {
		return fmt.Errorf("%w: array size %d", ErrInvalidConfig, c.Array.Size)
	}
	if c.Array.Min > c.Array.Max {
		return fmt.Errorf("%w: array range [%d, %d]", ErrInvalidConfig, c.Array.Min, c.Array.Max)
	}
	return nil
}

// Input builds the generator input. Randomness is drawn from rng only when
// the array or the search target is not given explicitly.
func (c *Config) Input(rng *rand.Rand) (algorithms.Input, error) {
	values := append([]int(nil), c.Array.Values...)
	if len(values) == 0 {
		var err error
		values, err = steps.RandomValues(rng, c.Array.Size, c.Array.Min, c.Array.Max)
		if err != nil {
			return algorithms.Input{}, err
		}
	}
	target := c.Array.Target
	if target == 0 {
		target = steps.PickTarget(rng, values, c.Array.Min)
	}
	return algorithms.Input{Values: values, Target: target}, nil
}

// ApplyPreset copies the preset array into the config.
func (c *Config) ApplyPreset(p *Preset) {
	c.Array.Values = append([]int(nil), p.Values...)
	if p.Target != 0 {
		c.Array.Target = p.Target
	}
}
