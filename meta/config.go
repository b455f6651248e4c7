package meta

import (
	"errors"
	"fmt"
	"mindgames/game"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

var ErrConfig = errors.New("invalid configuration")

// Config holds every tunable of the engine, the agent server and logging.
type Config struct {
	Version       string       `yaml:"version"`
	Algorithm     string       `yaml:"algorithm"`
	Depth         int          `yaml:"depth"`
	Parallel      bool         `yaml:"parallel"`
	Workers       int          `yaml:"workers"`
	Seed          uint64       `yaml:"seed"` // 0 seeds from the clock
	Deterministic bool         `yaml:"deterministic"`
	Threshold     float64      `yaml:"threshold"`
	Weights       game.Weights `yaml:"weights"`
	Addr          string       `yaml:"addr"`
	LogLevel      string       `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Version:   VERSION,
		Algorithm: ALGORITHM,
		Depth:     DEPTH,
		Parallel:  true,
		Workers:   runtime.NumCPU(),
		Threshold: RESOLUTION_THRESHOLD,
		Weights:   game.DefaultWeights(),
		Addr:      ADDR,
		LogLevel:  "info",
	}
}

// LoadConfig reads a YAML file over the defaults. Fields absent from the file keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Algorithm != Minimax && c.Algorithm != AlphaBeta:
		return fmt.Errorf("%w: unknown algorithm %q", ErrConfig, c.Algorithm)
	case c.Depth < 0 || c.Depth > MAX_DEPTH:
		return fmt.Errorf("%w: depth %d outside [0, %d]", ErrConfig, c.Depth, MAX_DEPTH)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrConfig, c.Workers)
	case c.Threshold < 0 || c.Threshold > 1:
		return fmt.Errorf("%w: threshold %v outside [0, 1]", ErrConfig, c.Threshold)
	case c.Version == "":
		return fmt.Errorf("%w: empty version", ErrConfig)
	}
	return nil
}
