package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexshd/quadrature"
)

// Config holds the defaults for every subcommand. Values come from, in
// increasing priority: DefaultConfig, the --config YAML file, command flags.
type Config struct {
	Subdivisions int    `yaml:"subdivisions"` // N for trapezoidal and simpson
	Precision    uint   `yaml:"precision"`    // Mantissa bits; > 53 selects big.Float rules
	LogLevel     string `yaml:"log_level"`    // debug, info, warn, error

	Velocities VelocitiesConfig `yaml:"velocities"`
	Converge   ConvergeConfig   `yaml:"converge"`
}

// VelocitiesConfig controls the tabulated-velocity integration.
type VelocitiesConfig struct {
	File         string `yaml:"file"`
	Subdivisions int    `yaml:"subdivisions"`
	Rule         string `yaml:"rule"`
}

// ConvergeConfig controls the convergence study.
type ConvergeConfig struct {
	Rule    string `yaml:"rule"`
	Levels  []int  `yaml:"levels"`
	Workers int    `yaml:"workers"`
}

// DefaultConfig returns the settings that reproduce the textbook runs.
func DefaultConfig() Config {
	study := quadrature.DefaultConfig()

	return Config{
		Subdivisions: quadrature.DefaultSubdivisions,
		Precision:    53,
		LogLevel:     "info",
		Velocities: VelocitiesConfig{
			File:         "res/velocities.txt",
			Subdivisions: 100,
			Rule:         string(quadrature.RuleTrapezoidal),
		},
		Converge: ConvergeConfig{
			Rule:    string(study.Rule),
			Levels:  study.Levels,
			Workers: study.Workers,
		},
	}
}

// LoadConfig returns DefaultConfig overlaid with the YAML file at path.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings that can be checked without running anything.
// Rule-specific subdivision checks happen at integration time.
func (c Config) Validate() error {
	if c.Subdivisions <= 0 {
		return fmt.Errorf("subdivisions must be positive, got %d", c.Subdivisions)
	}
	if c.Precision == 0 {
		return fmt.Errorf("precision must be positive")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := quadrature.ParseRule(c.Velocities.Rule); err != nil {
		return fmt.Errorf("velocities: %w", err)
	}
	if _, err := quadrature.ParseRule(c.Converge.Rule); err != nil {
		return fmt.Errorf("converge: %w", err)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
