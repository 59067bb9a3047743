// Package config defines the run configuration and its layered loading:
// defaults, then an optional YAML file, then LINEUP_* environment variables.
package config

import (
	"fmt"

	"github.com/katalvlaran/lineup/exclusion"
	"github.com/katalvlaran/lineup/internal/logger"
	"github.com/katalvlaran/lineup/prim_kruskal"
	"github.com/katalvlaran/lineup/roster"
)

// Config contains the settings of one run.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	Exclusion Exclusion `koanf:"exclusion"`
	Ordering  Ordering  `koanf:"ordering"`
	Capacity  Capacity  `koanf:"capacity"`
	Output    Output    `koanf:"output"`
	Metrics   Metrics   `koanf:"metrics"`
}

// Exclusion configures the exclusion policy.
type Exclusion struct {
	// Threshold is the tier-1 share at which a performer is excluded.
	Threshold float64 `koanf:"threshold"`

	// Pairs lists mutually exclusive segments, two names per entry.
	Pairs [][]string `koanf:"pairs"`
}

// Ordering configures the show-order planner.
type Ordering struct {
	// Method is "kruskal" or "prim".
	Method string `koanf:"method"`
}

// Capacity holds fallback capacity strings.
type Capacity struct {
	SegmentDefault   string `koanf:"segment_default"`
	PerformerDefault string `koanf:"performer_default"`
}

// Output configures result sinks. Empty values disable a sink.
type Output struct {
	Dir    string `koanf:"dir"`
	SQLite string `koanf:"sqlite"`
}

// Metrics configures the Prometheus textfile export.
type Metrics struct {
	Textfile string `koanf:"textfile"`
}

// New returns the defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		Exclusion: Exclusion{Threshold: exclusion.DefaultThreshold},
		Ordering:  Ordering{Method: prim_kruskal.MethodKruskal},
		Capacity: Capacity{
			SegmentDefault:   roster.DefaultSegmentRange.String(),
			PerformerDefault: roster.DefaultPerformerRange.String(),
		},
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Exclusion.Threshold <= 0 {
		return fmt.Errorf("%w: exclusion.threshold must be positive, got %g", ErrInvalidConfig, c.Exclusion.Threshold)
	}
	for i, pair := range c.Exclusion.Pairs {
		if len(pair) != 2 {
			return fmt.Errorf("%w: exclusion.pairs[%d] needs two segments, got %d", ErrInvalidConfig, i, len(pair))
		}
	}
	if !prim_kruskal.ValidMethod(c.Ordering.Method) {
		return fmt.Errorf("%w: ordering.method %q", ErrInvalidConfig, c.Ordering.Method)
	}
	if _, ok := roster.ParseRange(c.Capacity.SegmentDefault, roster.Range{}); !ok {
		return fmt.Errorf("%w: capacity.segment_default %q", ErrInvalidConfig, c.Capacity.SegmentDefault)
	}
	if _, ok := roster.ParseRange(c.Capacity.PerformerDefault, roster.Range{}); !ok {
		return fmt.Errorf("%w: capacity.performer_default %q", ErrInvalidConfig, c.Capacity.PerformerDefault)
	}

	return nil
}

// Rules converts the configured pairs into exclusion rules.
func (c *Config) Rules() []exclusion.Rule {
	rules := make([]exclusion.Rule, 0, len(c.Exclusion.Pairs))
	for _, pair := range c.Exclusion.Pairs {
		if len(pair) == 2 {
			rules = append(rules, exclusion.Rule{A: pair[0], B: pair[1]})
		}
	}

	return rules
}

// SegmentDefault returns the parsed segment fallback range.
func (c *Config) SegmentDefault() roster.Range {
	r, _ := roster.ParseRange(c.Capacity.SegmentDefault, roster.DefaultSegmentRange)
	return r
}

// PerformerDefault returns the parsed performer fallback range.
func (c *Config) PerformerDefault() roster.Range {
	r, _ := roster.ParseRange(c.Capacity.PerformerDefault, roster.DefaultPerformerRange)
	return r
}
