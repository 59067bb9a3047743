package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "LINEUP_"
	envConfig = "LINEUP_CONFIG"
	pairsKey  = "exclusion.pairs"
	pairSep   = ";"
	memberSep = "|"
)

// sections are the nested config blocks; LINEUP_<SECTION>_<KEY> maps to section.key.
var sections = map[string]bool{
	"exclusion": true,
	"ordering":  true,
	"capacity":  true,
	"output":    true,
	"metrics":   true,
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. YAML file at path, or at $LINEUP_CONFIG when path is empty
//  3. env (prefix LINEUP_), e.g. LINEUP_ORDERING_METHOD=prim,
//     LINEUP_EXCLUSION_PAIRS="Tap|Jazz;Swan|Summit"
func Load(_ context.Context, path string) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		if key == envConfig {
			return "", nil
		}
		name := envKey(key)
		if name == pairsKey {
			return name, splitPairs(value)
		}
		return name, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps LINEUP_OUTPUT_SQLITE to output.sqlite and LINEUP_LOG_LEVEL to log_level.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if section, rest, ok := strings.Cut(s, "_"); ok && sections[section] {
		return section + "." + rest
	}

	return s
}

// splitPairs parses "A|B;C|D" into [][]string-compatible values.
func splitPairs(v string) []interface{} {
	var out []interface{}
	for _, entry := range strings.Split(v, pairSep) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		var pair []interface{}
		for _, name := range strings.Split(entry, memberSep) {
			pair = append(pair, strings.TrimSpace(name))
		}
		out = append(out, pair)
	}

	return out
}
