// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"code.hybscloud.com/bounce"
)

// Config is a run configuration. Values come from the defaults, then a
// YAML file, then explicit command-line flags, in that order.
type Config struct {
	// Input is the parity argument measured for every strategy.
	Input int `yaml:"input"`

	// Iterations is the number of timed evaluations per strategy.
	Iterations int `yaml:"iterations"`

	// Warmup is the number of untimed evaluations before measuring.
	Warmup int `yaml:"warmup"`

	// MaxDepth is the hybrid strategy's direct-recursion budget.
	MaxDepth int `yaml:"maxDepth"`

	// Strategies names the strategies to measure; empty means all of
	// them, in registry order.
	Strategies []string `yaml:"strategies"`

	// Store is a bbolt file holding run history; empty disables
	// persistence.
	Store string `yaml:"store"`

	// OverflowStack is the stack cap in bytes the overflow demo's
	// child process runs under.
	OverflowStack int `yaml:"overflowStack"`
}

// DefaultConfig returns the configuration used when no file and no
// flags are given: the package's fixed input, a handful of iterations,
// every strategy, no persistence.
func DefaultConfig() Config {
	return Config{
		Input:         bounce.FixedInput,
		Iterations:    5,
		Warmup:        1,
		MaxDepth:      bounce.DefaultMaxDepth,
		OverflowStack: 1 << 21,
	}
}

// LoadConfig reads a YAML run configuration over the defaults. Fields
// absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Input < 0 {
		return fmt.Errorf("input %d: parity is defined for non-negative integers", c.Input)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations %d: need at least one timed run", c.Iterations)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup %d: must be non-negative", c.Warmup)
	}
	if c.OverflowStack < 1<<16 {
		return fmt.Errorf("overflowStack %d: below the runtime's minimum useful cap", c.OverflowStack)
	}
	return nil
}

// selectStrategies resolves the configured strategy filter against the
// registry and applies the configured hybrid budget. Unknown names are
// an error rather than silently skipped.
func (c Config) selectStrategies() ([]bounce.Strategy, error) {
	all := bounce.Strategies()
	for i := range all {
		if all[i].Name == "hybrid" && c.MaxDepth != bounce.DefaultMaxDepth {
			budget := c.MaxDepth
			all[i].Eval = func(n int) bool { return bounce.HybridEvenAt(n, budget) }
		}
	}
	if len(c.Strategies) == 0 {
		return all, nil
	}
	byName := make(map[string]bounce.Strategy, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	picked := make([]bounce.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q", name)
		}
		picked = append(picked, s)
	}
	return picked, nil
}
