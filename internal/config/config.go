// Package config loads planner defaults from built-in values, environment
// variables and an optional config file, merged via spf13/viper; CLI flags
// are not bound into the merge. Grounded
// on viamrobotics-rdk's spf13/viper + spf13/cobra + spf13/pflag trio; the
// teacher repo has no config layer of its own (its scenarios are hardcoded
// in cmd/mapfhet/main.go), so this is drawn from the rest of the pack.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Planner holds the tunables named across spec.md: the algorithm and
// optimizer selectors, CSP offsets, GA/local-search parameters, and the
// robot/grid size caps.
type Planner struct {
	Algorithm           string  `mapstructure:"algorithm"`
	Optimizer           string  `mapstructure:"optimizer"`
	CSPMaxOffsetSchedule int    `mapstructure:"csp_max_offset_schedule"`
	CSPMaxOffsetGeneral int     `mapstructure:"csp_max_offset_general"`
	GAPopulation        int     `mapstructure:"ga_population"`
	GAGenerations       int     `mapstructure:"ga_generations"`
	GAMutationRate      float64 `mapstructure:"ga_mutation_rate"`
	LocalSearchIters    int     `mapstructure:"local_search_iterations"`
	MaxRobots           int     `mapstructure:"max_robots"`
	MaxWidth            int     `mapstructure:"max_width"`
	MaxHeight           int     `mapstructure:"max_height"`
	Seed                int64   `mapstructure:"seed"`
}

// Defaults returns the spec-mandated default configuration.
func Defaults() Planner {
	return Planner{
		Algorithm:            "astar",
		Optimizer:            "greedy",
		CSPMaxOffsetSchedule: 40,
		CSPMaxOffsetGeneral:  20,
		GAPopulation:         40,
		GAGenerations:        80,
		GAMutationRate:       0.3,
		LocalSearchIters:     2000,
		MaxRobots:            5,
		MaxWidth:             200,
		MaxHeight:            200,
		Seed:                 0,
	}
}

// Load merges defaults, an optional config file at path (read only when path
// is non-empty; a path that cannot be read is an error), and
// WAREHOUSE_PLANNER_*-prefixed environment variables.
func Load(path string) (Planner, error) {
	cfg := Defaults()

	v := viper.New()
	v.SetEnvPrefix("WAREHOUSE_PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("algorithm", cfg.Algorithm)
	v.SetDefault("optimizer", cfg.Optimizer)
	v.SetDefault("csp_max_offset_schedule", cfg.CSPMaxOffsetSchedule)
	v.SetDefault("csp_max_offset_general", cfg.CSPMaxOffsetGeneral)
	v.SetDefault("ga_population", cfg.GAPopulation)
	v.SetDefault("ga_generations", cfg.GAGenerations)
	v.SetDefault("ga_mutation_rate", cfg.GAMutationRate)
	v.SetDefault("local_search_iterations", cfg.LocalSearchIters)
	v.SetDefault("max_robots", cfg.MaxRobots)
	v.SetDefault("max_width", cfg.MaxWidth)
	v.SetDefault("max_height", cfg.MaxHeight)
	v.SetDefault("seed", cfg.Seed)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return cfg, err
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
