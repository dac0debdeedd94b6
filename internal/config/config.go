// Package config centralizes advisor's runtime settings, layered from
// defaults, the config file, ADVISOR_* environment variables, and flags.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for an advisor session.
// Values are populated from .advisor.yaml, ADVISOR_* env vars, and CLI flags.
type Config struct {
	DataFile        string `mapstructure:"data_file"`        // course file loaded by default
	Delimiter       string `mapstructure:"delimiter"`        // field separator in the course file
	HistoryDB       string `mapstructure:"history_db"`       // sqlite file recording load history
	InitialCapacity int    `mapstructure:"initial_capacity"` // starting bucket count for the catalog
	DisplayPrefix   string `mapstructure:"display_prefix"`   // id prefix for the default course listing
	Watch           bool   `mapstructure:"watch"`            // reload the data file when it changes
	Verbose         bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("data_file", "courses.csv")
	viper.SetDefault("delimiter", ",")
	viper.SetDefault("history_db", ".advisor-history.db")
	viper.SetDefault("initial_capacity", 1024)
	viper.SetDefault("display_prefix", "CS")
	viper.SetDefault("watch", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
