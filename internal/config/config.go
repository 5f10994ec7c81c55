// Package config loads service configuration from an optional TOML file
// with environment variable overrides for deployment settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vastuhome/layoutengine/internal/model"
)

// Server holds the HTTP listener settings.
type Server struct {
	Port         string `toml:"port"`
	Environment  string `toml:"environment"`
	ReadTimeout  int    `toml:"read_timeout"`  // seconds
	WriteTimeout int    `toml:"write_timeout"` // seconds
}

// Engine holds the default optimizer parameters applied to requests that
// do not supply their own settings. Zero values fall back to the model
// package defaults.
type Engine struct {
	PopulationSize   int     `toml:"population_size"`
	Generations      int     `toml:"generations"`
	TimeBudgetMillis int     `toml:"time_budget_ms"`
	StagnationWindow int     `toml:"stagnation_window"`
	MutationRate     float64 `toml:"mutation_rate"`
	MaxItems         int     `toml:"max_items"`

	WalkwayWidth      float64 `toml:"walkway_width"`
	WalkwayCoverage   float64 `toml:"walkway_coverage"`
	WalkwayResolution float64 `toml:"walkway_resolution"`
}

// Config is the full service configuration.
type Config struct {
	Server Server `toml:"server"`
	Engine Engine `toml:"engine"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Port:         "3000",
			Environment:  "development",
			ReadTimeout:  10,
			WriteTimeout: 30,
		},
	}
}

// Load reads the TOML file at path, falling back to defaults when the
// file does not exist, then applies environment overrides. An empty path
// skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// Settings converts the engine section into optimizer settings, filling
// unset fields from the documented defaults.
func (c Config) Settings() model.Settings {
	s := model.Settings{
		PopulationSize:   c.Engine.PopulationSize,
		Generations:      c.Engine.Generations,
		TimeBudget:       time.Duration(c.Engine.TimeBudgetMillis) * time.Millisecond,
		StagnationWindow: c.Engine.StagnationWindow,
		MutationRate:     c.Engine.MutationRate,
		MaxItems:         c.Engine.MaxItems,
	}
	s.Clearance.WalkwayWidth = c.Engine.WalkwayWidth
	s.Clearance.WalkwayCoverage = c.Engine.WalkwayCoverage
	s.Clearance.WalkwayResolution = c.Engine.WalkwayResolution
	return s.Normalize()
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.Environment = getEnv("ENV", c.Server.Environment)
	c.Server.ReadTimeout = getEnvAsInt("READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvAsInt("WRITE_TIMEOUT", c.Server.WriteTimeout)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
