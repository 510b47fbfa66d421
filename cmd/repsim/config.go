package main

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-level defaults; explicit flags win over it.
type Config struct {
	OutDir  string `envconfig:"OUT_DIR" default:"."`
	Metric  string `envconfig:"METRIC" default:"correlation"`
	Linkage string `envconfig:"LINKAGE" default:"average"`
	Seed    int64  `envconfig:"SEED" default:"0"`
	Iters   int    `envconfig:"PERM_ITERS" default:"1000"`
}

// loadConfig reads an optional .env file and the REPSIM_* environment.
func loadConfig() (Config, error) {
	_ = godotenv.Load() // absent .env is fine

	var cfg Config
	if err := envconfig.Process("REPSIM", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// pickString prefers an explicitly set flag value over the env default.
func pickString(flagVal, envVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return envVal
}
