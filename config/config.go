// Package config resolves the demo's tuning knobs from a .env file and the
// process environment. Everything has a default; a missing or malformed value
// never stops startup.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"ticket-rush-cli/model"
	"ticket-rush-cli/sim"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Demand tuning, see sim.Config.
	Demand sim.Config
	// MaxPrice is the starting position of the price filter slider.
	MaxPrice float64
	// Seed forces a deterministic simulation when non-zero.
	Seed int64
	// Name is the display name written to the leaderboard.
	Name string
}

// Default returns the tuning used when no environment overrides exist.
func Default() Config {
	return Config{
		Demand:   sim.DefaultConfig(),
		MaxPrice: model.MaxTicketPrice,
		Name:     "anonymous",
	}
}

// Load reads .env from the working directory (if present) and applies any
// TICKETRUSH_* overrides on top of the defaults.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load(".env")

	cfg := Default()
	if v, ok := envFloat("TICKETRUSH_DECAY_RATE"); ok {
		cfg.Demand.DecayRate = v
	}
	if v, ok := envFloat("TICKETRUSH_PRESOLD_PROB"); ok {
		cfg.Demand.PresoldProb = v
	}
	if v, ok := envFloat("TICKETRUSH_MAX_PRICE"); ok && v > 0 {
		cfg.MaxPrice = v
	}
	if v, ok := envInt("TICKETRUSH_SEED"); ok {
		cfg.Seed = v
	}
	if v := os.Getenv("TICKETRUSH_NAME"); v != "" {
		cfg.Name = v
	}
	cfg.Demand = cfg.Demand.Normalize()
	return cfg
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envInt(key string) (int64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
