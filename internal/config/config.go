// Package config holds application configuration loaded from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the tunable parameters of the decision engine.
type Config struct {
	// Board dimensions. The referee's grid is 30x20.
	Width  int
	Height int

	// MaxWait bounds how long a single decision waits for heuristic
	// results before returning a partial merge.
	MaxWait time.Duration

	// SpaceDepth bounds the flood fill performed by the space heuristic.
	SpaceDepth int

	// Heuristic weights for the combined strategy.
	DistanceWeight float64
	SpaceWeight    float64
	WallHugWeight  float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Width:          envIntOrDefault("BOARD_WIDTH", 30),
		Height:         envIntOrDefault("BOARD_HEIGHT", 20),
		MaxWait:        time.Duration(envIntOrDefault("MAX_WAIT_MS", 1750)) * time.Millisecond,
		SpaceDepth:     envIntOrDefault("SPACE_DEPTH", 12),
		DistanceWeight: envFloatOrDefault("DISTANCE_WEIGHT", 1),
		SpaceWeight:    envFloatOrDefault("SPACE_WEIGHT", 2),
		WallHugWeight:  envFloatOrDefault("WALLHUG_WEIGHT", 2),
	}
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloatOrDefault(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
