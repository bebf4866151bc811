// Package bot implements the heuristics and the weighted combined strategy
// that together pick a move each turn.
package bot

import (
	"github.com/freeeve/lightcycle/internal/config"
	"github.com/freeeve/lightcycle/pkg/tron"
)

// ForName returns the strategy with the given name, falling back to the
// combined strategy for anything unrecognized. Combined strategies should
// be Closed when no longer needed.
func ForName(name string, cfg *config.Config) tron.Strategy {
	switch name {
	case "distance":
		return DistanceStrategy{}
	case "space":
		return SpaceStrategy{MaxDepth: cfg.SpaceDepth}
	case "wallhug":
		return WallHugStrategy{}
	default:
		return NewCombined(cfg)
	}
}

// NewCombined builds the default weighted ensemble: distance 1, space 2,
// wallhug 2, with the wait bound and flood depth taken from cfg.
func NewCombined(cfg *config.Config) *CombinedStrategy {
	return NewCombinedStrategy(
		[]WeightedStrategy{
			{Strategy: DistanceStrategy{}, Weight: cfg.DistanceWeight},
			{Strategy: SpaceStrategy{MaxDepth: cfg.SpaceDepth}, Weight: cfg.SpaceWeight},
			{Strategy: WallHugStrategy{}, Weight: cfg.WallHugWeight},
		},
		WithMaxWait(cfg.MaxWait),
	)
}
