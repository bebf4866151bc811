package bot

import "github.com/freeeve/lightcycle/pkg/tron"

// DefaultSpaceDepth bounds the flood fill on large open regions, trading
// exploration completeness for bounded latency.
const DefaultSpaceDepth = 12

// SpaceStrategy scores each direction by the area of free cells reachable
// from the neighboring cell, measured with a depth-bounded 4-connected
// flood fill.
//
// All four fills run on a single clone of the board and mark visited cells
// occupied so no region is counted twice. Directions are evaluated in the
// fixed order LEFT, UP, RIGHT, DOWN: when two directions open into the
// same region, the one evaluated first claims it.
type SpaceStrategy struct {
	// MaxDepth caps the flood fill; 0 means DefaultSpaceDepth.
	MaxDepth int
}

// Name implements tron.Strategy.
func (SpaceStrategy) Name() string { return "space" }

// Calculate returns the per-direction reachable-area counts. The input
// board is never written; destructive marking happens on a private clone.
func (s SpaceStrategy) Calculate(pos tron.Coordinates, b *tron.Board) tron.ScoreMap {
	depth := s.MaxDepth
	if depth == 0 {
		depth = DefaultSpaceDepth
	}

	clone := b.Clone()
	return tron.ScoreMap{
		tron.Left:  space(clone, pos.X-1, pos.Y, depth),
		tron.Up:    space(clone, pos.X, pos.Y-1, depth),
		tron.Right: space(clone, pos.X+1, pos.Y, depth),
		tron.Down:  space(clone, pos.X, pos.Y+1, depth),
	}
}

// visited marks a cell consumed by an earlier fill on the clone.
const visited tron.Cell = -1

// space flood-fills from (x, y), marking each counted cell so overlapping
// fills never recount it, and returns the number of free cells reached
// within s steps.
func space(b *tron.Board, x, y, s int) float64 {
	if s <= 0 || b.Get(x, y) != tron.Free {
		return 0
	}

	b.Set(x, y, visited)

	area := float64(1)
	area += space(b, x+1, y, s-1)
	area += space(b, x-1, y, s-1)
	area += space(b, x, y+1, s-1)
	area += space(b, x, y-1, s-1)
	return area
}
