package bot

import "github.com/freeeve/lightcycle/pkg/tron"

// DistanceStrategy scores each direction by the number of consecutive free
// cells between the cycle and the nearest wall or trail along that ray.
type DistanceStrategy struct{}

// Name implements tron.Strategy.
func (DistanceStrategy) Name() string { return "distance" }

// Calculate returns the raw ray lengths. Counting starts one step away
// from the cycle, so a direction whose neighboring cell is blocked scores 0.
func (DistanceStrategy) Calculate(pos tron.Coordinates, b *tron.Board) tron.ScoreMap {
	return tron.ScoreMap{
		tron.Left:  line(b, pos.X, pos.Y, -1, 0),
		tron.Up:    line(b, pos.X, pos.Y, 0, -1),
		tron.Right: line(b, pos.X, pos.Y, 1, 0),
		tron.Down:  line(b, pos.X, pos.Y, 0, 1),
	}
}

// line walks from (x, y) in steps of (dx, dy) and counts the free cells
// crossed before hitting an occupied cell or the board edge.
func line(b *tron.Board, x, y, dx, dy int) float64 {
	n := 0
	x += dx
	y += dy
	for b.Get(x, y) == tron.Free {
		x += dx
		y += dy
		n++
	}
	return float64(n)
}
