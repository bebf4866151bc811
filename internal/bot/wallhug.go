package bot

import "github.com/freeeve/lightcycle/pkg/tron"

// WallHugStrategy favors moves that keep a wall or trail on the cycle's
// flank. Each direction starts at weight 1 and gains a point for every
// occupied diagonal neighbor adjacent to it. A direction boosted to 3 sits
// in a near-enclosed pocket and is reset to the baseline, and a direction
// whose destination cell is already occupied is zeroed outright.
type WallHugStrategy struct{}

// Name implements tron.Strategy.
func (WallHugStrategy) Name() string { return "wallhug" }

// Calculate implements tron.Strategy.
func (WallHugStrategy) Calculate(pos tron.Coordinates, b *tron.Board) tron.ScoreMap {
	x, y := pos.X, pos.Y
	up, right, down, left := 1.0, 1.0, 1.0, 1.0

	// Each occupied diagonal bumps the two directions it touches.
	if b.Get(x+1, y-1) != tron.Free {
		right++
		up++
	}
	if b.Get(x+1, y+1) != tron.Free {
		right++
		down++
	}
	if b.Get(x-1, y+1) != tron.Free {
		left++
		down++
	}
	if b.Get(x-1, y-1) != tron.Free {
		left++
		up++
	}

	// Both flanking diagonals occupied means the direction leads into a
	// pocket; drop it back to the baseline rather than ranking it safest.
	if up == 3 {
		up = 1
	}
	if right == 3 {
		right = 1
	}
	if down == 3 {
		down = 1
	}
	if left == 3 {
		left = 1
	}

	// Moving into an occupied cell is never an option, whatever the
	// adjustments above said.
	if b.Get(x, y-1) != tron.Free {
		up = 0
	}
	if b.Get(x+1, y) != tron.Free {
		right = 0
	}
	if b.Get(x, y+1) != tron.Free {
		down = 0
	}
	if b.Get(x-1, y) != tron.Free {
		left = 0
	}

	return tron.ScoreMap{
		tron.Up:    up,
		tron.Right: right,
		tron.Down:  down,
		tron.Left:  left,
	}
}
