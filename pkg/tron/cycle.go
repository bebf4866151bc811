package tron

// Cycle is one tracked light cycle: a position, the trail of cells it has
// claimed, and the strategy that decides its moves.
type Cycle struct {
	id       int
	board    *Board
	pos      Coordinates
	path     []Coordinates
	strategy Strategy
}

// ID returns the cycle's id.
func (c *Cycle) ID() int { return c.id }

// Position returns the cycle's current coordinates.
func (c *Cycle) Position() Coordinates { return c.pos }

// Path returns the ordered coordinates the cycle has occupied.
func (c *Cycle) Path() []Coordinates { return c.path }

// Touch moves the cycle to (x, y), appends the position to its path, and
// marks the cell with the cycle's trail value.
func (c *Cycle) Touch(x, y int) {
	c.pos = Coordinates{X: x, Y: y}
	c.path = append(c.path, c.pos)
	c.board.Set(x, y, TrailOf(c.id))
}

// Destroy frees every cell of the cycle's trail and clears its path. The
// referee reports an eliminated player with negative coordinates, and its
// wall disappears from the grid the same turn.
func (c *Cycle) Destroy() {
	for _, coord := range c.path {
		c.board.Set(coord.X, coord.Y, Free)
	}
	c.path = nil
}

// SetStrategy assigns the strategy used by Choose. Set once; it persists
// across turns.
func (c *Cycle) SetStrategy(s Strategy) {
	c.strategy = s
}

// HasStrategy reports whether a strategy has been assigned.
func (c *Cycle) HasStrategy() bool {
	return c.strategy != nil
}

// Choose runs the cycle's strategy and returns the direction with the
// strictly greatest score. Directions are compared in ScanOrder and a
// missing entry reads as 0, so ties always resolve the same way; an empty
// score map yields ScanOrder's first entry.
func (c *Cycle) Choose() Direction {
	scores := c.strategy.Calculate(c.pos, c.board)

	best := ScanOrder[0]
	bestScore := float64(-1)
	for _, d := range ScanOrder {
		if s := scores[d]; s > bestScore {
			best = d
			bestScore = s
		}
	}
	return best
}
