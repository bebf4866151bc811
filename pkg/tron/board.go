package tron

import (
	"fmt"
	"io"
)

// Cell is the occupancy state of one board position.
type Cell int16

const (
	// Free marks an unoccupied cell.
	Free Cell = 0
	// OutOfRange is returned by Get for coordinates outside the board.
	// It is distinct from Free and from every trail marker, so callers
	// can treat the boundary like any other blocked cell.
	OutOfRange Cell = 100
)

// TrailOf returns the cell value marking the trail of the cycle with the
// given id.
func TrailOf(id int) Cell {
	return Cell(id + 1)
}

// Board is the shared occupancy grid plus the registry of known cycles.
// Registry entries are created lazily and never removed: an eliminated
// cycle keeps its entry with an empty path and no occupied cells.
type Board struct {
	width  int
	height int
	cells  []Cell
	cycles map[int]*Cycle
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		cycles: make(map[int]*Cycle),
	}
}

// Width returns the board width.
func (b *Board) Width() int { return b.width }

// Height returns the board height.
func (b *Board) Height() int { return b.height }

// Get returns the value at (x, y), or OutOfRange for coordinates outside
// the board.
func (b *Board) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return OutOfRange
	}
	return b.cells[y*b.width+x]
}

// Set writes the value at (x, y). Writes outside the board are ignored.
func (b *Board) Set(x, y int, v Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = v
}

// Cycle returns the cycle with the given id, creating it on first reference.
func (b *Board) Cycle(id int) *Cycle {
	c, ok := b.cycles[id]
	if !ok {
		c = &Cycle{id: id, board: b}
		b.cycles[id] = c
	}
	return c
}

// Cycles returns every registered cycle, keyed by id.
func (b *Board) Cycles() map[int]*Cycle {
	return b.cycles
}

// Clone returns a board with an independent copy of the cell array.
// Registry entries are carried over by reference: clones exist so a
// strategy can mark cells destructively without corrupting the live
// board, and their cycles are for read-only use.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.width, b.height)
	copy(clone.cells, b.cells)
	for id, c := range b.cycles {
		clone.cycles[id] = c
	}
	return clone
}

// Snapshot returns a copy of the cell array in row-major order, for
// consumers that render or serialize the board without holding it.
func (b *Board) Snapshot() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Dump writes a row-per-line numeric rendering of the board, for debugging.
func (b *Board) Dump(w io.Writer) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			fmt.Fprintf(w, "%d", b.cells[y*b.width+x])
		}
		fmt.Fprintln(w)
	}
}
