package tron

// Coordinates is an immutable position on the board.
type Coordinates struct {
	X int
	Y int
}
