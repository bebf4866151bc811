package tron

// Strategy scores the four directions for a cycle at the given position.
// Implementations must treat the board as read-only; a strategy that needs
// to scribble on cells works on its own Clone.
type Strategy interface {
	Name() string
	Calculate(pos Coordinates, b *Board) ScoreMap
}
