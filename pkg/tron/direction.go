package tron

// Direction is one of the four moves a cycle can make. The string value is
// printed verbatim by the move protocol.
type Direction string

const (
	Up    Direction = "UP"
	Down  Direction = "DOWN"
	Left  Direction = "LEFT"
	Right Direction = "RIGHT"
)

// ScanOrder is the fixed order in which directions are compared when a
// decision is made. Ties resolve to the earliest entry, so a given score
// map always yields the same move.
var ScanOrder = [4]Direction{Up, Right, Down, Left}

// Delta returns the unit offset of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// ScoreMap assigns a score to each direction. Maps produced by strategies
// need not be normalized and may omit directions; a missing key reads as 0.
type ScoreMap map[Direction]float64

// Normalize scales the map in place so its values sum to 1. A map summing
// to 0 is left unchanged to avoid division by zero.
func (m ScoreMap) Normalize() {
	var sum float64
	for _, v := range m {
		sum += v
	}
	if sum == 0 {
		return
	}
	for d, v := range m {
		m[d] = v / sum
	}
}
