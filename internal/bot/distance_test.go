package bot

import (
	"testing"

	"github.com/freeeve/lightcycle/pkg/tron"
)

func TestDistanceOpenBoard(t *testing.T) {
	// Rays count free cells starting one step from the cycle, so from
	// (15,10) on an empty 30x20 board: 14 cells to the right edge
	// (x 16..29), 15 to the left (x 14..0), 10 up (y 9..0), 9 down
	// (y 11..19).
	b := tron.NewBoard(30, 20)
	scores := DistanceStrategy{}.Calculate(tron.Coordinates{X: 15, Y: 10}, b)

	want := tron.ScoreMap{
		tron.Left:  15,
		tron.Right: 14,
		tron.Up:    10,
		tron.Down:  9,
	}
	for d, w := range want {
		if scores[d] != w {
			t.Errorf("scores[%s] = %v, want %v", d, scores[d], w)
		}
	}
}

func TestDistanceStopsAtTrail(t *testing.T) {
	b := tron.NewBoard(30, 20)
	b.Set(17, 10, tron.TrailOf(1)) // two cells right of the cycle

	scores := DistanceStrategy{}.Calculate(tron.Coordinates{X: 15, Y: 10}, b)

	if scores[tron.Right] != 1 {
		t.Errorf("scores[RIGHT] = %v, want 1", scores[tron.Right])
	}
	if scores[tron.Left] != 15 {
		t.Errorf("scores[LEFT] = %v, want 15", scores[tron.Left])
	}
}

func TestDistanceBlockedDirectionsScoreZero(t *testing.T) {
	b := tron.NewBoard(30, 20)
	scores := DistanceStrategy{}.Calculate(tron.Coordinates{X: 0, Y: 0}, b)

	if scores[tron.Left] != 0 {
		t.Errorf("scores[LEFT] = %v at the left edge, want 0", scores[tron.Left])
	}
	if scores[tron.Up] != 0 {
		t.Errorf("scores[UP] = %v at the top edge, want 0", scores[tron.Up])
	}
	if scores[tron.Right] != 29 {
		t.Errorf("scores[RIGHT] = %v, want 29", scores[tron.Right])
	}
	if scores[tron.Down] != 19 {
		t.Errorf("scores[DOWN] = %v, want 19", scores[tron.Down])
	}
}

func TestDistanceDoesNotMutateBoard(t *testing.T) {
	b := tron.NewBoard(10, 10)
	b.Cycle(0).Touch(5, 5)
	before := b.Snapshot()

	DistanceStrategy{}.Calculate(tron.Coordinates{X: 5, Y: 5}, b)

	after := b.Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("cell %d changed from %d to %d", i, before[i], after[i])
		}
	}
}
