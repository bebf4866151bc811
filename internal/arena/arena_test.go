package arena

import (
	"context"
	"testing"
	"time"

	"github.com/freeeve/lightcycle/internal/config"
)

func testConfig() Config {
	engine := config.Load()
	engine.MaxWait = 500 * time.Millisecond
	return Config{
		Width:   15,
		Height:  10,
		Players: []string{"wallhug", "distance"},
		Engine:  engine,
	}
}

func TestRunMatchFinishes(t *testing.T) {
	res, err := RunMatch(context.Background(), testConfig(), nil)
	if err != nil {
		t.Fatalf("RunMatch() error: %v", err)
	}

	if res.MatchID == "" {
		t.Error("empty match id")
	}
	if res.Turns < 1 {
		t.Errorf("Turns = %d, want >= 1", res.Turns)
	}
	if res.Winner < -1 || res.Winner > 1 {
		t.Errorf("Winner = %d, want -1, 0, or 1", res.Winner)
	}
	for i := 0; i < 2; i++ {
		if _, ok := res.TrailLengths[i]; !ok {
			t.Errorf("no trail length recorded for player %d", i)
		}
	}
	for _, e := range res.Eliminated {
		if e == res.Winner {
			t.Errorf("winner %d appears in eliminated list", res.Winner)
		}
	}
}

func TestRunMatchDeterministicWithPureStrategies(t *testing.T) {
	first, err := RunMatch(context.Background(), testConfig(), nil)
	if err != nil {
		t.Fatalf("RunMatch() error: %v", err)
	}
	second, err := RunMatch(context.Background(), testConfig(), nil)
	if err != nil {
		t.Fatalf("RunMatch() error: %v", err)
	}

	if first.Winner != second.Winner || first.Turns != second.Turns {
		t.Errorf("matches diverged: (%d, %d turns) vs (%d, %d turns)",
			first.Winner, first.Turns, second.Winner, second.Turns)
	}
}

func TestRunMatchEmitsFrames(t *testing.T) {
	cfg := testConfig()
	var frames []Frame
	res, err := RunMatch(context.Background(), cfg, func(f Frame) {
		frames = append(frames, f)
	})
	if err != nil {
		t.Fatalf("RunMatch() error: %v", err)
	}

	if len(frames) != res.Turns {
		t.Fatalf("got %d frames for %d turns", len(frames), res.Turns)
	}
	for i, f := range frames {
		if f.Turn != i+1 {
			t.Errorf("frame %d has turn %d", i, f.Turn)
		}
		if len(f.Cells) != cfg.Width*cfg.Height {
			t.Errorf("frame %d has %d cells, want %d", i, len(f.Cells), cfg.Width*cfg.Height)
		}
		if f.MatchID != res.MatchID {
			t.Errorf("frame %d match id %q, want %q", i, f.MatchID, res.MatchID)
		}
	}
}

func TestRunMatchRejectsBadPlayerCounts(t *testing.T) {
	cfg := testConfig()

	cfg.Players = []string{"wallhug"}
	if _, err := RunMatch(context.Background(), cfg, nil); err == nil {
		t.Error("no error for a single player")
	}

	cfg.Players = []string{"a", "b", "c", "d", "e"}
	if _, err := RunMatch(context.Background(), cfg, nil); err == nil {
		t.Error("no error for five players")
	}
}

func TestRunMatchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := RunMatch(ctx, testConfig(), nil); err == nil {
		t.Error("no error from a canceled context")
	}
}

func TestRenderCoversBoard(t *testing.T) {
	cfg := testConfig()
	var last Frame
	if _, err := RunMatch(context.Background(), cfg, func(f Frame) { last = f }); err != nil {
		t.Fatalf("RunMatch() error: %v", err)
	}

	lines := 0
	for _, r := range Render(last) {
		if r == '\n' {
			lines++
		}
	}
	if lines != cfg.Height {
		t.Errorf("rendered %d lines, want %d", lines, cfg.Height)
	}
}
