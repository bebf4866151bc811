// Package arena runs full bot-vs-bot matches on a local board, for
// comparing strategies and watching them play.
package arena

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/lightcycle/internal/bot"
	"github.com/freeeve/lightcycle/internal/config"
	"github.com/freeeve/lightcycle/pkg/tron"
)

// Config configures a single match.
type Config struct {
	Width    int
	Height   int
	Players  []string       // strategy name per player (see bot.ForName)
	MaxTurns int            // cap before deciding by trail length
	Seed     int64          // 0 = fixed start slots, else shuffled
	Engine   *config.Config // engine tuning; nil = config.Load()
}

// Result describes the outcome of a completed match.
type Result struct {
	MatchID      string         `json:"match_id"`
	Winner       int            `json:"winner"` // player index, -1 for draw
	Turns        int            `json:"turns"`
	Eliminated   []int          `json:"eliminated"` // in order of death
	TrailLengths map[int]int    `json:"trail_lengths"`
	Strategies   map[int]string `json:"strategies"`
}

// Frame is a per-turn snapshot handed to observers.
type Frame struct {
	MatchID   string             `json:"match_id"`
	Turn      int                `json:"turn"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Cells     []tron.Cell        `json:"cells"` // row-major
	Alive     []bool             `json:"alive"`
	Positions []tron.Coordinates `json:"positions"`
}

// Observer receives a frame after every completed turn. Called on the
// match goroutine; slow observers slow the match.
type Observer func(Frame)

// RunMatch plays one match to completion. Cycles take turns in player
// order; moving into a wall, a trail, or a cell claimed earlier in the
// same turn eliminates the cycle and frees its trail. The last survivor
// wins; at the turn cap the longest trail wins, with ties a draw.
func RunMatch(ctx context.Context, cfg Config, obs Observer) (*Result, error) {
	if len(cfg.Players) < 2 || len(cfg.Players) > 4 {
		return nil, fmt.Errorf("arena: need 2-4 players, got %d", len(cfg.Players))
	}
	if cfg.Width == 0 {
		cfg.Width = 30
	}
	if cfg.Height == 0 {
		cfg.Height = 20
	}
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = cfg.Width * cfg.Height
	}
	engine := cfg.Engine
	if engine == nil {
		engine = config.Load()
	}

	result := &Result{
		MatchID:      uuid.NewString(),
		Winner:       -1,
		TrailLengths: make(map[int]int),
		Strategies:   make(map[int]string),
	}

	board := tron.NewBoard(cfg.Width, cfg.Height)
	alive := make([]bool, len(cfg.Players))
	var closers []*bot.CombinedStrategy

	defer func() {
		for _, cs := range closers {
			cs.Close()
		}
	}()

	for i, name := range cfg.Players {
		s := bot.ForName(name, engine)
		if cs, ok := s.(*bot.CombinedStrategy); ok {
			closers = append(closers, cs)
		}
		cycle := board.Cycle(i)
		cycle.SetStrategy(s)
		start := startSlot(cfg, i)
		cycle.Touch(start.X, start.Y)
		alive[i] = true
		result.Strategies[i] = s.Name()
	}

	for turn := 1; ; turn++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Turns = turn

		for i := range cfg.Players {
			if !alive[i] {
				continue
			}
			cycle := board.Cycle(i)
			dir := cycle.Choose()
			dx, dy := dir.Delta()
			pos := cycle.Position()
			tx, ty := pos.X+dx, pos.Y+dy

			if board.Get(tx, ty) != tron.Free {
				alive[i] = false
				result.TrailLengths[i] = len(cycle.Path())
				result.Eliminated = append(result.Eliminated, i)
				cycle.Destroy()
				log.Debug().
					Str("matchId", result.MatchID).
					Int("player", i).
					Int("turn", turn).
					Str("move", string(dir)).
					Msg("Player eliminated")
				continue
			}
			cycle.Touch(tx, ty)
		}

		if obs != nil {
			obs(snapshot(result.MatchID, turn, board, alive, len(cfg.Players)))
		}

		if n, last := survivors(alive); n <= 1 {
			result.Winner = last // -1 when everyone crashed this turn
			break
		}
		if turn >= cfg.MaxTurns {
			result.Winner = longestTrail(board, alive)
			break
		}
	}

	for i := range cfg.Players {
		if alive[i] {
			result.TrailLengths[i] = len(board.Cycle(i).Path())
		}
	}

	log.Info().
		Str("matchId", result.MatchID).
		Int("winner", result.Winner).
		Int("turns", result.Turns).
		Msg("Match finished")
	return result, nil
}

// startSlot spreads the players over the four board quarters; a nonzero
// seed shuffles the slot assignment.
func startSlot(cfg Config, player int) tron.Coordinates {
	slots := []tron.Coordinates{
		{X: cfg.Width / 4, Y: cfg.Height / 2},
		{X: 3 * cfg.Width / 4, Y: cfg.Height / 2},
		{X: cfg.Width / 2, Y: cfg.Height / 4},
		{X: cfg.Width / 2, Y: 3 * cfg.Height / 4},
	}
	if cfg.Seed != 0 {
		rng := rand.New(rand.NewSource(cfg.Seed))
		rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })
	}
	return slots[player%len(slots)]
}

func survivors(alive []bool) (n, last int) {
	last = -1
	for i, a := range alive {
		if a {
			n++
			last = i
		}
	}
	return n, last
}

// longestTrail breaks a turn-cap finish: the living player with the most
// claimed cells wins, ties (including zero living players) are a draw.
func longestTrail(board *tron.Board, alive []bool) int {
	winner, best, tied := -1, -1, false
	for i, a := range alive {
		if !a {
			continue
		}
		n := len(board.Cycle(i).Path())
		switch {
		case n > best:
			winner, best, tied = i, n, false
		case n == best:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return winner
}

func snapshot(matchID string, turn int, board *tron.Board, alive []bool, players int) Frame {
	f := Frame{
		MatchID:   matchID,
		Turn:      turn,
		Width:     board.Width(),
		Height:    board.Height(),
		Cells:     board.Snapshot(),
		Alive:     append([]bool(nil), alive...),
		Positions: make([]tron.Coordinates, players),
	}
	for i := 0; i < players; i++ {
		f.Positions[i] = board.Cycle(i).Position()
	}
	return f
}
