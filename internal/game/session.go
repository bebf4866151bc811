// Package game ties the board, cycles, and strategies into the per-turn
// referee protocol.
package game

import (
	"github.com/freeeve/lightcycle/internal/bot"
	"github.com/freeeve/lightcycle/internal/config"
	"github.com/freeeve/lightcycle/pkg/tron"
)

// Session carries the board and cycle state across the turns of one game.
// The board lives for the whole session; cycles are registered lazily on
// first mention and persist even after elimination.
type Session struct {
	cfg      *config.Config
	board    *tron.Board
	combined []*bot.CombinedStrategy
}

// NewSession creates a session with an empty board sized from cfg.
func NewSession(cfg *config.Config) *Session {
	return &Session{
		cfg:   cfg,
		board: tron.NewBoard(cfg.Width, cfg.Height),
	}
}

// Board exposes the session's board, mainly for tests and debug dumps.
func (s *Session) Board() *tron.Board {
	return s.board
}

// IngestTurn applies one player's per-turn update. The referee reports an
// eliminated player with negative coordinates; its trail is erased so it
// no longer blocks movement. Otherwise the cycle advances to (x1, y1).
func (s *Session) IngestTurn(id, x0, y0, x1, y1 int) {
	cycle := s.board.Cycle(id)
	if x0 < 0 || y0 < 0 || x1 < 0 || y1 < 0 {
		cycle.Destroy()
		return
	}
	cycle.Touch(x1, y1)
}

// Decide returns the move for the given player, assigning the default
// combined strategy on the player's first decision.
func (s *Session) Decide(id int) tron.Direction {
	cycle := s.board.Cycle(id)
	if !cycle.HasStrategy() {
		cs := bot.NewCombined(s.cfg)
		s.combined = append(s.combined, cs)
		cycle.SetStrategy(cs)
	}
	return cycle.Choose()
}

// Close releases the worker pools behind any combined strategies the
// session created.
func (s *Session) Close() {
	for _, cs := range s.combined {
		cs.Close()
	}
	s.combined = nil
}
