package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Run plays the referee protocol until EOF: each turn it reads the player
// count N and our player number P, then for each player a previous and
// current coordinate pair (negative values meaning eliminated), and writes
// the chosen direction on its own line.
func Run(r io.Reader, w io.Writer, s *Session) error {
	in := bufio.NewReader(r)

	for turn := 0; ; turn++ {
		var n, p int
		if _, err := fmt.Fscan(in, &n, &p); err != nil {
			if errors.Is(err, io.EOF) {
				log.Info().Int("turns", turn).Msg("Input closed, game over")
				return nil
			}
			return fmt.Errorf("turn %d: read header: %w", turn, err)
		}

		for i := 0; i < n; i++ {
			var x0, y0, x1, y1 int
			if _, err := fmt.Fscan(in, &x0, &y0, &x1, &y1); err != nil {
				return fmt.Errorf("turn %d: read player %d: %w", turn, i, err)
			}
			s.IngestTurn(i, x0, y0, x1, y1)
		}

		dir := s.Decide(p)
		if _, err := fmt.Fprintln(w, dir); err != nil {
			return fmt.Errorf("turn %d: write move: %w", turn, err)
		}
		log.Debug().Int("turn", turn).Str("move", string(dir)).Msg("Move chosen")
	}
}
