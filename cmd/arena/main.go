package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/lightcycle/internal/arena"
	"github.com/freeeve/lightcycle/internal/config"
	"github.com/freeeve/lightcycle/internal/logger"
)

func main() {
	var (
		players  string
		numGames int
		workers  int
		maxTurns int
		seed     int64
		jsonOut  bool
		watch    bool
		delay    time.Duration
		listen   string
		debug    bool
	)

	flag.StringVar(&players, "p", "combined,combined", "comma-separated strategies (distance, space, wallhug, combined)")
	flag.IntVar(&numGames, "n", 1, "number of matches to run")
	flag.IntVar(&workers, "workers", 1, "concurrency (parallel matches)")
	flag.IntVar(&maxTurns, "max-turns", 0, "turn cap before deciding by trail length (0 = board area)")
	flag.Int64Var(&seed, "seed", 0, "base seed for start placement (0 = fixed slots)")
	flag.BoolVar(&jsonOut, "json", false, "output results as JSON")
	flag.BoolVar(&watch, "watch", false, "render the board after every turn (forces workers=1)")
	flag.DurationVar(&delay, "delay", 100*time.Millisecond, "frame delay in watch mode")
	flag.StringVar(&listen, "listen", "", "serve a WebSocket live view on this address (e.g. :8080)")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger.Init()
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	names := strings.Split(players, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	var hub *arena.Hub
	if listen != "" {
		hub = arena.NewHub()
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", hub.ServeWS)
		go func() {
			log.Info().Str("addr", listen).Msg("Live view listening")
			if err := http.ListenAndServe(listen, mux); err != nil {
				log.Error().Err(err).Msg("Live view server failed")
			}
		}()
	}

	if watch || hub != nil {
		workers = 1
	}

	engine := config.Load()
	results := make([]*arena.Result, numGames)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	var mu sync.Mutex
	errCount := 0

	for i := 0; i < numGames; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			matchSeed := seed
			if seed != 0 {
				matchSeed = seed + int64(idx)
			}

			cfg := arena.Config{
				Width:    engine.Width,
				Height:   engine.Height,
				Players:  names,
				MaxTurns: maxTurns,
				Seed:     matchSeed,
				Engine:   engine,
			}

			res, err := arena.RunMatch(ctx, cfg, observer(hub, watch, delay))
			if err != nil {
				mu.Lock()
				errCount++
				mu.Unlock()
				log.Error().Err(err).Int("match", idx).Msg("Match failed")
				return
			}
			if hub != nil {
				hub.Broadcast(arena.Event{Type: arena.EventMatchEnded, MatchID: res.MatchID, Data: res})
			}
			results[idx] = res
		}(i)
	}

	wg.Wait()

	if numGames > 0 && errCount == numGames {
		log.Fatal().Int("failed", errCount).Msg("All matches failed")
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode results")
		}
		return
	}

	printSummary(names, results)
}

// observer builds the per-frame callback for a match, or nil when nobody
// is watching.
func observer(hub *arena.Hub, watch bool, delay time.Duration) arena.Observer {
	if hub == nil && !watch {
		return nil
	}
	return func(f arena.Frame) {
		if hub != nil && f.Turn == 1 {
			hub.Broadcast(arena.Event{Type: arena.EventMatchStarted, MatchID: f.MatchID, Data: map[string]int{
				"width":  f.Width,
				"height": f.Height,
			}})
		}
		if watch {
			fmt.Fprint(os.Stderr, "\033[H\033[2J")
			fmt.Fprintf(os.Stderr, "turn %d\n%s", f.Turn, arena.Render(f))
			time.Sleep(delay)
		}
		if hub != nil {
			hub.Broadcast(arena.Event{Type: arena.EventFrame, MatchID: f.MatchID, Data: f})
		}
	}
}

func printSummary(names []string, results []*arena.Result) {
	wins := make([]int, len(names))
	draws, played, totalTurns := 0, 0, 0

	for _, r := range results {
		if r == nil {
			continue
		}
		played++
		totalTurns += r.Turns
		if r.Winner < 0 {
			draws++
		} else {
			wins[r.Winner]++
		}
	}

	fmt.Printf("matches: %d\n", played)
	for i, name := range names {
		fmt.Printf("  player %d (%s): %d wins\n", i, name, wins[i])
	}
	fmt.Printf("  draws: %d\n", draws)
	if played > 0 {
		fmt.Printf("  avg turns: %.1f\n", float64(totalTurns)/float64(played))
	}
}
