package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/lightcycle/internal/config"
	"github.com/freeeve/lightcycle/internal/game"
)

func main() {
	maxWait := flag.Duration("max-wait", 0, "per-decision wait bound (0 = config/env default)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// Logs go to stderr; stdout is the move channel.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := config.Load()
	if *maxWait > 0 {
		cfg.MaxWait = *maxWait
	}

	session := game.NewSession(cfg)
	defer session.Close()

	log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Dur("maxWait", cfg.MaxWait).
		Msg("Bot ready")

	start := time.Now()
	if err := game.Run(os.Stdin, os.Stdout, session); err != nil {
		log.Fatal().Err(err).Msg("Game loop failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("Game completed")
}
