package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"time"
	"war/config"
	"war/engine"
	"war/experiments"
	"war/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(os.Args[1:], config.DefaultEnvFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	level, err := cfg.Level()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log.Logger = log.Logger.Level(level)

	seed := cfg.ResolveSeed(time.Now())
	log.Info().Uint64("seed", seed).Msg("starting war")

	if cfg.Batch() {
		runBatch(cfg, seed)
		return
	}
	runGame(cfg, seed)
}

// runGame plays and narrates a single game on stdout.
func runGame(cfg config.Config, seed uint64) {
	out := bufio.NewWriter(os.Stdout)
	options := []engine.Option{engine.WithMaxRounds(cfg.MaxRounds)}
	if !cfg.Quiet {
		options = append(options, engine.WithOutput(out))
	}

	e := engine.SeededEngine(seed, options...)
	_, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Str("game", e.ID()).Msg("game failed")
	}
	if err := out.Flush(); err != nil {
		log.Fatal().Err(err).Msg("failed to flush output")
	}
}

// runBatch plays cfg.Games seeded games and writes their records to stdout.
func runBatch(cfg config.Config, seed uint64) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	maxRounds := cfg.MaxRounds
	if maxRounds == 0 {
		maxRounds = meta.MAX_ROUNDS
	}

	out := bufio.NewWriter(os.Stdout)
	_, err := experiments.RunBatch(ctx, experiments.BatchConfig{
		Games:     cfg.Games,
		Seed:      seed,
		Workers:   cfg.Workers,
		MaxRounds: maxRounds,
	}, out)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}
	if err := out.Flush(); err != nil {
		log.Fatal().Err(err).Msg("failed to flush output")
	}
}
