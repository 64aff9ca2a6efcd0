package experiments

import (
	"context"
	"fmt"
	"io"
	"war/engine"
	"war/experiments/metrics"
	"war/game"
	"war/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// BatchConfig describes a run of independent seeded games.
type BatchConfig struct {
	Games     int
	Seed      uint64 // Game i is shuffled with Seed+i
	Workers   int
	MaxRounds int
}

// Summary aggregates the games of a batch.
type Summary struct {
	Games     int
	Wins      [2]int // Indexed by game.Player
	Undecided int
	Rounds    int // Across all games
	Wars      int
}

func (s Summary) AverageRounds() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Rounds) / float64(s.Games)
}

// WinRate is the share of decided games won by p.
func (s Summary) WinRate(p game.Player) float64 {
	decided := s.Games - s.Undecided
	if decided == 0 {
		return 0
	}
	return float64(s.Wins[p]) / float64(decided)
}

// RunBatch plays every game of the batch on a pool of workers and writes one
// CSV record per game to w, in seed order. Games are not narrated.
func RunBatch(ctx context.Context, cfg BatchConfig, w io.Writer) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("batch needs at least one game, got %d", cfg.Games)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = meta.WORKERS
	}

	log.Info().Msgf("starting batch of %d games on %d workers...", cfg.Games, workers)

	records := make([]metrics.GameRecord, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := runGame(cfg.Seed+uint64(i), cfg.MaxRounds)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			records[i] = metrics.GameRecord{ID: i + 1, GameMetric: result.Metric}
			log.Debug().Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, result.WinnerName())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := summarize(records)
	log.Info().
		Int("games", summary.Games).
		Float64("player1_win_rate", summary.WinRate(game.Player1)).
		Int("undecided", summary.Undecided).
		Float64("average_rounds", summary.AverageRounds()).
		Msg("completed batch")

	if err := metrics.NewWriter(w).WriteGameRecords(records); err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")
	return summary, nil
}

// runGame plays a single seeded game without narration
func runGame(seed uint64, maxRounds int) (engine.Result, error) {
	e := engine.SeededEngine(seed, engine.WithMaxRounds(maxRounds))
	return e.Run()
}

func summarize(records []metrics.GameRecord) Summary {
	s := Summary{Games: len(records)}
	for _, r := range records {
		s.Rounds += r.Rounds
		s.Wars += r.Wars
		if !r.Decided {
			s.Undecided++
			continue
		}
		s.Wins[r.Player]++
	}
	return s
}
