package engine

import (
	"war/experiments/metrics"
	"war/game"
)

type Engine interface {
	// Run plays the game until a player wins or the round limit is reached
	Run() (Result, error)
}

// Result is the outcome of a finished game.
type Result struct {
	GameID  string
	Winner  game.Player // Only meaningful when Decided
	Decided bool
	Reason  game.EndReason
	Rounds  int
	Trace   *game.Trace
	Metric  metrics.GameMetric
}

// WinnerName returns the winning player's name, "" when the game was not decided.
func (r Result) WinnerName() string {
	if !r.Decided {
		return ""
	}
	return r.Winner.String()
}
