package engine

import (
	"fmt"
	"io"
	"war/experiments/metrics"
	"war/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local runs a game of War in the calling goroutine.
type Local struct {
	State     *game.GameState
	rules     game.Rules
	out       io.Writer
	writeErr  error
	trace     *game.Trace
	maxRounds int
	observer  func(*game.GameState)
	collector metrics.Collector
	logger    zerolog.Logger
	id        string
	seed      uint64
}

// WithOutput narrates the game to w, one line per event, as it is played.
func WithOutput(w io.Writer) Option {
	return func(e *Local) {
		e.out = w
	}
}

// WithMaxRounds stops an undecided game after the given number of rounds. 0 means no limit.
func WithMaxRounds(rounds int) Option {
	return func(e *Local) {
		e.maxRounds = rounds
	}
}

func WithRules(r game.Rules) Option {
	return func(e *Local) {
		e.rules = r
	}
}

// WithObserver is called with a copy of the state after every round.
func WithObserver(fn func(*game.GameState)) Option {
	return func(e *Local) {
		e.observer = fn
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Local) {
		e.logger = l
	}
}

func WithGameID(id string) Option {
	return func(e *Local) {
		e.id = id
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Local) {
		e.collector = c
	}
}

func withSeed(seed uint64) Option {
	return func(e *Local) {
		e.seed = seed
	}
}

// LocalEngine prepares a game from an already dealt state.
func LocalEngine(state *game.GameState, options ...Option) *Local {
	if state == nil || state.Decks[game.Player1] == nil || state.Decks[game.Player2] == nil {
		panic("engine needs a dealt game state")
	}

	e := &Local{
		State:     state,
		rules:     game.NewStandardRules(),
		out:       io.Discard,
		trace:     &game.Trace{},
		collector: metrics.NewCollector(),
		logger:    log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	if e.id == "" {
		e.id = uuid.NewString()
	}
	return e
}

// SeededEngine shuffles a fresh deck with seed and deals it.
func SeededEngine(seed uint64, options ...Option) *Local {
	deck := game.NewDeck()
	game.Shuffle(deck, game.NewSource(seed))
	return LocalEngine(game.NewGameState(deck), append([]Option{withSeed(seed)}, options...)...)
}

func (e *Local) ID() string {
	return e.id
}

// Run executes the battle loop until the game is over.
func (e *Local) Run() (Result, error) {
	e.collector.Start(e.id, e.seed)
	e.logger.Debug().
		Str("game", e.id).
		Int("player1", e.State.Deck(game.Player1).Len()).
		Int("player2", e.State.Deck(game.Player2).Len()).
		Msg("game starting")

	e.emit(game.Event{Type: game.DeckSizeEvent, Count: e.State.CardCount()})

	for !e.State.IsOver() {
		e.step()
		if e.observer != nil {
			e.observer(e.State.Copy())
		}
	}

	metric := e.collector.Complete(e.State)
	result := Result{
		GameID:  e.id,
		Winner:  e.State.Winner,
		Decided: e.State.Decided(),
		Reason:  e.State.Reason,
		Rounds:  e.State.Round,
		Trace:   e.trace,
		Metric:  metric,
	}

	e.logger.Info().
		Str("game", e.id).
		Str("winner", result.WinnerName()).
		Stringer("reason", result.Reason).
		Int("rounds", result.Rounds).
		Int("wars", metric.Wars).
		Int("player1_cards", e.State.Holding(game.Player1)).
		Int("player2_cards", e.State.Holding(game.Player2)).
		Msg("game over")

	if e.writeErr != nil {
		return result, fmt.Errorf("failed to write game narration: %w", e.writeErr)
	}
	return result, nil
}

// step plays one battle attempt. A pending tie turns it into a war escalation.
func (e *Local) step() {
	gs := e.State

	// Game over is checked before anything is drawn
	if gs.Deck(game.Player2).Len() == 0 {
		e.finish(game.Player1, game.EndEmptyDeck)
		return
	}
	if gs.Deck(game.Player1).Len() == 0 {
		e.finish(game.Player2, game.EndEmptyDeck)
		return
	}
	if e.maxRounds > 0 && gs.Round >= e.maxRounds {
		gs.Reason = game.EndRoundLimit
		e.emit(game.Event{Type: game.RoundLimitEvent, Round: gs.Round})
		return
	}

	gs.Round++
	e.emit(game.Event{Type: game.RoundEvent, Round: gs.Round})

	if gs.Pending > 0 {
		if loser, short := e.shortForWar(); short {
			e.emit(game.Event{Type: game.ShortForWarEvent, Round: gs.Round, Player: loser})
			e.finish(loser.Opponent(), game.EndInsufficientForWar)
			return
		}
		for _, p := range game.Players {
			placed := e.place(p, e.rules.FaceDownCards())
			e.emit(game.Event{Type: game.FaceDownEvent, Round: gs.Round, Player: p, Count: len(placed)})
		}
	}

	var up [2]game.Card
	for _, p := range game.Players {
		e.place(p, 1)
		up[p], _ = gs.Up(p)
		e.emit(game.Event{Type: game.DrewEvent, Round: gs.Round, Player: p, Card: up[p]})
	}

	winner, ok := game.Compare(up[game.Player1], up[game.Player2]).Winner()
	if !ok {
		gs.Pending++
		e.collector.AddWar(gs.Pending)
		e.logger.Debug().Str("game", e.id).Int("round", gs.Round).Int("depth", gs.Pending).Msg("war declared")
		e.emit(game.Event{Type: game.WarEvent, Round: gs.Round})
		return
	}
	e.collect(winner)
}

func (e *Local) place(p game.Player, n int) []game.Card {
	placed, err := e.State.PlaceOnTable(p, n)
	if err != nil {
		// Deck sizes are checked before every placement
		panic(err)
	}
	return placed
}

// shortForWar finds a player without enough cards to go to war. When both are
// short the one with fewer cards loses, Player 2 on equal counts.
func (e *Local) shortForWar() (game.Player, bool) {
	need := game.WarCards(e.rules)
	n1 := e.State.Deck(game.Player1).Len()
	n2 := e.State.Deck(game.Player2).Len()

	switch {
	case n1 < need && n2 < need:
		if n1 < n2 {
			return game.Player1, true
		}
		return game.Player2, true
	case n1 < need:
		return game.Player1, true
	case n2 < need:
		return game.Player2, true
	default:
		return 0, false
	}
}

// collect hands the whole table to the battle winner, loser's cards first,
// then takes the chip-in for every tie in the chain from the loser's deck.
func (e *Local) collect(winner game.Player) {
	gs := e.State
	loser := winner.Opponent()
	deck := gs.Deck(winner)

	for _, from := range []game.Player{loser, winner} {
		for _, c := range gs.Tables[from] {
			deck.Add(c)
			e.emit(game.Event{Type: game.AddedEvent, Round: gs.Round, Player: winner, Card: c})
		}
		gs.Tables[from] = nil
	}

	for i := 0; i < gs.Pending*e.rules.ChipInPerTie(); i++ {
		c, ok := gs.Deck(loser).Draw()
		if !ok {
			e.emit(game.Event{Type: game.NothingToGrabEvent, Round: gs.Round, Player: winner})
			continue
		}
		deck.Add(c)
		e.collector.AddChipIn()
		e.emit(game.Event{Type: game.GrabbedEvent, Round: gs.Round, Player: winner, Card: c})
	}

	gs.Pending = 0
	e.collector.AddBattle(winner)
}

func (e *Local) finish(winner game.Player, reason game.EndReason) {
	e.State.Winner = winner
	e.State.Reason = reason
	e.emit(game.Event{Type: game.WonEvent, Round: e.State.Round, Player: winner})
}

// emit records the event and narrates it. The first write error stops narration.
func (e *Local) emit(ev game.Event) {
	e.trace.Append(ev)
	if e.writeErr != nil {
		return
	}
	if _, err := fmt.Fprintln(e.out, ev.String()); err != nil {
		e.writeErr = err
	}
}
