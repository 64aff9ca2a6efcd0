package game

import "fmt"

// EndReason explains how a game finished.
type EndReason int

const (
	NotOver EndReason = iota
	EndEmptyDeck
	EndInsufficientForWar
	EndRoundLimit
)

func (r EndReason) String() string {
	switch r {
	case EndEmptyDeck:
		return "empty_deck"
	case EndInsufficientForWar:
		return "insufficient_for_war"
	case EndRoundLimit:
		return "round_limit"
	default:
		return "not_over"
	}
}

// GameState is everything that changes during a game of War: both draw piles,
// the cards on the table in the current battle chain and the counters.
type GameState struct {
	Decks   [2]*Pile  // Draw piles, indexed by Player
	Tables  [2][]Card // Cards on the table, indexed by Player, in the order played
	Round   int       // Battle attempts so far, wars included
	Pending int       // Unresolved ties in the current chain
	Winner  Player    // Only meaningful once Reason is set and not EndRoundLimit
	Reason  EndReason
}

// NewGameState deals cards between the two players.
func NewGameState(cards []Card) *GameState {
	p1, p2 := Deal(cards)
	return NewGameStateFromDecks(p1, p2)
}

// NewGameStateFromDecks starts a game from piles that were already dealt.
func NewGameStateFromDecks(p1, p2 *Pile) *GameState {
	return &GameState{
		Decks: [2]*Pile{p1, p2},
	}
}

func (gs *GameState) Deck(p Player) *Pile {
	return gs.Decks[p]
}

func (gs *GameState) Table(p Player) []Card {
	return gs.Tables[p]
}

// CardCount is the number of cards in play: both decks plus both tables.
func (gs *GameState) CardCount() int {
	total := 0
	for _, p := range Players {
		total += gs.Holding(p)
	}
	return total
}

// Holding is the number of cards a player owns right now, deck and table.
func (gs *GameState) Holding(p Player) int {
	return gs.Decks[p].Len() + len(gs.Tables[p])
}

func (gs *GameState) IsOver() bool {
	return gs.Reason != NotOver
}

// Decided reports whether the game ended with a winner.
func (gs *GameState) Decided() bool {
	return gs.Reason == EndEmptyDeck || gs.Reason == EndInsufficientForWar
}

// PlaceOnTable moves n cards from the front of p's deck onto p's table.
func (gs *GameState) PlaceOnTable(p Player, n int) ([]Card, error) {
	if gs.Decks[p].Len() < n {
		return nil, fmt.Errorf("%s has %d cards, needs %d", p, gs.Decks[p].Len(), n)
	}
	placed := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, _ := gs.Decks[p].Draw()
		placed = append(placed, c)
	}
	gs.Tables[p] = append(gs.Tables[p], placed...)
	return placed, nil
}

// Up returns the face-up card p played last.
func (gs *GameState) Up(p Player) (Card, bool) {
	t := gs.Tables[p]
	if len(t) == 0 {
		return 0, false
	}
	return t[len(t)-1], true
}

// Copy of the GameState.
func (gs GameState) Copy() *GameState {
	var tables [2][]Card
	for i, t := range gs.Tables {
		if t != nil {
			tables[i] = make([]Card, len(t))
			copy(tables[i], t)
		}
	}

	return &GameState{
		Decks:   [2]*Pile{gs.Decks[0].Copy(), gs.Decks[1].Copy()},
		Tables:  tables,
		Round:   gs.Round,
		Pending: gs.Pending,
		Winner:  gs.Winner,
		Reason:  gs.Reason,
	}
}
