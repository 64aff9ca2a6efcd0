package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState(NewDeck())

	require.Equal(t, 26, gs.Deck(Player1).Len())
	require.Equal(t, 26, gs.Deck(Player2).Len())
	require.Equal(t, 52, gs.CardCount())
	require.Zero(t, gs.Round)
	require.Zero(t, gs.Pending)
	require.False(t, gs.IsOver())
	require.False(t, gs.Decided())
}

func TestPlaceOnTable(t *testing.T) {
	gs := NewGameStateFromDecks(NewPile(Two, Three, Four), NewPile(Ace))

	placed, err := gs.PlaceOnTable(Player1, 2)
	require.NoError(t, err)
	require.Equal(t, []Card{Two, Three}, placed)
	require.Equal(t, []Card{Two, Three}, gs.Table(Player1))
	require.Equal(t, 1, gs.Deck(Player1).Len())
	require.Equal(t, 4, gs.CardCount(), "Placing cards keeps them in play")
	require.Equal(t, 3, gs.Holding(Player1))

	up, ok := gs.Up(Player1)
	require.True(t, ok)
	require.Equal(t, Three, up)

	_, err = gs.PlaceOnTable(Player2, 2)
	require.Error(t, err)
	require.Equal(t, 1, gs.Deck(Player2).Len(), "A failed placement takes nothing")

	_, ok = gs.Up(Player2)
	require.False(t, ok)
}

func TestGameStateCopy(t *testing.T) {
	gs := NewGameStateFromDecks(NewPile(Two, Three), NewPile(Four, Five))
	_, err := gs.PlaceOnTable(Player1, 1)
	require.NoError(t, err)
	gs.Round = 3
	gs.Pending = 1

	c := gs.Copy()
	require.Equal(t, gs.Deck(Player1).Cards(), c.Deck(Player1).Cards())
	require.Equal(t, gs.Table(Player1), c.Table(Player1))
	require.Equal(t, 3, c.Round)
	require.Equal(t, 1, c.Pending)

	c.Deck(Player2).Draw()
	c.Tables[Player1][0] = Ace
	require.Equal(t, 2, gs.Deck(Player2).Len())
	require.Equal(t, Two, gs.Table(Player1)[0])
}

func TestEndReason(t *testing.T) {
	gs := NewGameStateFromDecks(NewPile(), NewPile())

	gs.Reason = EndInsufficientForWar
	require.True(t, gs.IsOver())
	require.True(t, gs.Decided())

	gs.Reason = EndRoundLimit
	require.True(t, gs.IsOver())
	require.False(t, gs.Decided())
	require.Equal(t, "round_limit", gs.Reason.String())
}
