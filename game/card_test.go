package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCard(t *testing.T) {
	tests := []struct {
		card  Card
		value int
		name  string
	}{
		{Two, 2, "Two"},
		{Ten, 10, "Ten"},
		{Jack, 11, "Jack"},
		{King, 13, "King"},
		{Ace, 14, "Ace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.card.Valid())
			require.Equal(t, tt.value, tt.card.Value())
			require.Equal(t, tt.name, tt.card.Name())
		})
	}

	require.Equal(t, "2 (Two)", Two.String())
	require.Equal(t, "14 (Ace)", Ace.String())
	require.False(t, Card(13).Valid())
	require.Equal(t, "Unknown", Card(13).Name())
}

func TestCompare(t *testing.T) {
	require.Equal(t, Player1Wins, Compare(Ace, King))
	require.Equal(t, Player2Wins, Compare(Two, Three))
	require.Equal(t, Tie, Compare(Seven, Seven))

	winner, ok := Player1Wins.Winner()
	require.True(t, ok)
	require.Equal(t, Player1, winner)

	winner, ok = Player2Wins.Winner()
	require.True(t, ok)
	require.Equal(t, Player2, winner)

	_, ok = Tie.Winner()
	require.False(t, ok)
}

func TestPlayer(t *testing.T) {
	require.Equal(t, Player2, Player1.Opponent())
	require.Equal(t, Player1, Player2.Opponent())
	require.Equal(t, "Player 1", Player1.String())
	require.Equal(t, "Player 2", Player2.String())
}
