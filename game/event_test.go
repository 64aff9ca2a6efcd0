package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Event{Type: DeckSizeEvent, Count: 52}, "Have 52 cards"},
		{Event{Type: RoundEvent, Round: 12}, "Round 12"},
		{Event{Type: DrewEvent, Player: Player1, Card: Two}, "Player 1 drew card 2 (Two)"},
		{Event{Type: DrewEvent, Player: Player2, Card: Ace}, "Player 2 drew card 14 (Ace)"},
		{Event{Type: WarEvent}, "Draw, waging war in next round"},
		{Event{Type: FaceDownEvent, Player: Player2, Count: 2}, "Player 2 placed 2 cards face down"},
		{Event{Type: AddedEvent, Player: Player1, Card: Queen}, "Added 12 to Player 1's deck"},
		{Event{Type: GrabbedEvent, Player: Player2, Card: Five}, "Player 2 wins draw - grabbed 5 from Player 1"},
		{Event{Type: NothingToGrabEvent, Player: Player1}, "Player 1 wins draw - Player 2 has no more cards to take."},
		{Event{Type: ShortForWarEvent, Player: Player1}, "Player 1 does not have enough cards for war"},
		{Event{Type: RoundLimitEvent, Round: 100}, "No winner after 100 rounds."},
		{Event{Type: WonEvent, Player: Player2}, "Player 2 has won."},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.event.String())
		})
	}
}

func TestTrace(t *testing.T) {
	var trace Trace
	trace.Append(Event{Type: RoundEvent, Round: 1})
	trace.Append(Event{Type: WarEvent, Round: 1})
	trace.Append(Event{Type: RoundEvent, Round: 2})

	require.Len(t, trace.Events(), 3)
	require.Equal(t, 2, trace.Count(RoundEvent))
	require.Equal(t, []string{"Round 1", "Draw, waging war in next round", "Round 2"}, trace.Lines())

	events := trace.Events()
	events[0].Round = 99
	require.Equal(t, 1, trace.Events()[0].Round, "Events returns a copy")
}
