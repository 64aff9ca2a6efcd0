package game

import "fmt"

// EventType is the kind of narrated event.
type EventType int

const (
	DeckSizeEvent EventType = iota
	RoundEvent
	DrewEvent
	WarEvent
	FaceDownEvent
	AddedEvent
	GrabbedEvent
	NothingToGrabEvent
	ShortForWarEvent
	RoundLimitEvent
	WonEvent
)

// Event is one line of the game narration.
type Event struct {
	Type   EventType
	Round  int
	Player Player // Acting player: who drew, placed, received or won
	Card   Card
	Count  int
}

func (e Event) String() string {
	switch e.Type {
	case DeckSizeEvent:
		return fmt.Sprintf("Have %d cards", e.Count)
	case RoundEvent:
		return fmt.Sprintf("Round %d", e.Round)
	case DrewEvent:
		return fmt.Sprintf("%s drew card %s", e.Player, e.Card)
	case WarEvent:
		return "Draw, waging war in next round"
	case FaceDownEvent:
		return fmt.Sprintf("%s placed %d cards face down", e.Player, e.Count)
	case AddedEvent:
		return fmt.Sprintf("Added %d to %s's deck", e.Card.Value(), e.Player)
	case GrabbedEvent:
		return fmt.Sprintf("%s wins draw - grabbed %d from %s", e.Player, e.Card.Value(), e.Player.Opponent())
	case NothingToGrabEvent:
		return fmt.Sprintf("%s wins draw - %s has no more cards to take.", e.Player, e.Player.Opponent())
	case ShortForWarEvent:
		return fmt.Sprintf("%s does not have enough cards for war", e.Player)
	case RoundLimitEvent:
		return fmt.Sprintf("No winner after %d rounds.", e.Round)
	case WonEvent:
		return fmt.Sprintf("%s has won.", e.Player)
	default:
		return fmt.Sprintf("unknown event %d", e.Type)
	}
}

// Trace is the append-only record of a game.
type Trace struct {
	events []Event
}

func (t *Trace) Append(e Event) {
	t.events = append(t.events, e)
}

// Events returns a copy of the recorded events.
func (t *Trace) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Lines renders every event, one line each.
func (t *Trace) Lines() []string {
	lines := make([]string, len(t.events))
	for i, e := range t.events {
		lines[i] = e.String()
	}
	return lines
}

// Count returns how many events of the given type were recorded.
func (t *Trace) Count(typ EventType) int {
	n := 0
	for _, e := range t.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
