package game

import "github.com/gammazero/deque"

// Pile is a player's face-down draw pile. Cards are drawn from the front and
// won cards are added to the back.
type Pile struct {
	cards deque.Deque[Card]
}

func NewPile(cards ...Card) *Pile {
	p := &Pile{}
	p.Add(cards...)
	return p
}

func (p *Pile) Len() int {
	return p.cards.Len()
}

// Draw removes the front card. It returns false if the pile is empty.
func (p *Pile) Draw() (Card, bool) {
	if p.cards.Len() == 0 {
		return 0, false
	}
	return p.cards.PopFront(), true
}

// Add appends cards to the back of the pile in the given order.
func (p *Pile) Add(cards ...Card) {
	for _, c := range cards {
		p.cards.PushBack(c)
	}
}

// Cards returns the pile front to back.
func (p *Pile) Cards() []Card {
	out := make([]Card, p.cards.Len())
	for i := range out {
		out[i] = p.cards.At(i)
	}
	return out
}

func (p *Pile) Copy() *Pile {
	return NewPile(p.Cards()...)
}
