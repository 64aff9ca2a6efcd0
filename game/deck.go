package game

import (
	"war/meta"

	"golang.org/x/exp/rand"
)

// Source picks a uniform index in [0, n).
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded generator usable by Shuffle.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewDeck returns the 52 cards of a standard deck, four of each rank, in rank order.
func NewDeck() []Card {
	deck := make([]Card, 0, meta.DECK_SIZE)
	for rank := 0; rank < meta.RANKS; rank++ {
		for suit := 0; suit < meta.SUITS; suit++ {
			deck = append(deck, Card(rank))
		}
	}
	return deck
}

// Shuffle permutes cards in place with Fisher-Yates: each index i is swapped
// with a uniformly chosen index in [i, n).
func Shuffle(cards []Card, src Source) {
	n := len(cards)
	for i := 0; i < n; i++ {
		j := i + src.Intn(n-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deal splits cards in half. Player 1 gets the first half, Player 2 the rest,
// both in the order given.
func Deal(cards []Card) (p1, p2 *Pile) {
	half := len(cards) / 2
	return NewPile(cards[:half]...), NewPile(cards[half:]...)
}
