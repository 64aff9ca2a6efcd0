package game

import (
	"fmt"
	"war/meta"
)

// Card is a rank from 0 (Two) to 12 (Ace). Suits do not affect War, so they are not kept.
type Card uint8

const (
	Two Card = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// valueOffset aligns a rank with the number printed on the card
const valueOffset = 2

var rankNames = [meta.RANKS]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

// Valid reports whether the rank is one of the 13 ranks of a standard deck.
func (c Card) Valid() bool {
	return int(c) < meta.RANKS
}

// Value is the face value, 2 for Two up to 14 for Ace.
func (c Card) Value() int {
	return int(c) + valueOffset
}

func (c Card) Name() string {
	if !c.Valid() {
		return "Unknown"
	}
	return rankNames[c]
}

func (c Card) String() string {
	return fmt.Sprintf("%d (%s)", c.Value(), c.Name())
}
