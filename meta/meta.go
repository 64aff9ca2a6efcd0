// meta/meta.go
package meta

// DECK_SIZE defines the number of cards in a standard deck.
const DECK_SIZE = RANKS * SUITS

// RANKS defines the number of card ranks, Two through Ace.
const RANKS = 13

// SUITS defines how many copies of each rank are in the deck.
const SUITS = 4

// FACE_DOWN defines how many cards each player places face down in a war.
const FACE_DOWN = 2

// CHIP_IN defines how many cards the loser surrenders per unresolved tie.
const CHIP_IN = 2

// MAX_ROUNDS caps batch games. 0 means no limit.
const MAX_ROUNDS = 10000

// WORKERS defines the number of goroutines for batch runs.
const WORKERS = 8
