package game

type Rules interface {
	// FaceDownCards is how many cards each player puts face down before the deciding card of a war.
	FaceDownCards() int
	// ChipInPerTie is how many cards the battle loser surrenders from their deck per tie in the chain.
	ChipInPerTie() int
}
