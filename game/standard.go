package game

import "war/meta"

type StandardRules struct {
	FaceDown int
	ChipIn   int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		FaceDown: meta.FACE_DOWN,
		ChipIn:   meta.CHIP_IN,
	}
}

func (sr *StandardRules) FaceDownCards() int {
	return sr.FaceDown
}

func (sr *StandardRules) ChipInPerTie() int {
	return sr.ChipIn
}

// WarCards is the number of cards a player needs in their deck to fight a war.
func WarCards(r Rules) int {
	return r.FaceDownCards() + 1
}
