package game

// Player identifies one of the two seats at the table.
type Player int

const (
	Player1 Player = iota
	Player2
)

// Players lists both seats in the order they draw.
var Players = [2]Player{Player1, Player2}

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	if p == Player1 {
		return "Player 1"
	}
	return "Player 2"
}

// Outcome is the result of comparing two face-up cards.
type Outcome int

const (
	Tie Outcome = iota
	Player1Wins
	Player2Wins
)

// Compare ranks the cards revealed by Player 1 and Player 2.
func Compare(p1, p2 Card) Outcome {
	switch {
	case p1 > p2:
		return Player1Wins
	case p2 > p1:
		return Player2Wins
	default:
		return Tie
	}
}

// Winner returns the player who took the battle, false on a tie.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case Player1Wins:
		return Player1, true
	case Player2Wins:
		return Player2, true
	default:
		return 0, false
	}
}

func (o Outcome) String() string {
	switch o {
	case Player1Wins:
		return "player1"
	case Player2Wins:
		return "player2"
	default:
		return "tie"
	}
}
