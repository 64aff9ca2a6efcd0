package metrics

import (
	"time"
	"war/game"
)

type GameMetric struct {
	ID         string // Game ID
	Seed       uint64
	Winner     string // "" when the round limit stopped the game
	Player     game.Player
	Decided    bool // Player holds the winner only when set
	Reason     game.EndReason
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Rounds     int
	Battles    [2]int // Battles won, indexed by game.Player
	Wars       int    // Ties, each one escalates the chain
	DeepestWar int    // Most ties in a single chain
	ChipIns    int    // Cards taken from a loser's deck after wars
}

type Collector interface {
	Start(id string, seed uint64)
	AddBattle(winner game.Player)
	AddWar(depth int)
	AddChipIn()
	Complete(gs *game.GameState) GameMetric
}

type collector struct {
	metric GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(id string, seed uint64) {
	m.metric = GameMetric{
		ID:        id,
		Seed:      seed,
		StartTime: time.Now(),
	}
}

func (m *collector) AddBattle(winner game.Player) {
	m.metric.Battles[winner]++
}

func (m *collector) AddWar(depth int) {
	m.metric.Wars++
	m.metric.DeepestWar = max(m.metric.DeepestWar, depth)
}

func (m *collector) AddChipIn() {
	m.metric.ChipIns++
}

func (m *collector) Complete(gs *game.GameState) GameMetric {
	m.metric.EndTime = time.Now()
	m.metric.Duration = m.metric.EndTime.Sub(m.metric.StartTime)
	m.metric.Rounds = gs.Round
	m.metric.Reason = gs.Reason
	m.metric.Decided = gs.Decided()
	if m.metric.Decided {
		m.metric.Player = gs.Winner
		m.metric.Winner = gs.Winner.String()
	}
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(id string, seed uint64)           {}
func (m *dummyCollector) AddBattle(winner game.Player)           {}
func (m *dummyCollector) AddWar(depth int)                       {}
func (m *dummyCollector) AddChipIn()                             {}
func (m *dummyCollector) Complete(gs *game.GameState) GameMetric { return GameMetric{} }
