package metrics

import (
	"math/big"
	"sync"
	"sync/atomic"
	"time"
)

type BattleRecord struct {
	Game               int
	Seed               uint64
	Result             string // "Win" or "Lost"
	TurnsExecuted      int
	StartFortHitpoints int
	FinalFortHitpoints int
	AttackerLosses     int
	DefenderLosses     int
	AttackerExperience int
	DefenderExperience int
	Loot               *big.Int
}

type SpyRecord struct {
	Game        int
	Seed        uint64
	Mode        string
	Target      string
	Success     bool
	SpiesSent   int
	SpiesLost   int
	Percentage  int
	UnitsKilled int
}

type Summary struct {
	Games          int
	AttackerWins   int // Battle wins and successful spy missions
	TurnsExecuted  int
	FortsDestroyed int
	AttackerLosses int
	DefenderLosses int
	SpiesSent      int
	SpiesLost      int
	UnitsKilled    int
	Loot           *big.Int
	StartTime      time.Time
	Duration       time.Duration
}

// WinRate is the share of games the attacker won.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.AttackerWins) / float64(s.Games)
}

type Collector interface {
	Start()
	AddBattle(record BattleRecord)
	AddSpy(record SpyRecord)
	Complete() Summary
}

type collector struct {
	startTime      time.Time
	games          atomic.Int64
	attackerWins   atomic.Int64
	turns          atomic.Int64
	fortsDestroyed atomic.Int64
	attackerLosses atomic.Int64
	defenderLosses atomic.Int64
	spiesSent      atomic.Int64
	spiesLost      atomic.Int64
	unitsKilled    atomic.Int64

	mu   sync.Mutex
	loot big.Int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddBattle(record BattleRecord) {
	m.games.Add(1)
	if record.Result == "Win" {
		m.attackerWins.Add(1)
	}
	if record.StartFortHitpoints > 0 && record.FinalFortHitpoints == 0 {
		m.fortsDestroyed.Add(1)
	}
	m.turns.Add(int64(record.TurnsExecuted))
	m.attackerLosses.Add(int64(record.AttackerLosses))
	m.defenderLosses.Add(int64(record.DefenderLosses))

	if record.Loot != nil {
		m.mu.Lock()
		m.loot.Add(&m.loot, record.Loot)
		m.mu.Unlock()
	}
}

func (m *collector) AddSpy(record SpyRecord) {
	m.games.Add(1)
	if record.Success {
		m.attackerWins.Add(1)
	}
	m.spiesSent.Add(int64(record.SpiesSent))
	m.spiesLost.Add(int64(record.SpiesLost))
	m.unitsKilled.Add(int64(record.UnitsKilled))
}

func (m *collector) Complete() Summary {
	m.mu.Lock()
	loot := new(big.Int).Set(&m.loot)
	m.mu.Unlock()

	return Summary{
		Games:          int(m.games.Load()),
		AttackerWins:   int(m.attackerWins.Load()),
		TurnsExecuted:  int(m.turns.Load()),
		FortsDestroyed: int(m.fortsDestroyed.Load()),
		AttackerLosses: int(m.attackerLosses.Load()),
		DefenderLosses: int(m.defenderLosses.Load()),
		SpiesSent:      int(m.spiesSent.Load()),
		SpiesLost:      int(m.spiesLost.Load()),
		UnitsKilled:    int(m.unitsKilled.Load()),
		Loot:           loot,
		StartTime:      m.startTime,
		Duration:       time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                        {}
func (m *dummyCollector) AddBattle(record BattleRecord) {}
func (m *dummyCollector) AddSpy(record SpyRecord)       {}
func (m *dummyCollector) Complete() Summary             { return Summary{Loot: new(big.Int)} }
