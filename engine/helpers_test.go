package engine

import (
	"math/big"

	"kingdom/game"
	"kingdom/random"
)

// scriptedSource replays a fixed sequence of draws and never shuffles.
type scriptedSource struct {
	draws []float64
	next  int
}

func script(draws ...float64) *scriptedSource {
	return &scriptedSource{draws: draws}
}

func (s *scriptedSource) Float64() float64 {
	if len(s.draws) == 0 {
		return 0.5
	}
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

func (s *scriptedSource) Intn(n int) int { return 0 }

func (s *scriptedSource) Perm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// riskyRules overrides the death risk so that successful missions still lose
// spies and kill units.
type riskyRules struct {
	*game.StandardRules
	risk float64
}

func (r riskyRules) DeathRisk(spy, sentry float64) float64 { return r.risk }

var _ random.Source = (*scriptedSource)(nil)

func newTestEngine(src random.Source, options ...Option) *Engine {
	return New(append([]Option{WithSource(src)}, options...)...)
}

// scenarioA builds an attacker with 500 offense against a defender whose
// fort-boosted defense is 400.
func scenarioA() (*game.CombatantSnapshot, *game.CombatantSnapshot) {
	attacker := &game.CombatantSnapshot{
		ID: 1,
		Units: []game.UnitEntry{
			{Type: game.Offense, Level: 1, Quantity: 100},
			{Type: game.Offense, Level: 2, Quantity: 10},
			{Type: game.Defense, Level: 1, Quantity: 250},
		},
		Population: 1000,
		Level:      3,
		Gold:       big.NewInt(0),
		FortLevel:  1,
	}
	defender := &game.CombatantSnapshot{
		ID: 2,
		Units: []game.UnitEntry{
			{Type: game.Citizen, Level: 1, Quantity: 200},
			{Type: game.Defense, Level: 1, Quantity: 125},
		},
		Population:    500,
		Level:         3,
		Gold:          big.NewInt(1_000_000),
		GoldInBank:    big.NewInt(250_000),
		FortLevel:     2,
		FortHitpoints: 100, // 2/3 of 150 hitpoints, a 6.67% boost
	}
	return attacker, defender
}

// spyPair builds snapshots with the given spy and sentry strengths made of
// level 1 units and sandals.
func spyPair(spyUnits, spyBoots, sentryUnits, sentryBoots int) (*game.CombatantSnapshot, *game.CombatantSnapshot) {
	attacker := &game.CombatantSnapshot{
		ID:    1,
		Units: []game.UnitEntry{{Type: game.Spy, Level: 1, Quantity: spyUnits}},
		Items: []game.ItemEntry{{Type: game.Boots, Usage: game.Spy, Level: 1, Quantity: spyBoots}},
	}
	defender := &game.CombatantSnapshot{
		ID: 2,
		Units: []game.UnitEntry{
			{Type: game.Citizen, Level: 1, Quantity: 40},
			{Type: game.Worker, Level: 1, Quantity: 20},
			{Type: game.Offense, Level: 2, Quantity: 50},
			{Type: game.Offense, Level: 1, Quantity: 2},
			{Type: game.Defense, Level: 1, Quantity: 30},
			{Type: game.Sentry, Level: 1, Quantity: sentryUnits},
		},
		Items:         []game.ItemEntry{{Type: game.Boots, Usage: game.Sentry, Level: 1, Quantity: sentryBoots}},
		GoldInBank:    big.NewInt(12345),
		FortLevel:     4,
		FortHitpoints: 120,
	}
	return attacker, defender
}
