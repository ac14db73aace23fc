package game

import "kingdom/random"

// Rules holds the tunable curves of battle and spy resolution.
type Rules interface {
	// AmpFactor scales casualties by the size of the targeted population.
	AmpFactor(population int) float64
	// UnitFactor scales casualties by the target's numbers relative to the opposing force.
	UnitFactor(targetCount, opposingCount int) float64
	// FortDamage draws fallback fortification damage for a turn's offense to defense ratio.
	FortDamage(ratio float64, src random.Source) int
	// DeathRisk is the per-spy probability of being lost on a mission.
	DeathRisk(spyStrength, sentryStrength float64) float64
}
