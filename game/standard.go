package game

import (
	"math"

	"kingdom/meta"
	"kingdom/random"
	"kingdom/utils"
)

// FortDamageTier is a half-open [Min, Max) damage range used while the
// offense to defense ratio is at most UpTo.
type FortDamageTier struct {
	UpTo float64
	Min  int
	Max  int
}

type StandardRules struct {
	AmpBase       float64
	AmpSpread     float64
	AmpScale      float64
	UnitFactorMin float64
	UnitFactorMax float64
	FortTiers     []FortDamageTier // ordered by UpTo; the last tier catches everything above
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		AmpBase:       1,
		AmpSpread:     24,
		AmpScale:      500,
		UnitFactorMin: meta.UNIT_FACTOR_MIN,
		UnitFactorMax: meta.UNIT_FACTOR_MAX,
		FortTiers: []FortDamageTier{
			{UpTo: 0.05, Min: 0, Max: 1},
			{UpTo: 0.5, Min: 0, Max: 3},
			{UpTo: 1.3, Min: 3, Max: 8},
			{UpTo: math.Inf(1), Min: 6, Max: 12},
		},
	}
}

// AmpFactor grows with population and saturates at AmpBase + AmpSpread.
func (sr *StandardRules) AmpFactor(population int) float64 {
	if population <= 0 {
		return sr.AmpBase
	}
	return sr.AmpBase + sr.AmpSpread*(1-math.Exp(-float64(population)/sr.AmpScale))
}

func (sr *StandardRules) UnitFactor(targetCount, opposingCount int) float64 {
	if opposingCount <= 0 {
		return sr.UnitFactorMax
	}
	return utils.Clamp(float64(targetCount)/float64(opposingCount), sr.UnitFactorMin, sr.UnitFactorMax)
}

func (sr *StandardRules) FortDamage(ratio float64, src random.Source) int {
	for _, tier := range sr.FortTiers {
		if ratio <= tier.UpTo {
			return int(math.Floor(random.Uniform(src, float64(tier.Min), float64(tier.Max))))
		}
	}
	return 0
}

// DeathRisk is 1 - spy/sentry, floored at 0. A defender without sentries
// poses no risk.
func (sr *StandardRules) DeathRisk(spyStrength, sentryStrength float64) float64 {
	if sentryStrength <= 0 {
		return 0
	}
	return math.Max(0, 1-spyStrength/sentryStrength)
}
