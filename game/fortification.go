package game

import (
	"errors"
	"fmt"
)

// ErrFortificationNotFound indicates a fortification level has no definition.
var ErrFortificationNotFound = errors.New("fortification not found")

// DefenseBoost returns the defense bonus percentage granted by a fortification
// at its current hitpoints.
func DefenseBoost(level, hitpoints int) (float64, error) {
	fort, ok := LookupFortification(level)
	if !ok {
		return 0, fmt.Errorf("defense boost for level %d: %w", level, ErrFortificationNotFound)
	}
	if fort.Hitpoints <= 0 {
		return 0, nil
	}
	return float64(hitpoints) / float64(fort.Hitpoints) * fort.DefenseBonusPercentage, nil
}

// EffectiveDefense applies a fort boost percentage to raw defense strength.
func EffectiveDefense(raw, boost float64) float64 {
	return raw * (1 + boost/100)
}
