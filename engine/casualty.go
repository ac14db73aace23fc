package engine

import (
	"math"

	"kingdom/game"
	"kingdom/meta"
)

// CasualtyInput describes one side taking damage in a turn.
type CasualtyInput struct {
	Ratio            float64 // strength of the side dealing damage over the target's
	TargetPopulation int
	AmpFactor        float64
	UnitFactor       float64
	FortHitpoints    int // defender side only
	IsDefenderSide   bool
}

type CasualtyResult struct {
	Count         int
	FortDamage    int
	HasFortDamage bool
}

// Casualties turns a strength ratio into a casualty count bounded by the
// target population. On the counter side the ratio never drops below
// meta.COUNTER_RATIO_FLOOR. While the defender's fort stands, the casualty
// count doubles as the fort damage for the turn.
func Casualties(in CasualtyInput) CasualtyResult {
	r := in.Ratio
	if !in.IsDefenderSide {
		r = math.Max(r, meta.COUNTER_RATIO_FLOOR)
	}

	population := max(in.TargetPopulation, 0)
	raw := math.Floor(r * in.AmpFactor * in.UnitFactor)
	if math.IsNaN(raw) || raw < 0 {
		raw = 0
	}
	count := int(math.Min(raw, float64(population)))

	result := CasualtyResult{Count: count}
	if in.IsDefenderSide && in.FortHitpoints > 0 && count > 0 {
		result.FortDamage = count
		result.HasFortDamage = true
	}
	return result
}

// Distribute removes up to total units from the entries whose type is in
// categories. Categories are visited in order and entries in slice order.
// Quantities are decremented in place and every non-zero removal is recorded
// in losses. It returns the casualties that could not be assigned.
func Distribute(units []game.UnitEntry, categories []game.UnitType, total int, losses *game.Losses) int {
	remaining := total
	for _, category := range categories {
		for i := range units {
			if remaining <= 0 {
				return 0
			}
			if units[i].Type != category || units[i].Quantity <= 0 {
				continue
			}
			taken := min(units[i].Quantity, remaining)
			units[i].Quantity -= taken
			remaining -= taken
			losses.Add(units[i].Key(), taken)
		}
	}
	return max(remaining, 0)
}

// DistributeDefender assigns casualties to defense units first. Only once
// every defense unit is gone does the remainder spill onto citizens and
// workers.
func DistributeDefender(units []game.UnitEntry, total int, losses *game.Losses) int {
	remaining := Distribute(units, []game.UnitType{game.Defense}, total, losses)
	if remaining == 0 {
		return 0
	}
	for _, u := range units {
		if u.Type == game.Defense && u.Quantity > 0 {
			return remaining
		}
	}
	return Distribute(units, []game.UnitType{game.Citizen, game.Worker}, remaining, losses)
}

// DistributeAttacker assigns casualties to offense units. There is no
// spillover on the attacking side.
func DistributeAttacker(units []game.UnitEntry, total int, losses *game.Losses) int {
	return Distribute(units, []game.UnitType{game.Offense}, total, losses)
}
