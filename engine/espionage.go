package engine

import (
	"errors"
	"fmt"
	"math/big"

	"kingdom/game"
	"kingdom/meta"
	"kingdom/random"
	"kingdom/utils"
)

// ErrUnknownTarget indicates an assassination target category is not supported.
var ErrUnknownTarget = errors.New("unknown assassination target")

// IntelField is a piece of defender state a spy mission can reveal.
type IntelField string

const (
	FieldUnits         IntelField = "units"
	FieldItems         IntelField = "items"
	FieldFortLevel     IntelField = "fortLevel"
	FieldFortHitpoints IntelField = "fortHitpoints"
	FieldGoldInBank    IntelField = "goldInBank"
)

var intelFields = []IntelField{FieldUnits, FieldItems, FieldFortLevel, FieldFortHitpoints, FieldGoldInBank}

// IntelReport is the partial defender snapshot gathered by spies. A field is
// only meaningful when Revealed reports it; unrevealed fields are nil.
type IntelReport struct {
	Revealed      map[IntelField]bool
	Units         []game.UnitEntry
	Items         []game.ItemEntry
	FortLevel     *int
	FortHitpoints *int
	GoldInBank    *big.Int
}

func (r IntelReport) Has(field IntelField) bool {
	return r.Revealed[field]
}

type IntelResult struct {
	Success    bool
	SpiesSent  int
	SpiesLost  int
	Percentage int
	Intel      IntelReport
}

// Target is the unit category an assassination goes after.
type Target string

const (
	TargetOffense  Target = "OFFENSE"
	TargetDefense  Target = "DEFENSE"
	TargetCitizens Target = "CITIZEN/WORKERS"
)

func (t Target) unitTypes() ([]game.UnitType, error) {
	switch t {
	case TargetOffense:
		return []game.UnitType{game.Offense}, nil
	case TargetDefense:
		return []game.UnitType{game.Defense}, nil
	case TargetCitizens:
		return []game.UnitType{game.Citizen, game.Worker}, nil
	default:
		return nil, fmt.Errorf("target %q: %w", string(t), ErrUnknownTarget)
	}
}

// Validate reports whether t names a supported target category.
func (t Target) Validate() error {
	_, err := t.unitTypes()
	return err
}

type AssassinationResult struct {
	Success     bool
	SpiesSent   int
	SpiesLost   int
	UnitsKilled int
	Target      Target
	Affected    *game.UnitKey // entry the kills were applied to, if any
	Defender    *game.CombatantSnapshot
}

type mission struct {
	spies     int
	success   bool
	deathRisk float64
	spiesLost int
}

// infiltrate compares spy and sentry strength and rolls for lost spies. Ties
// favor the defender; a failed mission loses every spy.
func (e *Engine) infiltrate(attacker, defender *game.CombatantSnapshot, spies int) mission {
	spy := game.Strength(attacker, game.SpyRole)
	sentry := game.Strength(defender, game.SentryRole)

	m := mission{spies: utils.Clamp(spies, meta.MIN_SPIES, meta.MAX_SPIES)}
	m.success = spy > sentry
	if !m.success {
		m.spiesLost = m.spies
		e.logger.Debug().Msgf("mission %d vs %d failed: spy %.1f <= sentry %.1f", attacker.ID, defender.ID, spy, sentry)
		return m
	}
	m.deathRisk = e.rules.DeathRisk(spy, sentry)
	m.spiesLost = random.Bernoulli(e.source, m.spies, m.deathRisk)
	return m
}

// Intel sends spies (clamped to [1, 10]) to gather information on defender.
// Each surviving spy reveals 10% of the defender's fields and of the entries
// within its unit and item lists.
func (e *Engine) Intel(attacker, defender *game.CombatantSnapshot, spies int) (IntelResult, error) {
	if _, ok := game.LookupFortification(defender.FortLevel); !ok {
		return IntelResult{}, fmt.Errorf("intel: defender %d level %d: %w", defender.ID, defender.FortLevel, game.ErrFortificationNotFound)
	}

	m := e.infiltrate(attacker, defender, spies)
	result := IntelResult{
		Success:   m.success,
		SpiesSent: m.spies,
		SpiesLost: m.spiesLost,
		Intel:     IntelReport{Revealed: make(map[IntelField]bool)},
	}
	if !m.success {
		return result, nil
	}

	result.Percentage = min((m.spies-m.spiesLost)*meta.INTEL_PER_SPY, 100)
	count := ceilPercent(len(intelFields), result.Percentage)
	for _, idx := range e.source.Perm(len(intelFields))[:count] {
		e.reveal(&result.Intel, intelFields[idx], defender, result.Percentage)
	}

	e.logger.Info().Msgf("intel %d vs %d: %d%% gathered, %d of %d spies lost",
		attacker.ID, defender.ID, result.Percentage, result.SpiesLost, result.SpiesSent)
	return result, nil
}

func (e *Engine) reveal(report *IntelReport, field IntelField, defender *game.CombatantSnapshot, percentage int) {
	report.Revealed[field] = true
	switch field {
	case FieldUnits:
		report.Units = sample(e.source, defender.Units, percentage)
	case FieldItems:
		report.Items = sample(e.source, defender.Items, percentage)
	case FieldFortLevel:
		level := defender.FortLevel
		report.FortLevel = &level
	case FieldFortHitpoints:
		hp := defender.FortHitpoints
		report.FortHitpoints = &hp
	case FieldGoldInBank:
		report.GoldInBank = new(big.Int)
		if defender.GoldInBank != nil {
			report.GoldInBank.Set(defender.GoldInBank)
		}
	}
}

// sample picks ceil(len(entries) * percentage / 100) entries at random.
func sample[T any](src random.Source, entries []T, percentage int) []T {
	picked := make([]T, 0, ceilPercent(len(entries), percentage))
	for _, idx := range src.Perm(len(entries))[:cap(picked)] {
		picked = append(picked, entries[idx])
	}
	return picked
}

func ceilPercent(n, percentage int) int {
	return (n*percentage + 99) / 100
}

// Assassinate sends spies (clamped to [1, 10]) to kill units of the target
// category. Kills are applied to the lowest level entry of the category.
// The defender passed in is not modified; the updated copy is returned.
func (e *Engine) Assassinate(attacker, defender *game.CombatantSnapshot, spies int, target Target) (AssassinationResult, error) {
	types, err := target.unitTypes()
	if err != nil {
		return AssassinationResult{}, fmt.Errorf("assassinate: %w", err)
	}

	def := defender.Copy()
	m := e.infiltrate(attacker, def, spies)
	result := AssassinationResult{
		Success:   m.success,
		SpiesSent: m.spies,
		SpiesLost: m.spiesLost,
		Target:    target,
		Defender:  def,
	}
	if !m.success {
		return result, nil
	}

	budget := min(def.UnitTotal(types...), m.spies*meta.ASSASSINATION_KILLS_PER_SPY)
	kills := random.Bernoulli(e.source, budget, m.deathRisk)

	idx := lowestLevel(def.Units, types)
	if kills > 0 && idx >= 0 {
		entry := &def.Units[idx]
		applied := min(kills, entry.Quantity)
		entry.Quantity -= applied
		result.UnitsKilled = applied
		key := entry.Key()
		result.Affected = &key
	}

	e.logger.Info().Msgf("assassination %d vs %d on %s: %d killed, %d of %d spies lost",
		attacker.ID, defender.ID, target, result.UnitsKilled, result.SpiesLost, result.SpiesSent)
	return result, nil
}

// lowestLevel returns the index of the lowest level entry whose type is in
// types, or -1. Ties keep the first entry.
func lowestLevel(units []game.UnitEntry, types []game.UnitType) int {
	found := -1
	for i, u := range units {
		if utils.FindIndex(types, u.Type) < 0 {
			continue
		}
		if found < 0 || u.Level < units[found].Level {
			found = i
		}
	}
	return found
}
