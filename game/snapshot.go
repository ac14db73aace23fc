package game

import (
	"fmt"
	"math/big"
)

// CombatantSnapshot is the state of one side of a battle or spy mission.
// The engine mutates its own copy of a snapshot and hands it back.
type CombatantSnapshot struct {
	ID            int
	Units         []UnitEntry
	Items         []ItemEntry
	Population    int
	Level         int
	Experience    int
	Gold          *big.Int
	GoldInBank    *big.Int
	FortLevel     int
	FortHitpoints int
}

// Copy returns a deep copy of the snapshot.
func (s CombatantSnapshot) Copy() *CombatantSnapshot {
	units := make([]UnitEntry, len(s.Units))
	copy(units, s.Units)

	items := make([]ItemEntry, len(s.Items))
	copy(items, s.Items)

	return &CombatantSnapshot{
		ID:            s.ID,
		Units:         units,
		Items:         items,
		Population:    s.Population,
		Level:         s.Level,
		Experience:    s.Experience,
		Gold:          copyInt(s.Gold),
		GoldInBank:    copyInt(s.GoldInBank),
		FortLevel:     s.FortLevel,
		FortHitpoints: s.FortHitpoints,
	}
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// UnitTotal sums the quantity of every unit entry whose type is in types.
func (s *CombatantSnapshot) UnitTotal(types ...UnitType) int {
	total := 0
	for _, u := range s.Units {
		for _, t := range types {
			if u.Type == t {
				total += u.Quantity
				break
			}
		}
	}
	return total
}

// Validate checks the snapshot invariants the engine relies on.
func (s *CombatantSnapshot) Validate() error {
	fort, ok := LookupFortification(s.FortLevel)
	if !ok {
		return fmt.Errorf("snapshot %d: level %d: %w", s.ID, s.FortLevel, ErrFortificationNotFound)
	}
	if s.FortHitpoints < 0 || s.FortHitpoints > fort.Hitpoints {
		return fmt.Errorf("snapshot %d: fort hitpoints %d outside [0, %d]", s.ID, s.FortHitpoints, fort.Hitpoints)
	}
	for _, u := range s.Units {
		if u.Quantity < 0 {
			return fmt.Errorf("snapshot %d: negative quantity for %s", s.ID, u.Key())
		}
	}
	for _, i := range s.Items {
		if i.Quantity < 0 {
			return fmt.Errorf("snapshot %d: negative quantity for item %s %s-%d", s.ID, i.Type, i.Usage, i.Level)
		}
	}
	return nil
}
