package game

// Role is the capacity a combatant's strength is measured in.
type Role int

const (
	OffenseRole Role = iota
	DefenseRole
	SpyRole
	SentryRole
)

// UnitType returns the unit type that contributes to the role.
func (r Role) UnitType() UnitType {
	switch r {
	case OffenseRole:
		return Offense
	case DefenseRole:
		return Defense
	case SpyRole:
		return Spy
	case SentryRole:
		return Sentry
	default:
		return ""
	}
}

func (r Role) String() string {
	return string(r.UnitType())
}

// counts reports whether a unit entry contributes to the role's strength.
// Spy and sentry strength only count level 1 units.
func (r Role) counts(u UnitEntry) bool {
	if u.Type != r.UnitType() {
		return false
	}
	if r == SpyRole || r == SentryRole {
		return u.Level == 1
	}
	return true
}

// Strength aggregates the snapshot's strength for a role from unit bonuses
// and equipped items. An item boosts at most as many units as exist at its
// level.
func Strength(s *CombatantSnapshot, role Role) float64 {
	// Quantities of counted units per level
	quantities := make(map[int]int)
	strength := 0.0
	for _, u := range s.Units {
		if !role.counts(u) || u.Quantity <= 0 {
			continue
		}
		quantities[u.Level] += u.Quantity
		if def, ok := LookupUnit(u.Type, u.Level); ok {
			strength += def.Bonus * float64(u.Quantity)
		}
	}

	for _, item := range s.Items {
		if item.Usage != role.UnitType() || item.Quantity <= 0 {
			continue
		}
		matching, ok := quantities[item.Level]
		if !ok {
			continue
		}
		def, ok := LookupItem(item.Type, item.Usage, item.Level)
		if !ok {
			continue
		}
		strength += def.Bonus * float64(min(item.Quantity, matching))
	}
	return strength
}
