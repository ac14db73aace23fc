package game

import "fmt"

// UnitType is the category a unit belongs to.
type UnitType string

const (
	Citizen UnitType = "CITIZEN"
	Worker  UnitType = "WORKER"
	Offense UnitType = "OFFENSE"
	Defense UnitType = "DEFENSE"
	Spy     UnitType = "SPY"
	Sentry  UnitType = "SENTRY"
)

// ItemType is the kind of equipment an item is.
type ItemType string

const (
	Weapon  ItemType = "WEAPON"
	Helm    ItemType = "HELM"
	Armor   ItemType = "ARMOR"
	Boots   ItemType = "BOOTS"
	Bracers ItemType = "BRACERS"
	Shield  ItemType = "SHIELD"
)

// UnitKey identifies a unit row by type and level.
type UnitKey struct {
	Type  UnitType
	Level int
}

func (k UnitKey) String() string {
	return fmt.Sprintf("%s-%d", k.Type, k.Level)
}

// ItemKey identifies an item row by kind, boosted unit type and level.
type ItemKey struct {
	Type  ItemType
	Usage UnitType
	Level int
}

// UnitEntry is a stack of identical units owned by a combatant.
type UnitEntry struct {
	Type     UnitType `yaml:"type"`
	Level    int      `yaml:"level"`
	Quantity int      `yaml:"quantity"`
}

func (u UnitEntry) Key() UnitKey {
	return UnitKey{Type: u.Type, Level: u.Level}
}

// ItemEntry is a stack of identical items equipped by a combatant.
type ItemEntry struct {
	Type     ItemType `yaml:"type"`
	Usage    UnitType `yaml:"usage"`
	Level    int      `yaml:"level"`
	Quantity int      `yaml:"quantity"`
}

func (i ItemEntry) Key() ItemKey {
	return ItemKey{Type: i.Type, Usage: i.Usage, Level: i.Level}
}
