package game

// UnitTypeDef is the static definition of a unit at a given level.
type UnitTypeDef struct {
	Name      string
	Type      UnitType
	Level     int
	Bonus     float64
	Cost      int
	FortLevel int // minimum fortification level to train
	HP        int
}

// ItemTypeDef is the static definition of an item at a given level.
type ItemTypeDef struct {
	Name      string
	Type      ItemType
	Usage     UnitType
	Level     int
	Bonus     float64
	Cost      int
	FortLevel int
}

// FortificationDef is the static definition of a fortification level.
type FortificationDef struct {
	Name                   string
	Level                  int
	Hitpoints              int
	DefenseBonusPercentage float64
	Cost                   int
}

var unitTypes = indexUnits([]UnitTypeDef{
	{Name: "Citizen", Type: Citizen, Level: 1, Bonus: 0, Cost: 0, FortLevel: 1, HP: 10},
	{Name: "Worker", Type: Worker, Level: 1, Bonus: 65, Cost: 2000, FortLevel: 1, HP: 20},
	{Name: "Soldier", Type: Offense, Level: 1, Bonus: 3, Cost: 1500, FortLevel: 1, HP: 10},
	{Name: "Knight", Type: Offense, Level: 2, Bonus: 20, Cost: 10000, FortLevel: 4, HP: 20},
	{Name: "Berserker", Type: Offense, Level: 3, Bonus: 50, Cost: 25000, FortLevel: 7, HP: 30},
	{Name: "Guard", Type: Defense, Level: 1, Bonus: 3, Cost: 1500, FortLevel: 1, HP: 10},
	{Name: "Archer", Type: Defense, Level: 2, Bonus: 20, Cost: 10000, FortLevel: 4, HP: 20},
	{Name: "Royal Guard", Type: Defense, Level: 3, Bonus: 50, Cost: 25000, FortLevel: 7, HP: 30},
	{Name: "Spy", Type: Spy, Level: 1, Bonus: 3, Cost: 1500, FortLevel: 1, HP: 10},
	{Name: "Infiltrator", Type: Spy, Level: 2, Bonus: 20, Cost: 10000, FortLevel: 8, HP: 20},
	{Name: "Assassin", Type: Spy, Level: 3, Bonus: 50, Cost: 25000, FortLevel: 12, HP: 30},
	{Name: "Sentry", Type: Sentry, Level: 1, Bonus: 3, Cost: 1500, FortLevel: 1, HP: 10},
	{Name: "Sentinel", Type: Sentry, Level: 2, Bonus: 20, Cost: 10000, FortLevel: 8, HP: 20},
	{Name: "Inquisitor", Type: Sentry, Level: 3, Bonus: 50, Cost: 25000, FortLevel: 12, HP: 30},
})

// Every item kind exists for every military unit type with the same bonus
// curve; only the name prefix changes.
var itemTypes = buildItems(
	[]UnitType{Offense, Defense, Spy, Sentry},
	[]ItemTypeDef{
		{Name: "Dagger", Type: Weapon, Level: 1, Bonus: 25, Cost: 1000, FortLevel: 1},
		{Name: "Sword", Type: Weapon, Level: 2, Bonus: 40, Cost: 3000, FortLevel: 4},
		{Name: "Battle Axe", Type: Weapon, Level: 3, Bonus: 60, Cost: 8000, FortLevel: 7},
		{Name: "Leather Cap", Type: Helm, Level: 1, Bonus: 10, Cost: 500, FortLevel: 1},
		{Name: "Iron Helm", Type: Helm, Level: 2, Bonus: 20, Cost: 1500, FortLevel: 4},
		{Name: "Great Helm", Type: Helm, Level: 3, Bonus: 35, Cost: 4000, FortLevel: 7},
		{Name: "Padded Armor", Type: Armor, Level: 1, Bonus: 15, Cost: 800, FortLevel: 1},
		{Name: "Chain Mail", Type: Armor, Level: 2, Bonus: 30, Cost: 2500, FortLevel: 4},
		{Name: "Plate Armor", Type: Armor, Level: 3, Bonus: 50, Cost: 7000, FortLevel: 7},
		{Name: "Sandals", Type: Boots, Level: 1, Bonus: 5, Cost: 300, FortLevel: 1},
		{Name: "Riding Boots", Type: Boots, Level: 2, Bonus: 10, Cost: 900, FortLevel: 4},
		{Name: "Sabatons", Type: Boots, Level: 3, Bonus: 20, Cost: 2400, FortLevel: 7},
		{Name: "Cloth Wraps", Type: Bracers, Level: 1, Bonus: 5, Cost: 300, FortLevel: 1},
		{Name: "Leather Bracers", Type: Bracers, Level: 2, Bonus: 10, Cost: 900, FortLevel: 4},
		{Name: "Steel Vambraces", Type: Bracers, Level: 3, Bonus: 20, Cost: 2400, FortLevel: 7},
		{Name: "Buckler", Type: Shield, Level: 1, Bonus: 10, Cost: 500, FortLevel: 1},
		{Name: "Kite Shield", Type: Shield, Level: 2, Bonus: 20, Cost: 1500, FortLevel: 4},
		{Name: "Tower Shield", Type: Shield, Level: 3, Bonus: 35, Cost: 4000, FortLevel: 7},
	},
)

var fortifications = indexForts([]FortificationDef{
	{Name: "Manor", Level: 1, Hitpoints: 100, DefenseBonusPercentage: 5, Cost: 0},
	{Name: "Village", Level: 2, Hitpoints: 150, DefenseBonusPercentage: 10, Cost: 50000},
	{Name: "Town", Level: 3, Hitpoints: 200, DefenseBonusPercentage: 15, Cost: 75000},
	{Name: "Outpost", Level: 4, Hitpoints: 300, DefenseBonusPercentage: 20, Cost: 110000},
	{Name: "Outpost Level 2", Level: 5, Hitpoints: 400, DefenseBonusPercentage: 25, Cost: 200000},
	{Name: "Outpost Level 3", Level: 6, Hitpoints: 500, DefenseBonusPercentage: 30, Cost: 300000},
	{Name: "Stronghold", Level: 7, Hitpoints: 650, DefenseBonusPercentage: 35, Cost: 450000},
	{Name: "Stronghold Level 2", Level: 8, Hitpoints: 800, DefenseBonusPercentage: 40, Cost: 650000},
	{Name: "Stronghold Level 3", Level: 9, Hitpoints: 1000, DefenseBonusPercentage: 45, Cost: 900000},
	{Name: "Fortress", Level: 10, Hitpoints: 1250, DefenseBonusPercentage: 50, Cost: 1200000},
	{Name: "Fortress Level 2", Level: 11, Hitpoints: 1500, DefenseBonusPercentage: 55, Cost: 1600000},
	{Name: "Fortress Level 3", Level: 12, Hitpoints: 1800, DefenseBonusPercentage: 60, Cost: 2100000},
	{Name: "Citadel", Level: 13, Hitpoints: 2200, DefenseBonusPercentage: 65, Cost: 2800000},
	{Name: "Citadel Level 2", Level: 14, Hitpoints: 2600, DefenseBonusPercentage: 70, Cost: 3600000},
	{Name: "Citadel Level 3", Level: 15, Hitpoints: 3000, DefenseBonusPercentage: 75, Cost: 4500000},
})

func indexUnits(defs []UnitTypeDef) map[UnitKey]UnitTypeDef {
	m := make(map[UnitKey]UnitTypeDef, len(defs))
	for _, d := range defs {
		m[UnitKey{Type: d.Type, Level: d.Level}] = d
	}
	return m
}

func buildItems(usages []UnitType, defs []ItemTypeDef) map[ItemKey]ItemTypeDef {
	m := make(map[ItemKey]ItemTypeDef, len(usages)*len(defs))
	for _, usage := range usages {
		for _, d := range defs {
			d.Usage = usage
			m[ItemKey{Type: d.Type, Usage: usage, Level: d.Level}] = d
		}
	}
	return m
}

func indexForts(defs []FortificationDef) map[int]FortificationDef {
	m := make(map[int]FortificationDef, len(defs))
	for _, d := range defs {
		m[d.Level] = d
	}
	return m
}

// LookupUnit returns the definition for a unit type and level.
func LookupUnit(t UnitType, level int) (UnitTypeDef, bool) {
	d, ok := unitTypes[UnitKey{Type: t, Level: level}]
	return d, ok
}

// LookupItem returns the definition for an item kind, usage and level.
func LookupItem(t ItemType, usage UnitType, level int) (ItemTypeDef, bool) {
	d, ok := itemTypes[ItemKey{Type: t, Usage: usage, Level: level}]
	return d, ok
}

// LookupFortification returns the definition for a fortification level.
func LookupFortification(level int) (FortificationDef, bool) {
	d, ok := fortifications[level]
	return d, ok
}

// MaxFortHitpoints returns the hitpoint cap of a fortification level, or 0
// when the level is unknown.
func MaxFortHitpoints(level int) int {
	return fortifications[level].Hitpoints
}
