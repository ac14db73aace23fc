package experiments

import (
	"fmt"
	"math/big"
	"os"

	"kingdom/engine"
	"kingdom/game"

	"gopkg.in/yaml.v3"
)

// Combatant is the YAML form of a game.CombatantSnapshot. Gold amounts are
// decimal strings so that values beyond int64 survive the round trip.
type Combatant struct {
	ID            int              `yaml:"id"`
	Units         []game.UnitEntry `yaml:"units"`
	Items         []game.ItemEntry `yaml:"items"`
	Population    int              `yaml:"population"`
	Level         int              `yaml:"level"`
	Experience    int              `yaml:"experience"`
	Gold          string           `yaml:"gold"`
	GoldInBank    string           `yaml:"gold_in_bank"`
	FortLevel     int              `yaml:"fort_level"`
	FortHitpoints *int             `yaml:"fort_hitpoints"` // full hitpoints when omitted
}

type Scenario struct {
	Name     string        `yaml:"name"`
	Mode     engine.Mode   `yaml:"mode"`
	Turns    int           `yaml:"turns"`
	Spies    int           `yaml:"spies"`
	Target   engine.Target `yaml:"target"`
	Attacker Combatant     `yaml:"attacker"`
	Defender Combatant     `yaml:"defender"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return scenario, nil
}

func ParseScenario(data []byte) (*Scenario, error) {
	scenario := &Scenario{Mode: engine.ModeBattle}
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	switch scenario.Mode {
	case engine.ModeBattle, engine.ModeIntel, engine.ModeAssassinate:
	default:
		return nil, fmt.Errorf("mode %q: %w", string(scenario.Mode), engine.ErrUnknownMode)
	}

	if scenario.Mode == engine.ModeAssassinate {
		if err := scenario.Target.Validate(); err != nil {
			return nil, err
		}
	}

	// Snapshots are built once up front so that bad input fails before any game runs
	if _, err := scenario.Attacker.Snapshot(); err != nil {
		return nil, fmt.Errorf("attacker: %w", err)
	}
	if _, err := scenario.Defender.Snapshot(); err != nil {
		return nil, fmt.Errorf("defender: %w", err)
	}
	return scenario, nil
}

// Request builds a fresh engine request from the scenario.
func (s *Scenario) Request() (engine.Request, error) {
	attacker, err := s.Attacker.Snapshot()
	if err != nil {
		return engine.Request{}, fmt.Errorf("attacker: %w", err)
	}
	defender, err := s.Defender.Snapshot()
	if err != nil {
		return engine.Request{}, fmt.Errorf("defender: %w", err)
	}
	return engine.Request{
		Mode:     s.Mode,
		Attacker: attacker,
		Defender: defender,
		Turns:    s.Turns,
		Spies:    s.Spies,
		Target:   s.Target,
	}, nil
}

func (c Combatant) Snapshot() (*game.CombatantSnapshot, error) {
	gold, err := parseGold(c.Gold)
	if err != nil {
		return nil, fmt.Errorf("gold: %w", err)
	}
	bank, err := parseGold(c.GoldInBank)
	if err != nil {
		return nil, fmt.Errorf("gold in bank: %w", err)
	}

	hitpoints := game.MaxFortHitpoints(c.FortLevel)
	if c.FortHitpoints != nil {
		hitpoints = *c.FortHitpoints
	}

	snapshot := game.CombatantSnapshot{
		ID:            c.ID,
		Units:         c.Units,
		Items:         c.Items,
		Population:    c.Population,
		Level:         c.Level,
		Experience:    c.Experience,
		Gold:          gold,
		GoldInBank:    bank,
		FortLevel:     c.FortLevel,
		FortHitpoints: hitpoints,
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return snapshot.Copy(), nil
}

func parseGold(value string) (*big.Int, error) {
	if value == "" {
		return new(big.Int), nil
	}
	gold, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", value)
	}
	if gold.Sign() < 0 {
		return nil, fmt.Errorf("negative amount %q", value)
	}
	return gold, nil
}
