package engine

import (
	"fmt"
	"math/big"

	"kingdom/game"
	"kingdom/meta"
	"kingdom/utils"
)

type battlePhase int

const (
	runningPhase battlePhase = iota
	completedPhase
)

// TurnReport captures the raw numbers of one battle turn for diagnostics.
type TurnReport struct {
	Turn                  int
	AttackerStrength      float64
	AttackerDefense       float64
	DefenderStrength      float64
	DefenderDefense       float64 // after the fort boost
	FortBoost             float64
	OffenseToDefenseRatio float64
	CounterRatio          float64
	DefenderCasualties    int
	AttackerCasualties    int
	FortDamage            int
	FortHitpoints         int
}

// BattleOutcome is the result of a battle. Attacker and Defender are the
// updated copies of the snapshots passed in.
type BattleOutcome struct {
	TurnsRequested     int
	TurnsExecuted      int
	StartFortHitpoints int
	FinalFortHitpoints int
	AttackerLosses     game.Losses
	DefenderLosses     game.Losses
	Experience         ExperienceResult
	Loot               *big.Int // zero unless the attacker won
	Turns              []TurnReport
	Attacker           *game.CombatantSnapshot
	Defender           *game.CombatantSnapshot
}

func (o BattleOutcome) AttackerWon() bool {
	return o.Experience.IsWin()
}

func (o BattleOutcome) FortDestroyed() bool {
	return o.StartFortHitpoints > 0 && o.FinalFortHitpoints == 0
}

type battle struct {
	phase    battlePhase
	turn     int
	attacker *game.CombatantSnapshot
	defender *game.CombatantSnapshot
	outcome  BattleOutcome
}

// Battle runs up to turns attack turns (clamped to [1, 10]) of attacker
// against defender. The snapshots passed in are not modified.
func (e *Engine) Battle(attacker, defender *game.CombatantSnapshot, turns int) (BattleOutcome, error) {
	if _, ok := game.LookupFortification(defender.FortLevel); !ok {
		return BattleOutcome{}, fmt.Errorf("battle: defender %d level %d: %w", defender.ID, defender.FortLevel, game.ErrFortificationNotFound)
	}

	b := &battle{
		phase:    runningPhase,
		attacker: attacker.Copy(),
		defender: defender.Copy(),
	}
	turns = utils.Clamp(turns, meta.MIN_TURNS, meta.MAX_TURNS)
	b.defender.FortHitpoints = utils.Clamp(b.defender.FortHitpoints, 0, game.MaxFortHitpoints(b.defender.FortLevel))
	b.outcome = BattleOutcome{
		TurnsRequested:     turns,
		StartFortHitpoints: b.defender.FortHitpoints,
		AttackerLosses:     game.NewLosses(),
		DefenderLosses:     game.NewLosses(),
	}

	for b.phase == runningPhase {
		b.turn++
		report, err := e.playTurn(b)
		if err != nil {
			return BattleOutcome{}, err
		}
		b.outcome.Turns = append(b.outcome.Turns, report)
		b.outcome.TurnsExecuted = b.turn

		e.logger.Debug().Msgf("turn %d: ratio %.3f counter %.3f, defender lost %d, attacker lost %d, fort %d",
			report.Turn, report.OffenseToDefenseRatio, report.CounterRatio,
			report.DefenderCasualties, report.AttackerCasualties, report.FortHitpoints)

		if b.turn >= turns || b.attacker.UnitTotal(game.Offense) == 0 {
			b.phase = completedPhase
		}
	}

	out := b.outcome
	out.FinalFortHitpoints = b.defender.FortHitpoints
	out.Attacker = b.attacker
	out.Defender = b.defender
	out.Loot = new(big.Int)
	if out.AttackerWon() {
		// The bonus applies whenever the fort is down at battle end, even if it started there
		out.Loot = Loot(turns, b.attacker.Level, b.defender.Level, b.defender.Gold, out.FinalFortHitpoints == 0)
	}

	e.logger.Info().Msgf("battle %d vs %d: %s after %d of %d turns, losses %d/%d, fort %d -> %d",
		attacker.ID, defender.ID, out.Experience.Result, out.TurnsExecuted, turns,
		out.AttackerLosses.Total, out.DefenderLosses.Total, out.StartFortHitpoints, out.FinalFortHitpoints)

	return out, nil
}

func (e *Engine) playTurn(b *battle) (TurnReport, error) {
	att, def := b.attacker, b.defender

	// Strengths
	attackerStrength := game.Strength(att, game.OffenseRole)
	attackerDefense := game.Strength(att, game.DefenseRole)
	defenderRaw := game.Strength(def, game.DefenseRole)
	boost, err := game.DefenseBoost(def.FortLevel, def.FortHitpoints)
	if err != nil {
		return TurnReport{}, fmt.Errorf("turn %d: %w", b.turn, err)
	}
	defenderDefense := game.EffectiveDefense(defenderRaw, boost)
	defenderStrength := defenderRaw // defense doubles as the defender's killing strength

	offenseToDefense := ratio(attackerStrength, defenderDefense)
	counter := ratio(defenderStrength, attackerDefense)

	attackerOffenseTotal := att.UnitTotal(game.Offense)
	defenderDefenseTotal := def.UnitTotal(game.Defense)
	defenderPopulation := max(defenderDefenseTotal, 1)
	attackerPopulation := max(attackerOffenseTotal, 1)

	defenderCasualties := Casualties(CasualtyInput{
		Ratio:            offenseToDefense,
		TargetPopulation: defenderPopulation,
		AmpFactor:        e.rules.AmpFactor(defenderPopulation),
		UnitFactor:       e.rules.UnitFactor(defenderDefenseTotal, attackerOffenseTotal),
		FortHitpoints:    def.FortHitpoints,
		IsDefenderSide:   true,
	})
	attackerCasualties := Casualties(CasualtyInput{
		Ratio:            counter,
		TargetPopulation: attackerPopulation,
		AmpFactor:        e.rules.AmpFactor(attackerPopulation),
		UnitFactor:       e.rules.UnitFactor(attackerOffenseTotal, defenderDefenseTotal),
	})

	// Fort damage
	fortDamage := defenderCasualties.FortDamage
	if !defenderCasualties.HasFortDamage {
		fortDamage = e.rules.FortDamage(offenseToDefense, e.source)
	}
	def.FortHitpoints = max(def.FortHitpoints-fortDamage, 0)

	// Casualties
	turnDefenderLosses := game.NewLosses()
	turnAttackerLosses := game.NewLosses()
	DistributeDefender(def.Units, defenderCasualties.Count, &turnDefenderLosses)
	DistributeAttacker(att.Units, attackerCasualties.Count, &turnAttackerLosses)
	b.outcome.DefenderLosses.Merge(turnDefenderLosses)
	b.outcome.AttackerLosses.Merge(turnAttackerLosses)

	// Only the last turn's experience is kept
	b.outcome.Experience = Experience(ExperienceInput{
		Ratio:                offenseToDefense,
		AttackerOffenseTotal: attackerOffenseTotal,
		AttackerPopulation:   att.Population,
		DefenderDefenseTotal: defenderDefenseTotal,
		DefenderPopulation:   def.Population,
	}, e.source)

	return TurnReport{
		Turn:                  b.turn,
		AttackerStrength:      attackerStrength,
		AttackerDefense:       attackerDefense,
		DefenderStrength:      defenderStrength,
		DefenderDefense:       defenderDefense,
		FortBoost:             boost,
		OffenseToDefenseRatio: offenseToDefense,
		CounterRatio:          counter,
		DefenderCasualties:    turnDefenderLosses.Total,
		AttackerCasualties:    turnAttackerLosses.Total,
		FortDamage:            fortDamage,
		FortHitpoints:         def.FortHitpoints,
	}, nil
}
