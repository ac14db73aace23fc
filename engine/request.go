package engine

import (
	"errors"
	"fmt"

	"kingdom/game"
)

// ErrUnknownMode indicates a request mode the engine cannot resolve.
var ErrUnknownMode = errors.New("unknown mode")

type Mode string

const (
	ModeBattle      Mode = "BATTLE"
	ModeIntel       Mode = "INTEL"
	ModeAssassinate Mode = "ASSASSINATE"
)

// Request is a single engine invocation.
type Request struct {
	Mode     Mode
	Attacker *game.CombatantSnapshot
	Defender *game.CombatantSnapshot
	Turns    int    // battle only
	Spies    int    // intel and assassination
	Target   Target // assassination only
}

// Report holds the result of exactly one mode.
type Report struct {
	Mode          Mode
	Battle        *BattleOutcome
	Intel         *IntelResult
	Assassination *AssassinationResult
}

// AttackerWon reports whether the attacking side came out on top.
func (r Report) AttackerWon() bool {
	switch {
	case r.Battle != nil:
		return r.Battle.AttackerWon()
	case r.Intel != nil:
		return r.Intel.Success
	case r.Assassination != nil:
		return r.Assassination.Success
	default:
		return false
	}
}

// Run resolves a request according to its mode.
func (e *Engine) Run(req Request) (Report, error) {
	if req.Attacker == nil || req.Defender == nil {
		return Report{}, fmt.Errorf("run %s: attacker and defender are required", req.Mode)
	}

	report := Report{Mode: req.Mode}
	switch req.Mode {
	case ModeBattle:
		outcome, err := e.Battle(req.Attacker, req.Defender, req.Turns)
		if err != nil {
			return Report{}, err
		}
		report.Battle = &outcome
	case ModeIntel:
		result, err := e.Intel(req.Attacker, req.Defender, req.Spies)
		if err != nil {
			return Report{}, err
		}
		report.Intel = &result
	case ModeAssassinate:
		result, err := e.Assassinate(req.Attacker, req.Defender, req.Spies, req.Target)
		if err != nil {
			return Report{}, err
		}
		report.Assassination = &result
	default:
		return Report{}, fmt.Errorf("run %q: %w", string(req.Mode), ErrUnknownMode)
	}
	return report, nil
}
