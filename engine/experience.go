package engine

import (
	"math"

	"kingdom/meta"
	"kingdom/random"
)

const (
	ResultWin  = "Win"
	ResultLost = "Lost"
)

type ExperienceInput struct {
	Ratio                float64 // offense to defense ratio of the turn
	AttackerOffenseTotal int
	AttackerPopulation   int
	DefenderDefenseTotal int
	DefenderPopulation   int
}

type ExperienceResult struct {
	Result   string
	Attacker int
	Defender int
}

func (r ExperienceResult) IsWin() bool {
	return r.Result == ResultWin
}

// Experience computes the experience both sides earn from a turn. The label
// depends only on the ratio: "Win" iff ratio >= 1. Below
// meta.EXPERIENCE_CUTOFF nobody earns anything.
func Experience(in ExperienceInput, src random.Source) ExperienceResult {
	amp := random.Uniform(src, 0.97, 1.03)

	defenderUnitRatio := float64(in.DefenderDefenseTotal) / float64(max(in.DefenderPopulation, 1))
	attackerUnitRatio := math.Min(float64(in.AttackerOffenseTotal)/float64(max(in.AttackerPopulation, 1)), 0.1)

	r := math.Max(in.Ratio, 0.3)
	invR := math.Max(1/in.Ratio, 0.3)

	var result ExperienceResult
	if in.Ratio >= 1 {
		result = ExperienceResult{
			Result:   ResultWin,
			Attacker: int(math.Round((140 + invR*220 + attackerUnitRatio*100) * amp)),
			Defender: int(math.Round((20 + invR*40 + defenderUnitRatio*15) * amp)),
		}
	} else {
		result = ExperienceResult{
			Result:   ResultLost,
			Attacker: int(math.Round((80 + r*50 + attackerUnitRatio*25) * amp)),
			Defender: int(math.Round((30 + r*45 + defenderUnitRatio*20) * amp)),
		}
	}

	if in.Ratio < meta.EXPERIENCE_CUTOFF {
		result.Attacker = 0
		result.Defender = 0
	}
	return result
}
