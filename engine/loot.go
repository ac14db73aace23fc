package engine

import (
	"math/big"

	"kingdom/meta"
	"kingdom/utils"
)

// Percent of the base rate granted per level difference (defender - attacker).
var lootLevelPercents = map[int]int64{
	0: 5,
	1: 15,
	2: 35,
	3: 55,
	4: 75,
}

const lootMaxLevelPercent = 95

// Loot is the gold an attacker pillages over turns from a defender holding
// defenderGold. It is computed with exact rationals, floored and capped at
// defenderGold.
func Loot(turns, attackerLevel, defenderLevel int, defenderGold *big.Int, fortDestroyed bool) *big.Int {
	if defenderGold == nil || defenderGold.Sign() <= 0 {
		return new(big.Int)
	}
	turns = utils.Clamp(turns, meta.MIN_TURNS, meta.MAX_TURNS)

	rate := big.NewRat(8, 100) // 0.8 spread over 10 turns
	rate.Mul(rate, big.NewRat(levelPercent(defenderLevel-attackerLevel), 100))
	if fortDestroyed {
		rate.Mul(rate, big.NewRat(105, 100))
	}

	amount := new(big.Rat).SetInt(defenderGold)
	amount.Mul(amount, rate)
	amount.Mul(amount, big.NewRat(int64(turns), 1))

	loot := new(big.Int).Quo(amount.Num(), amount.Denom())
	if loot.Cmp(defenderGold) > 0 {
		loot.Set(defenderGold)
	}
	return loot
}

func levelPercent(diff int) int64 {
	if diff >= 5 {
		return lootMaxLevelPercent
	}
	if percent, ok := lootLevelPercents[diff]; ok {
		return percent
	}
	return lootLevelPercents[0]
}
