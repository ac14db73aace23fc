package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrength(t *testing.T) {
	t.Run("sums unit bonuses for every level", func(t *testing.T) {
		s := &CombatantSnapshot{Units: []UnitEntry{
			{Type: Offense, Level: 1, Quantity: 100},
			{Type: Offense, Level: 2, Quantity: 10},
			{Type: Defense, Level: 1, Quantity: 1000},
		}}

		require.InDelta(t, 500.0, Strength(s, OffenseRole), 1e-9, "Should be 100*3 + 10*20")
	})

	t.Run("items boost at most as many units as exist", func(t *testing.T) {
		s := &CombatantSnapshot{
			Units: []UnitEntry{{Type: Offense, Level: 1, Quantity: 100}},
			Items: []ItemEntry{{Type: Weapon, Usage: Offense, Level: 1, Quantity: 150}},
		}

		require.InDelta(t, 300.0+100*25, Strength(s, OffenseRole), 1e-9, "Item bonus should be capped by unit count")
	})

	t.Run("items for another role or level are ignored", func(t *testing.T) {
		s := &CombatantSnapshot{
			Units: []UnitEntry{{Type: Defense, Level: 1, Quantity: 10}},
			Items: []ItemEntry{
				{Type: Weapon, Usage: Offense, Level: 1, Quantity: 10},
				{Type: Weapon, Usage: Defense, Level: 2, Quantity: 10},
			},
		}

		require.InDelta(t, 30.0, Strength(s, DefenseRole), 1e-9, "Only matching usage and level should count")
	})

	t.Run("spy and sentry only count level 1 units", func(t *testing.T) {
		s := &CombatantSnapshot{
			Units: []UnitEntry{
				{Type: Spy, Level: 1, Quantity: 10},
				{Type: Spy, Level: 2, Quantity: 5},
				{Type: Sentry, Level: 3, Quantity: 5},
			},
			Items: []ItemEntry{{Type: Helm, Usage: Spy, Level: 2, Quantity: 5}},
		}

		require.InDelta(t, 30.0, Strength(s, SpyRole), 1e-9, "Level 2 spies and their items should not count")
		require.Zero(t, Strength(s, SentryRole), "Level 3 sentries should not count")
	})

	t.Run("empty snapshot has zero strength", func(t *testing.T) {
		require.Zero(t, Strength(&CombatantSnapshot{}, OffenseRole), "No units should mean no strength")
	})
}

func TestDefenseBoost(t *testing.T) {
	t.Run("scales with remaining hitpoints", func(t *testing.T) {
		fort, _ := LookupFortification(1)
		boost, err := DefenseBoost(1, fort.Hitpoints/2)

		require.NoError(t, err)
		require.InDelta(t, fort.DefenseBonusPercentage/2, boost, 1e-9, "Half hitpoints should give half the bonus")
	})

	t.Run("destroyed fort gives no boost", func(t *testing.T) {
		boost, err := DefenseBoost(5, 0)

		require.NoError(t, err)
		require.Zero(t, boost, "Zero hitpoints should give zero boost")
		require.InDelta(t, 400.0, EffectiveDefense(400, boost), 1e-9, "Defense should be unchanged")
	})

	t.Run("unknown level fails", func(t *testing.T) {
		_, err := DefenseBoost(99, 10)

		require.ErrorIs(t, err, ErrFortificationNotFound, "Missing level should be reported")
	})

	t.Run("effective defense applies percentage", func(t *testing.T) {
		require.InDelta(t, 440.0, EffectiveDefense(400, 10), 1e-9, "10% boost on 400")
	})
}
