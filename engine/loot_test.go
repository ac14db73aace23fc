package engine

import (
	"math/big"
	"testing"

	"kingdom/random"

	"github.com/stretchr/testify/require"
)

func TestLoot(t *testing.T) {
	gold := big.NewInt(1_000_000)

	t.Run("even levels use the lowest bucket", func(t *testing.T) {
		require.Equal(t, big.NewInt(40_000), Loot(10, 5, 5, gold, false), "Should be 0.08*0.05*gold*10")
	})

	t.Run("scales with the level difference", func(t *testing.T) {
		require.Equal(t, big.NewInt(12_000), Loot(1, 5, 6, gold, false), "Should use the 0.15 bucket")
		require.Equal(t, big.NewInt(760_000), Loot(10, 1, 9, gold, false), "Differences of 5 or more should use 0.95")
	})

	t.Run("lower level defenders use the lowest bucket", func(t *testing.T) {
		require.Equal(t, Loot(10, 5, 5, gold, false), Loot(10, 9, 5, gold, false))
	})

	t.Run("destroyed fort adds five percent", func(t *testing.T) {
		require.Equal(t, big.NewInt(42_000), Loot(10, 5, 5, gold, true))
	})

	t.Run("clamps turns", func(t *testing.T) {
		require.Equal(t, Loot(10, 5, 5, gold, false), Loot(50, 5, 5, gold, false))
		require.Equal(t, Loot(1, 5, 5, gold, false), Loot(-2, 5, 5, gold, false))
	})

	t.Run("stays exact for huge amounts", func(t *testing.T) {
		huge, _ := new(big.Int).SetString("1000000000000000000000000000000", 10)
		want, _ := new(big.Int).SetString("40000000000000000000000000000", 10)

		require.Equal(t, want, Loot(10, 5, 5, huge, false))
	})

	t.Run("no gold means no loot", func(t *testing.T) {
		require.Zero(t, Loot(10, 1, 9, nil, true).Sign())
		require.Zero(t, Loot(10, 1, 9, big.NewInt(0), true).Sign())
	})

	t.Run("never exceeds the defender gold", func(t *testing.T) {
		src := random.New(11)
		for i := 0; i < 200; i++ {
			g := big.NewInt(int64(src.Intn(1_000_000)))
			loot := Loot(src.Intn(15), src.Intn(20), src.Intn(20), g, src.Intn(2) == 0)
			require.LessOrEqual(t, loot.Cmp(g), 0, "Loot should be capped by gold")
			require.GreaterOrEqual(t, loot.Sign(), 0)
		}
	})
}
