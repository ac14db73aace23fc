package engine

import (
	"testing"

	"kingdom/random"

	"github.com/stretchr/testify/require"
)

func TestExperience(t *testing.T) {
	t.Run("attacker win branch", func(t *testing.T) {
		got := Experience(ExperienceInput{
			Ratio:                2,
			AttackerOffenseTotal: 50,
			AttackerPopulation:   1000,
			DefenderDefenseTotal: 100,
			DefenderPopulation:   400,
		}, script(0.5))

		require.Equal(t, ResultWin, got.Result)
		require.Equal(t, 255, got.Attacker, "Should be round(140 + 0.5*220 + 0.05*100)")
		require.Equal(t, 44, got.Defender, "Should be round(20 + 0.5*40 + 0.25*15)")
	})

	t.Run("defender win branch caps the attacker unit ratio", func(t *testing.T) {
		got := Experience(ExperienceInput{
			Ratio:                0.55,
			AttackerOffenseTotal: 500,
			AttackerPopulation:   1000,
			DefenderDefenseTotal: 100,
			DefenderPopulation:   400,
		}, script(0.5))

		require.Equal(t, ResultLost, got.Result)
		require.Equal(t, 110, got.Attacker, "Should be round(80 + 0.55*50 + 0.1*25)")
		require.Equal(t, 60, got.Defender, "Should be round(30 + 0.55*45 + 0.25*20)")
	})

	t.Run("amplification draws from [0.97, 1.03)", func(t *testing.T) {
		in := ExperienceInput{Ratio: 2, AttackerOffenseTotal: 50, AttackerPopulation: 1000, DefenderDefenseTotal: 100, DefenderPopulation: 400}

		low := Experience(in, script(0))
		high := Experience(in, script(0.999))

		require.Equal(t, 247, low.Attacker, "Should be round(255*0.97)")
		require.Equal(t, 263, high.Attacker, "Should be round(255*1.02994)")
	})

	t.Run("lopsided losses earn nothing", func(t *testing.T) {
		got := Experience(ExperienceInput{Ratio: 0.32, AttackerOffenseTotal: 10, AttackerPopulation: 100}, script(0.5))

		require.Equal(t, ResultLost, got.Result)
		require.Zero(t, got.Attacker, "Ratio under 0.33 should zero attacker experience")
		require.Zero(t, got.Defender, "Ratio under 0.33 should zero defender experience")
	})

	t.Run("zero ratio does not blow up", func(t *testing.T) {
		got := Experience(ExperienceInput{Ratio: 0}, script(0.5))

		require.Equal(t, ExperienceResult{Result: ResultLost}, got)
	})

	t.Run("label follows the ratio", func(t *testing.T) {
		src := random.New(3)
		for i := 0; i < 500; i++ {
			r := src.Float64() * 3
			got := Experience(ExperienceInput{Ratio: r, AttackerPopulation: 10, DefenderPopulation: 10}, src)
			require.Equal(t, r >= 1, got.IsWin(), "Win label should match ratio >= 1 for %f", r)
			if r < 0.33 {
				require.Zero(t, got.Attacker)
				require.Zero(t, got.Defender)
			}
		}
	})
}
