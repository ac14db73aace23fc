package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"KINGDOM_TEST_PORT" envDefault:"123"`
}

func TestParseEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg envTestConfig
		require.NoError(t, ParseEnv(&cfg))
		require.Equal(t, 123, cfg.Port, "expected default port")
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg envTestConfig
		t.Setenv("KINGDOM_TEST_PORT", "not-an-int")

		err := ParseEnv(&cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "parse env:", "expected parse env prefix")
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 100, cfg.Games)
		require.Equal(t, 4, cfg.Goroutines)
		require.Equal(t, uint64(0), cfg.Seed, "seed should default to random")
		require.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("KINGDOM_GAMES", "7")
		t.Setenv("KINGDOM_SEED", "42")
		t.Setenv("KINGDOM_SCENARIO", "raid.yaml")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 7, cfg.Games)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, "raid.yaml", cfg.Scenario)
	})

	t.Run("does not range check", func(t *testing.T) {
		t.Setenv("KINGDOM_GAMES", "0")

		cfg, err := Load()
		require.NoError(t, err, "out of range values may still be overridden by flags")
		require.Equal(t, 0, cfg.Games)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Games: 5, Goroutines: 2}
	require.NoError(t, valid.Validate())

	t.Run("rejects non-positive games", func(t *testing.T) {
		cfg := valid
		cfg.Games = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive goroutines", func(t *testing.T) {
		cfg := valid
		cfg.Goroutines = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("accepts an overridden bad env value", func(t *testing.T) {
		t.Setenv("KINGDOM_GAMES", "0")

		cfg, err := Load()
		require.NoError(t, err)
		cfg.Games = 5
		require.NoError(t, cfg.Validate())
	})
}
