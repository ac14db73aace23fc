package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"kingdom/config"
	"kingdom/experiments"
	"kingdom/experiments/metrics"
	"kingdom/random"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	flag.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "Path to the scenario YAML file")
	flag.IntVar(&cfg.Games, "n", cfg.Games, "Number of games to simulate")
	flag.IntVar(&cfg.Goroutines, "goroutines", cfg.Goroutines, "Number of goroutines playing games in parallel")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the first game, random when 0")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory for CSV results")
	flag.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "Log level (debug, info, warn, error)")
	verbose := flag.Bool("v", false, "Log every engine turn at debug level")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if cfg.Seed == 0 {
		cfg.Seed, err = random.NewSeed()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to draw a seed")
		}
	}

	scenario, err := experiments.LoadScenario(cfg.Scenario)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load scenario")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runConfig := experiments.Config{
		Scenario:   scenario,
		Games:      cfg.Games,
		Goroutines: cfg.Goroutines,
		Seed:       cfg.Seed,
	}
	if *verbose {
		runConfig.Logger = &log.Logger
	}

	results, err := experiments.Run(ctx, runConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment writer")
	}
	if len(results.Battles) > 0 {
		if err := writer.WriteBattleRecords(results.Battles); err != nil {
			log.Fatal().Err(err).Msg("failed to write battle records")
		}
		log.Info().Msg("stored battle records")
	}
	if len(results.Spies) > 0 {
		if err := writer.WriteSpyRecords(results.Spies); err != nil {
			log.Fatal().Err(err).Msg("failed to write spy records")
		}
		log.Info().Msg("stored spy records")
	}
	if err := writer.WriteSummary(results.Summary); err != nil {
		log.Fatal().Err(err).Msg("failed to write summary")
	}

	log.Info().Msgf("seed %d: %d games, win rate %.2f, results in %s", cfg.Seed, results.Summary.Games, results.Summary.WinRate(), writer.Dir())
}
