package experiments

import (
	"context"
	"fmt"
	"sync"

	"kingdom/engine"
	"kingdom/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Scenario   *Scenario
	Games      int
	Goroutines int
	Seed       uint64 // Game i is played with seed Seed+i
	Collector  metrics.Collector
	Logger     *zerolog.Logger // Per-game engine logger, silent when nil
}

type Results struct {
	Battles []metrics.BattleRecord
	Spies   []metrics.SpyRecord
	Summary metrics.Summary
}

// Run plays cfg.Games independent simulations of the scenario on a pool of
// cfg.Goroutines workers. Records come back ordered by game number.
func Run(ctx context.Context, cfg Config) (Results, error) {
	if cfg.Scenario == nil {
		return Results{}, fmt.Errorf("run experiment: scenario is required")
	}
	if cfg.Games < 1 {
		return Results{}, fmt.Errorf("run experiment: games must be positive, got %d", cfg.Games)
	}
	if cfg.Goroutines < 1 {
		cfg.Goroutines = 1
	}
	if cfg.Collector == nil {
		cfg.Collector = metrics.NewCollector()
	}

	log.Info().Msgf("starting %s experiment %q with %d games on %d goroutines...", cfg.Scenario.Mode, cfg.Scenario.Name, cfg.Games, cfg.Goroutines)

	reports := make([]*engine.Report, cfg.Games)
	errs := make([]error, cfg.Games)

	task := make(chan int)
	cfg.Collector.Start()

	var wg sync.WaitGroup
	for i := 0; i < cfg.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for game := range task {
				report, err := playGame(cfg, game)
				if err != nil {
					errs[game] = err
					continue
				}
				reports[game] = &report
				collect(cfg.Collector, cfg.Seed, game, report)
			}
		}()
	}

	cancelled := dispatch(ctx, task, cfg.Games)
	wg.Wait()

	if cancelled != nil {
		return Results{}, fmt.Errorf("run experiment: %w", cancelled)
	}
	for game, err := range errs {
		if err != nil {
			return Results{}, fmt.Errorf("game %d: %w", game, err)
		}
	}

	results := Results{Summary: cfg.Collector.Complete()}
	for game, report := range reports {
		switch {
		case report.Battle != nil:
			results.Battles = append(results.Battles, battleRecord(cfg.Seed, game, report.Battle))
		default:
			results.Spies = append(results.Spies, spyRecord(cfg.Seed, game, *report))
		}
	}

	log.Info().Msgf("completed %s experiment %q: %d of %d attacker wins in %s", cfg.Scenario.Mode, cfg.Scenario.Name, results.Summary.AttackerWins, results.Summary.Games, results.Summary.Duration)
	return results, nil
}

// dispatch feeds game numbers to the workers until all are handed out or the
// context is done, and always closes task.
func dispatch(ctx context.Context, task chan<- int, games int) error {
	defer close(task)
	for game := 0; game < games; game++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task <- game:
		}
	}
	return nil
}

// playGame runs one simulation on fresh snapshots with its own engine, since an
// engine's random source must not be shared between goroutines.
func playGame(cfg Config, game int) (engine.Report, error) {
	req, err := cfg.Scenario.Request()
	if err != nil {
		return engine.Report{}, err
	}

	options := []engine.Option{engine.WithSeed(cfg.Seed + uint64(game))}
	if cfg.Logger != nil {
		options = append(options, engine.WithLogger(cfg.Logger.With().Int("game", game).Logger()))
	}
	e := engine.New(options...)

	return e.Run(req)
}

func collect(collector metrics.Collector, seed uint64, game int, report engine.Report) {
	if report.Battle != nil {
		collector.AddBattle(battleRecord(seed, game, report.Battle))
		return
	}
	collector.AddSpy(spyRecord(seed, game, report))
}

func battleRecord(seed uint64, game int, outcome *engine.BattleOutcome) metrics.BattleRecord {
	return metrics.BattleRecord{
		Game:               game,
		Seed:               seed + uint64(game),
		Result:             outcome.Experience.Result,
		TurnsExecuted:      outcome.TurnsExecuted,
		StartFortHitpoints: outcome.StartFortHitpoints,
		FinalFortHitpoints: outcome.FinalFortHitpoints,
		AttackerLosses:     outcome.AttackerLosses.Total,
		DefenderLosses:     outcome.DefenderLosses.Total,
		AttackerExperience: outcome.Experience.Attacker,
		DefenderExperience: outcome.Experience.Defender,
		Loot:               outcome.Loot,
	}
}

func spyRecord(seed uint64, game int, report engine.Report) metrics.SpyRecord {
	record := metrics.SpyRecord{
		Game: game,
		Seed: seed + uint64(game),
		Mode: string(report.Mode),
	}
	switch {
	case report.Intel != nil:
		record.Success = report.Intel.Success
		record.SpiesSent = report.Intel.SpiesSent
		record.SpiesLost = report.Intel.SpiesLost
		record.Percentage = report.Intel.Percentage
	case report.Assassination != nil:
		record.Target = string(report.Assassination.Target)
		record.Success = report.Assassination.Success
		record.SpiesSent = report.Assassination.SpiesSent
		record.SpiesLost = report.Assassination.SpiesLost
		record.UnitsKilled = report.Assassination.UnitsKilled
	}
	return record
}
