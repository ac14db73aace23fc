package engine

import (
	"kingdom/game"
	"kingdom/random"

	"github.com/rs/zerolog"
)

type Option func(e *Engine)

// Engine resolves battles and spy missions between two combatant snapshots.
// It keeps no state between calls other than its random source, which makes
// an Engine unsafe for concurrent use.
type Engine struct {
	rules  game.Rules
	source random.Source
	logger zerolog.Logger
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithSource(src random.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.source = src
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.source = random.New(seed)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func New(options ...Option) *Engine {
	e := &Engine{ // Default values
		rules:  game.NewStandardRules(),
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(e)
	}
	if e.source == nil {
		seed, err := random.NewSeed()
		if err != nil {
			panic(err)
		}
		e.source = random.New(seed)
	}
	return e
}

// ratio divides a by b, falling back to a neutral 1 when b is zero.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 1
	}
	return a / b
}
