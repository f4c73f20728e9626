package searcher

import (
	"bridge/experiments/metrics"
	"bridge/game"
	"bridge/policy"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(s *settings)

type settings struct {
	seed        uint64
	seeded      bool
	goroutines  int
	policy      policy.Policy
	epsilon     float64
	exploration float64
	evaluate    game.Evaluate
	target      int
	metrics     metrics.Collector
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		goroutines:  DefaultGoroutines,
		policy:      policy.Random,
		exploration: Exploration,
		evaluate:    game.EvaluateTricksWon,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// WithSeed makes the agent's random choices reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		s.goroutines = goroutines
	}
}

// WithPolicy sets how the searching seat plays inside simulated deals.
func WithPolicy(p policy.Policy) Option {
	return func(s *settings) {
		if p != nil {
			s.policy = p
		}
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(s *settings) {
		s.epsilon = epsilon
	}
}

func WithExploration(c float64) Option {
	return func(s *settings) {
		s.exploration = c
	}
}

func WithEvaluation(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithTarget sets the trick target handed to the evaluation function.
func WithTarget(target int) Option {
	return func(s *settings) {
		s.target = target
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func (s settings) rng() *rand.Rand {
	seed := s.seed
	if !s.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
