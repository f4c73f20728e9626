package agent

import (
	"bridge/game"
	"bridge/policy"
	"bridge/searcher"
	"fmt"
	"strconv"
	"strings"
)

type Agent interface {
	// FindMove returns the card the seat to act should play. The state is not modified.
	FindMove(state *game.State) (game.Card, error)
}

const (
	KindSimple     = "simple"
	KindAlphaBeta  = "alphabeta"
	KindRollout    = "mcts-simple"
	KindStochastic = "mcts-stochastic"
	KindMCTS       = "mcts-pure"
)

// Config describes one agent. Unused fields are ignored by the chosen kind.
type Config struct {
	Kind        string  `yaml:"kind"`
	Policy      string  `yaml:"policy"`
	Evaluation  string  `yaml:"evaluation"`
	Depth       int     `yaml:"depth"`
	Simulations int     `yaml:"simulations"`
	Epsilon     float64 `yaml:"epsilon"`
	Exploration float64 `yaml:"exploration"`
	Target      int     `yaml:"target"`
	Goroutines  int     `yaml:"goroutines"`
	Seed        uint64  `yaml:"seed"`
	Metrics     bool    `yaml:"metrics"`
}

func (c Config) String() string {
	parts := []string{c.Kind}
	switch c.Kind {
	case KindSimple:
		parts = append(parts, c.Policy)
	case KindAlphaBeta:
		parts = append(parts, c.Evaluation, strconv.Itoa(c.Depth))
	default:
		parts = append(parts, c.Policy, strconv.Itoa(c.Simulations))
	}
	return strings.Join(parts, "-")
}

// New builds the agent described by c. Unknown kinds, policies and evaluations are
// rejected here rather than during play.
func New(c Config) (Agent, error) {
	options, err := c.options()
	if err != nil {
		return nil, err
	}

	switch c.Kind {
	case KindSimple:
		p, err := policy.ByName(c.Policy)
		if err != nil {
			return nil, err
		}
		return NewSimpleAgent(c.Policy, p, c.Seed), nil
	case KindAlphaBeta:
		a, err := searcher.NewAlphaBeta(c.Depth, options...)
		if err != nil {
			return nil, err
		}
		return a, nil
	case KindRollout:
		r, err := searcher.NewRollout(c.Simulations, options...)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindStochastic:
		r, err := searcher.NewStochasticRollout(c.Simulations, options...)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindMCTS:
		m, err := searcher.NewMCTS(c.Simulations, options...)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", c.Kind)
	}
}

func (c Config) options() ([]searcher.Option, error) {
	options := []searcher.Option{}

	if c.Policy != "" {
		p, err := policy.ByName(c.Policy)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithPolicy(p))
	}
	if c.Evaluation != "" {
		evaluate, err := game.EvaluationByName(c.Evaluation)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluation(evaluate))
	}
	if c.Epsilon != 0 {
		options = append(options, searcher.WithEpsilon(c.Epsilon))
	}
	if c.Exploration != 0 {
		options = append(options, searcher.WithExploration(c.Exploration))
	}
	if c.Target > 0 {
		options = append(options, searcher.WithTarget(c.Target))
	}
	if c.Goroutines != 0 {
		options = append(options, searcher.WithGoroutines(c.Goroutines))
	}
	if c.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Seed))
	}
	if c.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return options, nil
}

// BiddingPolicy is how a seat plays in bidding simulations: its own policy when the
// agent has one, random play otherwise.
func BiddingPolicy(a Agent) policy.Policy {
	if p, ok := a.(interface{ Policy() policy.Policy }); ok {
		return p.Policy()
	}
	return policy.Random
}
