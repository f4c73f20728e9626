package searcher

import (
	"bridge/experiments/metrics"
	"bridge/game"
	"bridge/policy"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Rollout is single-shot Monte-Carlo search: it samples opening cards uniformly with
// replacement, finishes each sampled deal on the worker pool and plays the card with
// the highest total score. Nothing is kept between decisions.
type Rollout struct {
	name        string
	simulations int
	goroutines  int
	policy      policy.Policy
	rng         *rand.Rand
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

func NewRollout(simulations int, options ...Option) (*Rollout, error) {
	return newRollout("mcts-simple", simulations, newSettings(options))
}

// NewStochasticRollout is a Rollout whose searching seat deviates to a random card with
// probability epsilon during playouts. Epsilon defaults to DefaultEpsilon.
func NewStochasticRollout(simulations int, options ...Option) (*Rollout, error) {
	options = append([]Option{WithEpsilon(DefaultEpsilon)}, options...)
	return newRollout("mcts-stochastic", simulations, newSettings(options))
}

func newRollout(name string, simulations int, s settings) (*Rollout, error) {
	if simulations < 1 {
		return nil, fmt.Errorf("%s needs at least one simulation, got %d", name, simulations)
	}
	if s.goroutines < 1 {
		return nil, fmt.Errorf("%s needs at least one goroutine, got %d", name, s.goroutines)
	}
	if s.epsilon < 0 || s.epsilon > 1 {
		return nil, fmt.Errorf("epsilon must be within [0, 1], got %v", s.epsilon)
	}

	p := s.policy
	if s.epsilon > 0 {
		p = policy.WithEpsilon(p, s.epsilon)
	}
	return &Rollout{
		name:        name,
		simulations: simulations,
		goroutines:  s.goroutines,
		policy:      p,
		rng:         s.rng(),
		metrics:     s.metrics,
	}, nil
}

func (r *Rollout) FindMove(state *game.State) (game.Card, error) {
	legal := state.LegalActions()
	if state.IsGameOver() || len(legal) == 0 {
		return game.Card{}, game.ErrGameOver
	}
	seat := state.Current

	// Draw openings and per-simulation seeds up front so the result only depends on rng
	openings := make([]game.Card, r.simulations)
	seeds := make([]uint64, r.simulations)
	for i := range openings {
		openings[i] = legal[r.rng.Intn(len(legal))]
		seeds[i] = r.rng.Uint64()
	}

	r.metrics.Start(r.name, r.goroutines)
	scores := make([]int, r.simulations)
	err := Parallel(r.goroutines, r.simulations, func(i int) error {
		rng := rand.New(rand.NewSource(seeds[i]))
		final, err := Playout(state, seat, r.policy, rng, openings[i])
		if err != nil {
			return err
		}
		scores[i] = final.Score[seat]
		r.metrics.AddFullPlayout()
		r.metrics.AddEpisode()
		return nil
	})
	if err != nil {
		return game.Card{}, err
	}
	r.last = r.metrics.Complete()

	totals := make(map[game.Card]int, len(legal))
	for i, c := range openings {
		totals[c] += scores[i]
	}

	best := legal[0]
	for _, c := range legal[1:] {
		if totals[c] > totals[best] {
			best = c
		}
	}
	log.Debug().Msgf("%s %s picks %s with total %d over %d simulations", r.name, seat, best, totals[best], r.simulations)
	return best, nil
}

func (r *Rollout) LastMetric() metrics.SearchMetric {
	return r.last
}

// Policy is how the searching seat plays inside its simulations.
func (r *Rollout) Policy() policy.Policy {
	return r.policy
}
