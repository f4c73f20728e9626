package agent

import (
	"bridge/experiments/metrics"
	"bridge/game"
	"bridge/policy"
	"time"

	"golang.org/x/exp/rand"
)

type simpleAgent struct {
	name   string
	policy policy.Policy
	rng    *rand.Rand
	last   metrics.SearchMetric
}

// NewSimpleAgent plays p directly, without search. A zero seed seeds from the clock.
func NewSimpleAgent(name string, p policy.Policy, seed uint64) Agent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &simpleAgent{name: name, policy: p, rng: rand.New(rand.NewSource(seed))}
}

func (a *simpleAgent) FindMove(state *game.State) (game.Card, error) {
	if state.IsGameOver() {
		return game.Card{}, game.ErrGameOver
	}
	start := time.Now()
	c := a.policy(state, a.rng)
	a.last = metrics.SearchMetric{Agent: a.name, Goroutines: 1, Duration: time.Since(start)}
	return c, nil
}

func (a *simpleAgent) Policy() policy.Policy {
	return a.policy
}

func (a *simpleAgent) LastMetric() metrics.SearchMetric {
	return a.last
}
