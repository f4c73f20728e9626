package searcher

import (
	"bridge/experiments/metrics"
	"bridge/game"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// AlphaBeta is a fixed-depth minimax search with alpha-beta pruning. The searching seat
// maximises the evaluation and every other seat minimises it. Depth counts plies below
// the decision; depth 0 and 1 both score the immediate successors.
type AlphaBeta struct {
	depth    int
	evaluate game.Evaluate
	target   int
	rng      *rand.Rand
	metrics  metrics.Collector
	last     metrics.SearchMetric
}

func NewAlphaBeta(depth int, options ...Option) (*AlphaBeta, error) {
	if depth < 0 {
		return nil, fmt.Errorf("alpha-beta depth must not be negative, got %d", depth)
	}
	s := newSettings(options)
	return &AlphaBeta{
		depth:    depth,
		evaluate: s.evaluate,
		target:   s.target,
		rng:      s.rng(),
		metrics:  s.metrics,
	}, nil
}

func (a *AlphaBeta) FindMove(state *game.State) (game.Card, error) {
	if state.IsGameOver() {
		return game.Card{}, game.ErrGameOver
	}
	a.metrics.Start("alphabeta", 1)
	defer func() { a.last = a.metrics.Complete() }()

	player := state.Current
	legal := state.LegalActions()

	if a.depth == 0 {
		var best []game.Card
		bestScore := math.Inf(-1)
		for _, c := range legal {
			next, err := state.Successor(c)
			if err != nil {
				return game.Card{}, err
			}
			a.metrics.AddEpisode()
			score := a.evaluate(next, player, a.target)
			if score > bestScore {
				bestScore = score
				best = best[:0]
			}
			if score == bestScore {
				best = append(best, c)
			}
		}
		return best[a.rng.Intn(len(best))], nil
	}

	best := legal[0]
	alpha := math.Inf(-1)
	for _, c := range legal {
		next, err := state.Successor(c)
		if err != nil {
			return game.Card{}, err
		}
		score, err := a.search(next, player, 1, alpha, math.Inf(1))
		if err != nil {
			return game.Card{}, err
		}
		if score > alpha {
			alpha = score
			best = c
		}
	}
	return best, nil
}

// search returns the minimax value of s for player, looking depth plies deep so far.
func (a *AlphaBeta) search(s *game.State, player game.Position, depth int, alpha, beta float64) (float64, error) {
	a.metrics.AddEpisode()
	if depth >= a.depth || s.IsGameOver() {
		return a.evaluate(s, player, a.target), nil
	}

	maximizing := s.Current == player
	value := math.Inf(1)
	if maximizing {
		value = math.Inf(-1)
	}
	for _, c := range s.LegalActions() {
		next, err := s.Successor(c)
		if err != nil {
			return 0, err
		}
		v, err := a.search(next, player, depth+1, alpha, beta)
		if err != nil {
			return 0, err
		}
		if maximizing {
			value = math.Max(value, v)
			alpha = math.Max(alpha, value)
		} else {
			value = math.Min(value, v)
			beta = math.Min(beta, value)
		}
		if beta <= alpha {
			break
		}
	}
	return value, nil
}

func (a *AlphaBeta) LastMetric() metrics.SearchMetric {
	return a.last
}
