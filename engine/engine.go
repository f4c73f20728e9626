package engine

import (
	"bridge/experiments/metrics"
	"bridge/game"
	"bridge/policy"
)

type Engine interface {
	// Run plays a deal to the end and reports its outcome
	Run() (Result, error)
}

type Result struct {
	Deal  metrics.DealMetric
	Moves []metrics.MoveMetric
}

// Bidder fixes the contracts before the first card is played.
type Bidder interface {
	Bids(state *game.State, policies [game.NumPlayers]policy.Policy) ([game.NumPlayers]int, error)
}

// FixedBids bids the same contracts for every deal.
type FixedBids [game.NumPlayers]int

func (b FixedBids) Bids(*game.State, [game.NumPlayers]policy.Policy) ([game.NumPlayers]int, error) {
	return b, nil
}
