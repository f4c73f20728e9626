package engine

import (
	"bridge/experiments/metrics"
	"bridge/game"
	"bridge/policy"
	"bridge/searcher/agent"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Local struct {
	State  *game.State
	Agents [game.NumPlayers]agent.Agent
	bidder Bidder
}

// LocalEngine drives one deal in process. A nil bidder keeps the bids already on state.
func LocalEngine(state *game.State, agents [game.NumPlayers]agent.Agent, bidder Bidder) (*Local, error) {
	for _, p := range game.Positions {
		if agents[p] == nil {
			return nil, fmt.Errorf("no agent for seat %s", p)
		}
	}
	return &Local{
		State:  state,
		Agents: agents,
		bidder: bidder,
	}, nil
}

// Run bids, then asks the agent of the seat to act for a card until every trick is
// taken. Agents see a copy of the state, so a misbehaving agent cannot corrupt the deal.
func (e *Local) Run() (Result, error) {
	metric := metrics.DealMetric{
		DealID:       e.State.DealID,
		StartingSeat: e.State.Current.String(),
		Trump:        e.State.Trump.String(),
		CardsInHand:  e.State.CardsInHand,
		StartTime:    time.Now(),
	}

	if e.bidder != nil {
		var policies [game.NumPlayers]policy.Policy
		for _, p := range game.Positions {
			policies[p] = agent.BiddingPolicy(e.Agents[p])
		}
		bids, err := e.bidder.Bids(e.State, policies)
		if err != nil {
			return Result{}, fmt.Errorf("bidding: %w", err)
		}
		e.State.Bids = bids
	}
	metric.Bids = e.State.Bids

	log.Info().Msgf("deal %s: %s leads, trump %s, %d cards, bids %v", e.State.DealID, e.State.Current, e.State.Trump, e.State.CardsInHand, e.State.Bids)

	var moves []metrics.MoveMetric
	for step := 1; !e.State.IsGameOver(); step++ {
		seat := e.State.Current
		card, err := e.Agents[seat].FindMove(e.State.Clone())
		if err != nil {
			return Result{}, fmt.Errorf("agent %s at step %d: %w", seat, step, err)
		}
		if err := e.Play(card); err != nil {
			return Result{}, fmt.Errorf("agent %s at step %d: %w", seat, step, err)
		}

		move := metrics.MoveMetric{Step: step, Seat: seat.String(), Card: card.String()}
		if reporter, ok := e.Agents[seat].(metrics.Reporter); ok {
			move.SearchMetric = reporter.LastMetric()
		}
		moves = append(moves, move)
	}

	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	metric.TotalMoves = len(moves)
	metric.TricksWon = e.State.TricksWon
	metric.Scores = e.State.Score

	log.Info().Msgf("deal %s over: tricks %v, scores %v", e.State.DealID, e.State.TricksWon, e.State.Score)
	return Result{Deal: metric, Moves: moves}, nil
}

// Play applies a card for the seat to act after checking it is legal.
func (e *Local) Play(card game.Card) error {
	if card.Trump != e.State.Trump.Is(card.Suit) {
		return fmt.Errorf("%w: %s is not from a %s deal", game.ErrInvalidCard, card, e.State.Trump)
	}
	if !e.State.IsLegal(card) {
		return fmt.Errorf("%w: %s cannot play %s", game.ErrIllegalAction, e.State.Current, card)
	}
	trick, err := e.State.Apply(card, true)
	if err != nil {
		if errors.Is(err, game.ErrInvariant) {
			log.Error().Err(err).Msgf("deal %s is corrupted", e.State.DealID)
		}
		return err
	}

	log.Debug().
		Str("deal", e.State.DealID.String()).
		Stringer("card", card).
		Int("trick", len(e.State.PrevTricks)).
		Msgf("played into %s", trick)
	return nil
}
