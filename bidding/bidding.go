package bidding

import (
	"bridge/game"
	"bridge/policy"
	"bridge/searcher"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const DefaultSimulations = 1000

// Estimator bids by simulation: each seat in turn plays out the deal many times with
// its own policy against random opponents, every bid raised to the number of cards in
// hand, and bids the trick count it reached most often. The last seat's bid is forced
// so that the bids never add up to the number of cards in hand.
type Estimator struct {
	simulations int
	goroutines  int
	rng         *rand.Rand
}

// NewEstimator seeds from the clock when seed is 0.
func NewEstimator(simulations, goroutines int, seed uint64) (*Estimator, error) {
	if simulations < 1 {
		return nil, fmt.Errorf("bidding needs at least one simulation, got %d", simulations)
	}
	if goroutines < 1 {
		return nil, fmt.Errorf("bidding needs at least one goroutine, got %d", goroutines)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Estimator{
		simulations: simulations,
		goroutines:  goroutines,
		rng:         rand.New(rand.NewSource(seed)),
	}, nil
}

// Bids returns one bid per seat. state is not modified.
func (e *Estimator) Bids(state *game.State, policies [game.NumPlayers]policy.Policy) ([game.NumPlayers]int, error) {
	var bids [game.NumPlayers]int

	snapshot := state.Clone()
	for _, p := range game.Positions {
		snapshot.Bids[p] = snapshot.CardsInHand
	}

	placed := 0
	for i, p := range game.Positions {
		own := policies[p]
		if own == nil {
			own = policy.Random
		}
		optimal, err := e.optimal(snapshot, p, own)
		if err != nil {
			return bids, fmt.Errorf("bidding for %s: %w", p, err)
		}

		bids[p] = optimal
		if i == game.NumPlayers-1 {
			bids[p] = ForcedBid(placed, state.CardsInHand, optimal)
			if bids[p] != optimal {
				log.Info().Msgf("%s is forced to bid %d instead of %d", p, bids[p], optimal)
			}
		}
		placed += bids[p]
	}

	log.Info().Msgf("deal %s bids %v", state.DealID, bids)
	return bids, nil
}

func (e *Estimator) optimal(state *game.State, seat game.Position, own policy.Policy) (int, error) {
	seeds := make([]uint64, e.simulations)
	for i := range seeds {
		seeds[i] = e.rng.Uint64()
	}

	tricks := make([]int, e.simulations)
	err := searcher.Parallel(e.goroutines, e.simulations, func(i int) error {
		final, err := searcher.Playout(state, seat, own, rand.New(rand.NewSource(seeds[i])))
		if err != nil {
			return err
		}
		tricks[i] = final.TricksWon[seat]
		return nil
	})
	if err != nil {
		return 0, err
	}
	return Mode(tricks), nil
}

// Mode is the most frequent value, the smallest one on ties. values must not be empty.
func Mode(values []int) int {
	counts := make(map[int]int, len(values))
	best := values[0]
	for _, v := range values {
		counts[v]++
		if counts[v] > counts[best] || (counts[v] == counts[best] && v < best) {
			best = v
		}
	}
	return best
}

// ForcedBid is the last seat's bid given the sum of the other bids: 0 when the table
// already overbid, 1 when it bid exactly the cards in hand, otherwise the remainder
// pushed one trick toward optimal.
func ForcedBid(placed, cardsInHand, optimal int) int {
	switch {
	case placed > cardsInHand:
		return 0
	case placed == cardsInHand:
		return 1
	}
	remaining := cardsInHand - placed
	if optimal > remaining {
		return remaining + 1
	}
	return remaining - 1
}
