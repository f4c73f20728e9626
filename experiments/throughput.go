package experiments

import (
	"bridge/experiments/metrics"
	"bridge/game"
	"bridge/searcher"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Throughput times the rollout agent's first decision on the same random deals for
// each goroutine count, to see how the worker pool scales.
func Throughput(goroutines []int, deals, simulations, cardsInHand int, seed uint64) ([]metrics.ThroughputRecord, error) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	states := make([]*game.State, deals)
	for i := range states {
		state, err := game.NewDeal(rng, cardsInHand, game.ChooseTrump(rng, cardsInHand), game.Positions[i%game.NumPlayers])
		if err != nil {
			return nil, err
		}
		states[i] = state
	}

	records := []metrics.ThroughputRecord{}
	for _, n := range goroutines {
		log.Info().Msgf("timing %d simulations on %d goroutines over %d deals...", simulations, n, deals)

		r, err := searcher.NewRollout(simulations, searcher.WithGoroutines(n), searcher.WithSeed(seed), searcher.WithMetrics())
		if err != nil {
			return nil, err
		}
		record := metrics.ThroughputRecord{Goroutines: n, Decisions: deals}
		for i, state := range states {
			if _, err := r.FindMove(state); err != nil {
				return nil, fmt.Errorf("deal %d on %d goroutines: %w", i+1, n, err)
			}
			last := r.LastMetric()
			record.Duration += last.Duration
			record.FullPlayouts += last.FullPlayouts
		}
		records = append(records, record)

		log.Info().Msgf("%d goroutines: %.0f playouts/s", n, record.PlayoutsPerSecond())
	}
	return records, nil
}

// StoreThroughput writes records under root/throughput.
func StoreThroughput(root string, records []metrics.ThroughputRecord) (string, error) {
	writer, err := metrics.NewWriter(root, "throughput")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteThroughputRecords(records); err != nil {
		return "", fmt.Errorf("failed to write throughput records: %w", err)
	}
	log.Info().Msg("stored throughput records")
	return writer.Dir(), nil
}
