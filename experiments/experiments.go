package experiments

import (
	"bridge/bidding"
	"bridge/config"
	"bridge/engine"
	"bridge/experiments/metrics"
	"bridge/game"
	"bridge/searcher/agent"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Summary struct {
	Deals  int
	Totals [game.NumPlayers]int // Sum of deal scores per seat
	Dir    string               // Where the records were written, if anywhere
}

// Run plays cfg.Deals deals between the configured agents. The seat to lead rotates
// from deal to deal and bids come from simulation. The agents live for the whole match.
func Run(cfg *config.Config) (Summary, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	agents, err := newAgents(cfg, seed)
	if err != nil {
		return Summary{}, err
	}
	estimator, err := bidding.NewEstimator(cfg.BidSimulations, cfg.Goroutines, rng.Uint64())
	if err != nil {
		return Summary{}, err
	}

	log.Info().Msgf("starting %s: %d deals of %d cards", cfg.Name, cfg.Deals, cfg.CardsInHand)
	for i, a := range cfg.Agents {
		log.Info().Msgf("%s plays %s", game.Positions[i], a)
	}

	summary := Summary{Deals: cfg.Deals}
	dealRecords := []metrics.DealRecord{}
	moveRecords := []metrics.MoveRecord{}

	for i := 0; i < cfg.Deals; i++ {
		trump, fixed := cfg.FixedTrump()
		if !fixed {
			trump = game.ChooseTrump(rng, cfg.CardsInHand)
		}
		starting := game.Positions[i%game.NumPlayers]

		state, err := game.NewDeal(rng, cfg.CardsInHand, trump, starting)
		if err != nil {
			return summary, fmt.Errorf("deal %d: %w", i+1, err)
		}
		e, err := engine.LocalEngine(state, agents, estimator)
		if err != nil {
			return summary, err
		}
		result, err := e.Run()
		if err != nil {
			return summary, fmt.Errorf("deal %d: %w", i+1, err)
		}

		for _, p := range game.Positions {
			summary.Totals[p] += result.Deal.Scores[p]
		}
		dealRecords = append(dealRecords, metrics.DealRecord{ID: i + 1, DealMetric: result.Deal})
		for _, mm := range result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Deal: i + 1, MoveMetric: mm})
		}
		log.Info().Msgf("completed deal %d of %d, totals %v", i+1, cfg.Deals, summary.Totals)
	}

	log.Info().Msgf("completed %s with totals %v", cfg.Name, summary.Totals)

	if cfg.OutputDir == "" {
		return summary, nil
	}
	dir, err := store(cfg, summary, dealRecords, moveRecords)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

// newAgents builds one agent per seat. Agents without a seed of their own get one
// derived from the match seed so that seeded matches replay exactly.
func newAgents(cfg *config.Config, seed uint64) ([game.NumPlayers]agent.Agent, error) {
	var agents [game.NumPlayers]agent.Agent
	if len(cfg.Agents) != game.NumPlayers {
		return agents, fmt.Errorf("need %d agents, got %d", game.NumPlayers, len(cfg.Agents))
	}
	for i, c := range cfg.Agents {
		if c.Seed == 0 {
			c.Seed = seed + uint64(i) + 1
		}
		a, err := agent.New(c)
		if err != nil {
			return agents, fmt.Errorf("agent %s: %w", game.Positions[i], err)
		}
		agents[i] = a
	}
	return agents, nil
}

func store(cfg *config.Config, summary Summary, deals []metrics.DealRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	agentRecords := make([]metrics.AgentRecord, 0, len(cfg.Agents))
	for i, c := range cfg.Agents {
		agentRecords = append(agentRecords, metrics.AgentRecord{
			Seat:        game.Positions[i].String(),
			Kind:        c.Kind,
			Policy:      c.Policy,
			Evaluation:  c.Evaluation,
			Depth:       c.Depth,
			Simulations: c.Simulations,
			Epsilon:     c.Epsilon,
			TotalScore:  summary.Totals[i],
		})
	}
	if err := writer.WriteAgentRecords(agentRecords); err != nil {
		return "", fmt.Errorf("failed to store agent records: %w", err)
	}
	log.Info().Msg("stored agent records")

	if err := writer.WriteDealRecords(deals); err != nil {
		return "", fmt.Errorf("failed to write deal records: %w", err)
	}
	log.Info().Msg("stored deal records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
