package config

import (
	"os"
	"path/filepath"
	"testing"

	"bridge/game"
	"bridge/searcher/agent"

	"github.com/stretchr/testify/require"
)

const sample = `
name: pure-vs-simple
deals: 12
cardsInHand: 5
trump: H
bidSimulations: 200
agents:
  - kind: mcts-pure
    policy: Whist
    simulations: 50
  - kind: simple
    policy: Random
  - kind: alphabeta
    evaluation: LongGreedyEvaluation
    depth: 3
  - kind: mcts-stochastic
    policy: HardShortGreedy
    simulations: 40
    epsilon: 0.2
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.Equal(t, DefaultDeals, cfg.Deals)
		require.Equal(t, game.NumFaces, cfg.CardsInHand)
		require.Len(t, cfg.Agents, game.NumPlayers)
		_, fixed := cfg.FixedTrump()
		require.False(t, fixed)
	})

	t.Run("reads yaml", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "match.yaml", sample), filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.Equal(t, "pure-vs-simple", cfg.Name)
		require.Equal(t, 12, cfg.Deals)
		require.Equal(t, 5, cfg.CardsInHand)
		require.Equal(t, 200, cfg.BidSimulations)
		require.Equal(t, DefaultGoroutines, cfg.Goroutines, "Unset fields keep their default")
		require.Equal(t, agent.Config{Kind: agent.KindStochastic, Policy: "HardShortGreedy", Simulations: 40, Epsilon: 0.2}, cfg.Agents[3])

		trump, fixed := cfg.FixedTrump()
		require.True(t, fixed)
		require.Equal(t, game.TrumpOf(game.Hearts), trump)
	})

	t.Run("environment overrides", func(t *testing.T) {
		env := writeFile(t, "test.env", "BRIDGE_DEALS=3\nBRIDGE_LOG_LEVEL=debug\n")
		t.Setenv("BRIDGE_SEED", "99")
		t.Cleanup(func() {
			os.Unsetenv("BRIDGE_DEALS")
			os.Unsetenv("BRIDGE_LOG_LEVEL")
		})

		cfg, err := Load(writeFile(t, "match.yaml", sample), env)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Deals)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, uint64(99), cfg.Seed)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		for name, content := range map[string]string{
			"unknown policy":   "agents: [{kind: simple, policy: Psychic}, {kind: simple, policy: Random}, {kind: simple, policy: Random}, {kind: simple, policy: Random}]",
			"unknown kind":     "agents: [{kind: oracle}, {kind: simple, policy: Random}, {kind: simple, policy: Random}, {kind: simple, policy: Random}]",
			"three agents":     "agents: [{kind: simple, policy: Random}, {kind: simple, policy: Random}, {kind: simple, policy: Random}]",
			"too many cards":   "cardsInHand: 14",
			"bad trump":        "trump: X",
			"bad log level":    "logLevel: loud",
			"unknown evaluate": "agents: [{kind: alphabeta, evaluation: Hunch}, {kind: simple, policy: Random}, {kind: simple, policy: Random}, {kind: simple, policy: Random}]",
		} {
			_, err := Load(writeFile(t, "bad.yaml", content), filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err, name)
		}
	})
}
