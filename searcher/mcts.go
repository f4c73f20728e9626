package searcher

import (
	"bridge/experiments/metrics"
	"bridge/game"
	"bridge/policy"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTS is a single-threaded UCT search. Its tree lives for the whole deal: every decision
// after the first re-roots the previous tree at the node reached by the cards played
// since. Rewards are the searching seat's final deal score.
type MCTS struct {
	simulations int
	exploration float64
	policy      policy.Policy
	rng         *rand.Rand
	root        *node
	seat        game.Position
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

func NewMCTS(simulations int, options ...Option) (*MCTS, error) {
	if simulations < 1 {
		return nil, fmt.Errorf("mcts needs at least one simulation, got %d", simulations)
	}
	s := newSettings(options)
	if s.exploration < 0 {
		return nil, fmt.Errorf("exploration constant must not be negative, got %v", s.exploration)
	}
	return &MCTS{
		simulations: simulations,
		exploration: s.exploration,
		policy:      s.policy,
		rng:         s.rng(),
		metrics:     s.metrics,
	}, nil
}

func (m *MCTS) FindMove(state *game.State) (game.Card, error) {
	if state.IsGameOver() {
		return game.Card{}, game.ErrGameOver
	}

	m.metrics.Start("mcts", 1)
	m.findRoot(state)
	for i := 0; i < m.simulations; i++ {
		if err := m.simulate(); err != nil {
			return game.Card{}, err
		}
		m.metrics.AddEpisode()
	}
	m.last = m.metrics.Complete()

	best := m.root.bestChild(m.exploration)
	log.Debug().Msgf("mcts %s picks %s after %d visits (mean %.2f over %d)", m.seat, best.action, m.root.visits, best.mean(), best.visits)
	return best.action, nil
}

func (m *MCTS) LastMetric() metrics.SearchMetric {
	return m.last
}

// Policy is how the searching seat plays inside its playouts.
func (m *MCTS) Policy() policy.Policy {
	return m.policy
}

func (m *MCTS) findRoot(state *game.State) {
	root := m.traverse(state)
	if root == nil {
		m.root = newNode(nil, state.Clone(), game.Card{})
		m.seat = state.Current
		m.metrics.SetTreeReset(true)
		return
	}
	root.detach(state.AlreadyPlayed)
	m.root = root
	m.metrics.SetTreeReset(false)
}

// traverse follows the cards laid since the last search down the old tree. It returns
// nil when the tree belongs to another deal or seat, or the path was never expanded.
func (m *MCTS) traverse(state *game.State) *node {
	if m.root == nil || len(state.PrevTricks) == 0 {
		return nil
	}
	if m.root.state.DealID != state.DealID || m.seat != state.Current {
		return nil
	}

	history := state.History()
	seen := m.root.state.AlreadyPlayed.Len()
	if len(history) != state.AlreadyPlayed.Len() || len(history) < seen {
		return nil
	}

	node := m.root
	for _, play := range history[seen:] {
		child := node.child(play.Card)
		if child == nil { // Node has not expanded this card
			return nil
		}
		node = child
	}

	if node.state.Current != state.Current || node.state.AlreadyPlayed != state.AlreadyPlayed {
		log.Warn().Msgf("mcts node for %s does not match the deal after %d cards", state.Current, len(history))
		return nil
	}
	return node
}

func (m *MCTS) simulate() error {
	leaf, err := m.selectThenExpand()
	if err != nil {
		return err
	}
	reward, err := m.rollout(leaf)
	if err != nil {
		leaf.discard()
		return err
	}
	backup(leaf, reward)
	return nil
}

func (m *MCTS) selectThenExpand() (*node, error) {
	n := m.root
	for !n.isTerminal() {
		if !n.isFullyExpanded() {
			return n.expand(m.rng)
		}
		n = n.bestChild(m.exploration)
	}
	return n, nil
}

func (m *MCTS) rollout(n *node) (float64, error) {
	if n.isTerminal() {
		return float64(n.state.Score[m.seat]), nil
	}

	opening := policy.Random(n.state, m.rng)
	final, err := Playout(n.state, m.seat, m.policy, m.rng, opening)
	if err != nil {
		return 0, err
	}
	m.metrics.AddFullPlayout()
	return float64(final.Score[m.seat]), nil
}

func backup(newNode *node, reward float64) {
	node := newNode
	for node != nil {
		parent := node.backup(reward)
		node = parent
	}
}
