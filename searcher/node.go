package searcher

import (
	"bridge/game"

	"golang.org/x/exp/rand"
)

type node struct {
	parent   *node
	state    *game.State // Owned by the node, never mutated
	action   game.Card   // Card played from the parent state to reach this node
	player   game.Position
	tried    game.CardSet
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, state *game.State, action game.Card) *node {
	return &node{
		parent: parent,
		state:  state,
		action: action,
		player: state.Current,
	}
}

func (n *node) isTerminal() bool {
	return n.state.IsGameOver()
}

// untried is the part of the acting seat's hand that is legal here and not expanded yet.
func (n *node) untried() game.CardSet {
	hand := n.state.Player(n.player).Hand.Set()
	return hand.Intersect(n.state.LegalSet()).Minus(n.tried)
}

func (n *node) isFullyExpanded() bool {
	return n.untried().IsEmpty()
}

// expand adds a child for a random untried card.
func (n *node) expand(rng *rand.Rand) (*node, error) {
	actions := n.untried().Cards(n.state.Trump)
	action := actions[rng.Intn(len(actions))]
	next, err := n.state.Successor(action)
	if err != nil {
		return nil, err
	}
	child := newNode(n, next, action)
	n.children = append(n.children, child)
	n.tried = n.tried.Add(action)
	return child, nil
}

// bestChild picks the child with the highest UCT value; the first one wins ties.
func (n *node) bestChild(c float64) *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	policy := newUCT(c, float64(n.visits))
	best := n.children[0]
	bestScore := policy.evaluate(best.rewards, float64(best.visits))
	for _, child := range n.children[1:] {
		if score := policy.evaluate(child.rewards, float64(child.visits)); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// discard removes an unvisited n from its parent so its card can be expanded again.
func (n *node) discard() {
	if n.parent == nil || n.visits > 0 {
		return
	}
	parent := n.parent
	for i, child := range parent.children {
		if child == n {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	parent.tried = parent.tried.Remove(n.action)
	n.parent = nil
}

func (n *node) child(action game.Card) *node {
	for _, child := range n.children {
		if child.action.Equal(action) {
			return child
		}
	}
	return nil
}

// backup records one visit with its reward and returns the parent.
func (n *node) backup(reward float64) *node {
	n.visits++
	n.rewards += reward
	return n.parent
}

// detach turns n into a root and forgets every card laid in the real deal.
func (n *node) detach(played game.CardSet) {
	n.parent = nil
	children := n.children[:0]
	for _, child := range n.children {
		if !played.Contains(child.action) {
			children = append(children, child)
		}
	}
	n.children = children
	n.tried = n.tried.Union(played.Intersect(n.state.Player(n.player).Hand.Set()))
}

func (n *node) mean() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.rewards / float64(n.visits)
}
