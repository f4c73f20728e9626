package searcher

import (
	"bridge/game"
	"bridge/policy"

	"golang.org/x/exp/rand"
)

// Playout finishes the deal on a copy of state: the opening cards are applied first,
// then seat plays own and every other seat plays at random until all tricks are taken.
// The returned state holds the settled score.
func Playout(state *game.State, seat game.Position, own policy.Policy, rng *rand.Rand, opening ...game.Card) (*game.State, error) {
	s := state.Clone()
	for _, c := range opening {
		if _, err := s.Apply(c, false); err != nil {
			return nil, err
		}
	}

	for s.TricksPlayed() < s.CardsInHand {
		choose := policy.Random
		if s.Current == seat {
			choose = own
		}
		if _, err := s.Apply(choose(s, rng), false); err != nil {
			return nil, err
		}
	}
	return s, nil
}
