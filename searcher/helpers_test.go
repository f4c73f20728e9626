package searcher

import (
	"bridge/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, trump game.Trump, starting game.Position, hands [game.NumPlayers][]string) *game.State {
	t.Helper()
	var dealt [game.NumPlayers]game.Hand
	for _, p := range game.Positions {
		h, err := game.ParseHand(trump, hands[p]...)
		require.NoError(t, err)
		dealt[p] = h
	}
	s, err := game.NewState(dealt, trump, starting)
	require.NoError(t, err)
	return s
}

func mustCard(s *game.State, text string) game.Card {
	return game.MustParseCards(s.Trump, text)[0]
}

// forcedWin is a deal where North scores +2 by leading HA and -2 by leading H2,
// whatever the other seats do.
func forcedWin(t *testing.T) *game.State {
	t.Helper()
	s := newState(t, game.TrumpOf(game.Spades), game.North, [game.NumPlayers][]string{
		{"HA", "H2"},
		{"H3", "D2"},
		{"D3", "D4"},
		{"D5", "D6"},
	})
	s.Bids = [game.NumPlayers]int{2, 0, 0, 0}
	return s
}
