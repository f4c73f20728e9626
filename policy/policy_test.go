package policy

import (
	"bridge/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
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

func play(t *testing.T, s *game.State, texts ...string) {
	t.Helper()
	for _, c := range game.MustParseCards(s.Trump, texts...) {
		_, err := s.Apply(c, true)
		require.NoError(t, err)
	}
}

func mustCard(s *game.State, text string) game.Card {
	return game.MustParseCards(s.Trump, text)[0]
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		require.NoError(t, err, "Should resolve %s", name)
		require.NotNil(t, p)
	}
	_, err := ByName("Clairvoyant")
	require.Error(t, err, "Should reject unknown names at construction")
}

func TestPoliciesPlayLegalCards(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := ByName(name)
			require.NoError(t, err)
			for i := 0; i < 10; i++ {
				s, err := game.NewDeal(rng, 1+rng.Intn(game.NumFaces), game.TrumpOf(game.Hearts), game.North)
				require.NoError(t, err)
				for !s.IsGameOver() {
					c := p(s, rng)
					require.True(t, s.IsLegal(c), "%s should play a legal card, got %s", name, c)
					_, err := s.Apply(c, false)
					require.NoError(t, err)
				}
			}
		})
	}
}

func TestGreedyPolicies(t *testing.T) {
	hands := [game.NumPlayers][]string{
		{"H9", "HQ", "C2"},
		{"HK", "H3", "H4"},
		{"HA", "D7", "D8"},
		{"C8", "CK", "CA"},
	}

	t.Run("short greedy beats the trick or dumps", func(t *testing.T) {
		s := newState(t, game.TrumpOf(game.Spades), game.North, hands)
		play(t, s, "H9")
		require.Equal(t, mustCard(s, "HK"), HardShortGreedy(s, nil), "Hard should take with its highest winner")
		require.Equal(t, mustCard(s, "HK"), SoftShortGreedy(s, nil), "HK is the only winner")

		play(t, s, "H3")
		require.Equal(t, mustCard(s, "HA"), HardShortGreedy(s, nil))
	})

	t.Run("leading short greedy", func(t *testing.T) {
		s := newState(t, game.TrumpOf(game.Spades), game.North, hands)
		require.Equal(t, mustCard(s, "HQ"), HardShortGreedy(s, nil))
		require.Equal(t, mustCard(s, "C2"), SoftShortGreedy(s, nil))
	})

	t.Run("long greedy avoids cards a later seat beats", func(t *testing.T) {
		s := newState(t, game.TrumpOf(game.Spades), game.North, hands)
		// North's hearts lose to South's ace, C2 loses to West's clubs.
		require.Empty(t, s.SecureCards())
		require.Equal(t, mustCard(s, "C2"), HardLongGreedy(s, nil), "Should throw the lowest card")

		play(t, s, "H9", "HK")
		// South's ace cannot be beaten by West, who holds no hearts and no trumps.
		require.Equal(t, mustCard(s, "HA"), HardLongGreedy(s, nil))
		require.Equal(t, mustCard(s, "HA"), SoftLongGreedy(s, nil))
	})

	t.Run("whist switches on the bids", func(t *testing.T) {
		s := newState(t, game.TrumpOf(game.Spades), game.West, hands)
		// No other seat can beat West's clubs.
		s.Bids = [game.NumPlayers]int{1, 1, 1, 0}
		require.Equal(t, mustCard(s, "CA"), Whist(s, nil), "Underbid tables play hard")
		s.Bids = [game.NumPlayers]int{3, 1, 1, 0}
		require.Equal(t, mustCard(s, "C8"), Whist(s, nil), "Overbid tables play soft")
	})
}

func TestWithEpsilon(t *testing.T) {
	s := newState(t, game.NoTrump, game.North, [game.NumPlayers][]string{
		{"S2", "S3", "S4", "S5", "S6", "S7", "S8", "S9"},
		{"H2", "H3", "H4", "H5", "H6", "H7", "H8", "H9"},
		{"D2", "D3", "D4", "D5", "D6", "D7", "D8", "D9"},
		{"C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9"},
	})
	rng := rand.New(rand.NewSource(11))

	never := WithEpsilon(LowestFirst, 0)
	for i := 0; i < 50; i++ {
		require.Equal(t, mustCard(s, "S2"), never(s, rng), "Zero epsilon never deviates")
	}

	always := WithEpsilon(LowestFirst, 1)
	seen := map[game.Card]bool{}
	for i := 0; i < 200; i++ {
		c := always(s, rng)
		require.True(t, s.IsLegal(c))
		seen[c] = true
	}
	require.Greater(t, len(seen), 1, "Full epsilon should play random cards")
}
