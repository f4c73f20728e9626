package bidding

import (
	"bridge/game"
	"bridge/policy"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestForcedBid(t *testing.T) {
	tests := []struct {
		name                         string
		placed, cardsInHand, optimal int
		expected                     int
	}{
		{"overbid table", 9, 8, 3, 0},
		{"exact table", 8, 8, 3, 1},
		{"optimal above remainder", 5, 8, 4, 4},
		{"optimal at remainder", 5, 8, 3, 2},
		{"optimal below remainder", 5, 8, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bid := ForcedBid(tt.placed, tt.cardsInHand, tt.optimal)
			require.Equal(t, tt.expected, bid)
			require.NotEqual(t, tt.cardsInHand, tt.placed+bid, "Bids should never add up to the cards in hand")
		})
	}
}

func TestMode(t *testing.T) {
	require.Equal(t, 3, Mode([]int{3}))
	require.Equal(t, 2, Mode([]int{1, 2, 2, 3}))
	require.Equal(t, 1, Mode([]int{2, 1, 1, 2}), "Ties go to the smaller value")
}

func TestNewEstimator(t *testing.T) {
	_, err := NewEstimator(0, 1, 1)
	require.Error(t, err)
	_, err = NewEstimator(10, 0, 1)
	require.Error(t, err)
}

func TestBids(t *testing.T) {
	t.Run("one card deal", func(t *testing.T) {
		var hands [game.NumPlayers]game.Hand
		for p, text := range []string{"SA", "H2", "H3", "H4"} {
			h, err := game.ParseHand(game.TrumpOf(game.Spades), text)
			require.NoError(t, err)
			hands[p] = h
		}
		s, err := game.NewState(hands, game.TrumpOf(game.Spades), game.East)
		require.NoError(t, err)

		e, err := NewEstimator(50, 4, 1)
		require.NoError(t, err)
		bids, err := e.Bids(s, [game.NumPlayers]policy.Policy{})
		require.NoError(t, err)
		// West would bid 0 but the table already bid the single trick.
		require.Equal(t, [game.NumPlayers]int{1, 0, 0, 1}, bids)
		require.Equal(t, [game.NumPlayers]int{}, s.Bids, "The state should not be touched")
	})

	t.Run("bids never add up to the cards in hand", func(t *testing.T) {
		rng := rand.New(rand.NewSource(8))
		e, err := NewEstimator(40, 4, 2)
		require.NoError(t, err)
		policies := [game.NumPlayers]policy.Policy{policy.HardShortGreedy, policy.Whist, nil, policy.LowestFirst}
		for i := 0; i < 5; i++ {
			s, err := game.NewDeal(rng, 2+rng.Intn(8), game.TrumpOf(game.Hearts), game.North)
			require.NoError(t, err)
			bids, err := e.Bids(s, policies)
			require.NoError(t, err)

			total := 0
			for _, b := range bids {
				require.GreaterOrEqual(t, b, 0)
				require.LessOrEqual(t, b, s.CardsInHand+1)
				total += b
			}
			require.NotEqual(t, s.CardsInHand, total)
		}
	})
}
