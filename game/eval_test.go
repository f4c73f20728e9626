package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluationByName(t *testing.T) {
	for _, name := range EvaluationNames() {
		evaluate, err := EvaluationByName(name)
		require.NoError(t, err)
		require.NotNil(t, evaluate)
	}
	_, err := EvaluationByName("Nope")
	require.Error(t, err)
}

func TestEvaluations(t *testing.T) {
	hands := [NumPlayers][]string{
		{"HA", "C2"},
		{"HK", "S3"},
		{"H2", "D7"},
		{"C8", "CK"},
	}

	t.Run("tricks won and target", func(t *testing.T) {
		s := newTestState(t, TrumpOf(Spades), North, hands)
		s.TricksWon[North] = 2
		require.Equal(t, 2.0, EvaluateTricksWon(s, North, 0))
		require.Equal(t, 1.0, EvaluateTargetReached(s, North, 2))
		require.Equal(t, 0.0, EvaluateTargetReached(s, North, 3))
		require.Equal(t, 0.0, EvaluateTargetReached(s, North, 0), "Without a target nothing is reached")
	})

	t.Run("short greedy counts cards that beat the trick", func(t *testing.T) {
		s := newTestState(t, TrumpOf(Spades), West, hands)
		_, err := s.Apply(card(t, s, "C8"), true)
		require.NoError(t, err)
		// North may only answer with C2, which loses.
		require.Equal(t, 0.0, EvaluateShortGreedy(s, North, 0))
		// East is void in clubs and holds a trump.
		require.Equal(t, 1.0, EvaluateShortGreedy(s, East, 0))
		// West holds the trick.
		require.Equal(t, 1.0, EvaluateShortGreedy(s, West, 0))
	})

	t.Run("long greedy looks at every hand", func(t *testing.T) {
		s := newTestState(t, TrumpOf(Spades), North, hands)
		// HA cannot be beaten: East must follow with HK, South with H2, West has no trump.
		require.Equal(t, 1.0, EvaluateLongGreedy(s, North, 0))
		require.Equal(t, []Card{card(t, s, "HA")}, s.LeadCandidates())

		s.TricksWon[South] = 1
		// South's H2 loses to the ace and D7 leads into East's trump.
		require.Equal(t, float64(NumFaces), EvaluateLongGreedy(s, South, 0))
	})
}

func TestDeal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("honours pre-dealt cards", func(t *testing.T) {
		var predealt [NumPlayers][]Card
		predealt[East] = MustParseCards(NoTrump, "SA", "HA")
		hands, err := Deal(rng, 5, NoTrump, predealt)
		require.NoError(t, err)

		var all CardSet
		for _, p := range Positions {
			require.Equal(t, 5, hands[p].Len())
			require.True(t, all.IsDisjoint(hands[p].Set()))
			all = all.Union(hands[p].Set())
		}
		require.True(t, hands[East].Contains(predealt[East][0]))
		require.True(t, hands[East].Contains(predealt[East][1]))
	})

	t.Run("rejects cards pre-dealt twice", func(t *testing.T) {
		var predealt [NumPlayers][]Card
		predealt[East] = MustParseCards(NoTrump, "SA")
		predealt[West] = MustParseCards(NoTrump, "SA")
		_, err := Deal(rng, 5, NoTrump, predealt)
		require.ErrorIs(t, err, ErrInvalidDeal)
	})

	t.Run("full hands play without trump", func(t *testing.T) {
		require.Equal(t, NoTrump, ChooseTrump(rng, NumFaces))
		require.NotEqual(t, NoTrump, ChooseTrump(rng, 7))
	})
}
