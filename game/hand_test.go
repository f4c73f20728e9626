package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHand(t *testing.T) {
	trump := TrumpOf(Hearts)

	t.Run("rejects duplicate cards", func(t *testing.T) {
		_, err := ParseHand(trump, "SA", "SA")
		require.ErrorIs(t, err, ErrInvalidDeal)
	})

	t.Run("cards of suit", func(t *testing.T) {
		h, err := ParseHand(trump, "SA", "S3", "H2", "C9")
		require.NoError(t, err)
		require.Equal(t, MustParseCards(trump, "S3", "SA"), h.CardsOfSuit(Spades, 0))
		require.Empty(t, h.CardsOfSuit(Diamonds, 0))
		require.Len(t, h.CardsOfSuit(NoSuit, 0), 4, "Without a lead suit every card qualifies")
	})

	t.Run("panics when the hand holds a played card", func(t *testing.T) {
		h, err := ParseHand(trump, "SA", "S3")
		require.NoError(t, err)
		played := NewCardSet(MustParseCards(trump, "S3")...)
		require.Panics(t, func() {
			h.CardsOfSuit(Spades, played)
		}, "Should fail loudly on an already played card still in hand")
	})

	t.Run("play removes exactly one card", func(t *testing.T) {
		h, err := ParseHand(trump, "SA", "S3")
		require.NoError(t, err)
		require.NoError(t, h.Play(NewCard(Ace, Spades, trump)))
		require.Equal(t, 1, h.Len())
		require.ErrorIs(t, h.Play(NewCard(Ace, Spades, trump)), ErrCardNotInHand)
	})

	t.Run("lists the strongest card first", func(t *testing.T) {
		h, err := ParseHand(trump, "SK", "DA", "H2", "SA")
		require.NoError(t, err)
		require.Equal(t, "H2 SA DA SK", h.String())
	})
}

func TestPlayer(t *testing.T) {
	require.Equal(t, East, North.Next())
	require.Equal(t, North, West.Next())

	h, err := ParseHand(NoTrump, "D4")
	require.NoError(t, err)
	p := NewPlayer(South, h)
	c := NewCard(Four, Diamonds, NoTrump)
	require.NoError(t, p.Play(c))
	require.True(t, p.Played.Contains(c))
	require.ErrorIs(t, p.Play(c), ErrAlreadyPlayed)
}
