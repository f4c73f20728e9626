package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Hand is the set of cards a seat still holds.
type Hand struct {
	cards CardSet
	trump Trump
}

func NewHand(trump Trump, cards ...Card) (Hand, error) {
	h := Hand{trump: trump}
	for _, c := range cards {
		if h.cards.Contains(c) {
			return Hand{}, fmt.Errorf("%w: %s dealt twice", ErrInvalidDeal, c)
		}
		h.cards = h.cards.Add(c)
	}
	return h, nil
}

// ParseHand builds a hand from card text.
func ParseHand(trump Trump, texts ...string) (Hand, error) {
	cards := make([]Card, 0, len(texts))
	for _, text := range texts {
		c, err := ParseCard(text, trump)
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, c)
	}
	return NewHand(trump, cards...)
}

func (h Hand) Len() int {
	return h.cards.Len()
}

func (h Hand) IsEmpty() bool {
	return h.cards.IsEmpty()
}

func (h Hand) Contains(c Card) bool {
	return h.cards.Contains(c)
}

func (h Hand) Set() CardSet {
	return h.cards
}

func (h Hand) Cards() []Card {
	return h.cards.Cards(h.trump)
}

// CardsOfSuit returns the cards matching suit, or the whole hand for NoSuit.
// A hand that still holds an already played card is corrupt and panics.
func (h Hand) CardsOfSuit(suit Suit, alreadyPlayed CardSet) []Card {
	if !h.cards.IsDisjoint(alreadyPlayed) {
		panic(fmt.Errorf("%w: hand %s holds played cards %s", ErrInvariant, h.cards, h.cards.Intersect(alreadyPlayed)))
	}
	if suit == NoSuit {
		return h.Cards()
	}
	return h.cards.OfSuit(suit).Cards(h.trump)
}

// Play removes c from the hand.
func (h *Hand) Play(c Card) error {
	if !h.cards.Contains(c) {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, c)
	}
	before := h.cards.Len()
	h.cards = h.cards.Remove(c)
	if h.cards.Len() != before-1 {
		return fmt.Errorf("%w: removing %s did not shrink the hand", ErrInvariant, c)
	}
	return nil
}

// String lists the hand strongest card first.
func (h Hand) String() string {
	cards := h.Cards()
	slices.SortFunc(cards, func(a, b Card) int { return compareCards(b, a) })
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
