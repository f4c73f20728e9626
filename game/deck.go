package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// ChooseTrump picks the trump for a deal: no-trump for full 13-card hands, otherwise a
// random suit.
func ChooseTrump(rng *rand.Rand, cardsInHand int) Trump {
	if cardsInHand == NumFaces {
		return NoTrump
	}
	return TrumpOf(Suits[rng.Intn(NumSuits)])
}

// Deal hands out cardsInHand cards per seat. Pre-dealt cards stay with their seat and
// the remaining slots are filled from a shuffled deck.
func Deal(rng *rand.Rand, cardsInHand int, trump Trump, predealt [NumPlayers][]Card) ([NumPlayers]Hand, error) {
	var hands [NumPlayers]Hand
	if cardsInHand < 1 || cardsInHand > NumFaces {
		return hands, fmt.Errorf("%w: %d cards per hand", ErrInvalidDeal, cardsInHand)
	}

	var used CardSet
	for _, p := range Positions {
		if len(predealt[p]) > cardsInHand {
			return hands, fmt.Errorf("%w: %d cards pre-dealt to %s", ErrInvalidDeal, len(predealt[p]), p)
		}
		h, err := NewHand(trump, predealt[p]...)
		if err != nil {
			return hands, err
		}
		if !used.IsDisjoint(h.Set()) {
			return hands, fmt.Errorf("%w: %s pre-dealt twice", ErrInvalidDeal, used.Intersect(h.Set()))
		}
		used = used.Union(h.Set())
		hands[p] = h
	}

	deck := FullDeck.Minus(used).Cards(trump)
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	for _, p := range Positions {
		for hands[p].Len() < cardsInHand {
			hands[p].cards = hands[p].cards.Add(deck[0])
			deck = deck[1:]
		}
	}
	return hands, nil
}

// NewDeal deals random hands and builds the opening state.
func NewDeal(rng *rand.Rand, cardsInHand int, trump Trump, starting Position) (*State, error) {
	hands, err := Deal(rng, cardsInHand, trump, [NumPlayers][]Card{})
	if err != nil {
		return nil, err
	}
	return NewState(hands, trump, starting)
}
