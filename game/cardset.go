package game

import (
	"math/bits"
	"strings"
)

const DeckSize = NumSuits * NumFaces

// CardSet is a set of cards keyed by identity. The zero value is empty.
type CardSet uint64

func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

// FullDeck holds all 52 cards.
const FullDeck CardSet = 1<<DeckSize - 1

func (s CardSet) Add(c Card) CardSet {
	return s | 1<<c.index()
}

func (s CardSet) Remove(c Card) CardSet {
	return s &^ (1 << c.index())
}

func (s CardSet) Contains(c Card) bool {
	return s&(1<<c.index()) != 0
}

func (s CardSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

func (s CardSet) IsEmpty() bool {
	return s == 0
}

func (s CardSet) Union(o CardSet) CardSet {
	return s | o
}

func (s CardSet) Intersect(o CardSet) CardSet {
	return s & o
}

func (s CardSet) Minus(o CardSet) CardSet {
	return s &^ o
}

func (s CardSet) IsDisjoint(o CardSet) bool {
	return s&o == 0
}

// OfSuit keeps only the cards of suit.
func (s CardSet) OfSuit(suit Suit) CardSet {
	if suit < 0 || int(suit) >= NumSuits {
		return 0
	}
	return s & (CardSet(1<<NumFaces-1) << (int(suit) * NumFaces))
}

// Cards lists the set in ascending index order (suit-major) with trump flags for trump.
func (s CardSet) Cards(trump Trump) []Card {
	cards := make([]Card, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		cards = append(cards, cardAt(bits.TrailingZeros64(rest), trump))
	}
	return cards
}

func (s CardSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, c := range s.Cards(NoTrump) {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
