package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Suit int8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NoSuit is the lead suit of an empty trick.
const NoSuit Suit = -1

const NumSuits = 4

var Suits = [NumSuits]Suit{Spades, Hearts, Diamonds, Clubs}

var suitTokens = [NumSuits]string{"S", "H", "D", "C"}
var suitSymbols = [NumSuits]string{"♠", "♥", "♦", "♣"}

func (s Suit) String() string {
	if s < 0 || int(s) >= NumSuits {
		return "-"
	}
	return suitTokens[s]
}

// Symbol returns the suit's display glyph.
func (s Suit) Symbol() string {
	if s < 0 || int(s) >= NumSuits {
		return "-"
	}
	return suitSymbols[s]
}

// ParseSuit accepts a letter token (S, H, D, C) or a suit glyph.
func ParseSuit(token string) (Suit, error) {
	for _, s := range Suits {
		if strings.EqualFold(token, suitTokens[s]) || token == suitSymbols[s] {
			return s, nil
		}
	}
	return NoSuit, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, token)
}

type Face int8

const (
	Two Face = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const NumFaces = 13

const faceTokens = "23456789TJQKA"

func (f Face) String() string {
	if f < 0 || int(f) >= NumFaces {
		return "?"
	}
	return faceTokens[f : f+1]
}

func ParseFace(token string) (Face, error) {
	if len(token) == 1 {
		if i := strings.IndexByte(faceTokens, strings.ToUpper(token)[0]); i >= 0 {
			return Face(i), nil
		}
	}
	return -1, fmt.Errorf("%w: unknown face %q", ErrInvalidCard, token)
}

// Trump is the trump suit of a deal, or NoTrump.
type Trump int8

const NoTrump Trump = -1

func TrumpOf(s Suit) Trump {
	return Trump(s)
}

// Is reports whether cards of suit s are trumps.
func (t Trump) Is(s Suit) bool {
	return t != NoTrump && Suit(t) == s
}

func (t Trump) String() string {
	if t == NoTrump {
		return "NT"
	}
	return Suit(t).String()
}

// ParseTrump accepts "NT" or any suit token.
func ParseTrump(token string) (Trump, error) {
	if strings.EqualFold(token, "NT") {
		return NoTrump, nil
	}
	s, err := ParseSuit(token)
	if err != nil {
		return NoTrump, fmt.Errorf("%w: unknown trump %q", ErrInvalidTrump, token)
	}
	return TrumpOf(s), nil
}

// Card is immutable. Its trump flag is fixed when the card is created for a deal.
type Card struct {
	Face  Face
	Suit  Suit
	Trump bool
}

func NewCard(face Face, suit Suit, trump Trump) Card {
	return Card{Face: face, Suit: suit, Trump: trump.Is(suit)}
}

// ParseCard reads the text form: a suit token followed by a face token, e.g. "SA", "H9", "♣T".
func ParseCard(text string, trump Trump) (Card, error) {
	text = strings.TrimSpace(text)
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError || size == len(text) {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, text)
	}
	suit, err := ParseSuit(string(r))
	if err != nil {
		return Card{}, err
	}
	face, err := ParseFace(text[size:])
	if err != nil {
		return Card{}, err
	}
	return NewCard(face, suit, trump), nil
}

// MustParseCards panics on invalid text. Intended for fixtures.
func MustParseCards(trump Trump, texts ...string) []Card {
	cards := make([]Card, len(texts))
	for i, text := range texts {
		c, err := ParseCard(text, trump)
		if err != nil {
			panic(err)
		}
		cards[i] = c
	}
	return cards
}

func (c Card) String() string {
	return c.Suit.String() + c.Face.String()
}

// Equal compares identity (face and suit).
func (c Card) Equal(o Card) bool {
	return c.Face == o.Face && c.Suit == o.Suit
}

// Less is a total order used to rank cards for min/max choices: any trump beats any
// non-trump, then faces compare, then suits in the order spades > hearts > diamonds > clubs.
// Whether a card can take a trick is decided by Outranks.
func (c Card) Less(o Card) bool {
	if c.Trump != o.Trump {
		return o.Trump
	}
	if c.Face != o.Face {
		return c.Face < o.Face
	}
	return c.Suit > o.Suit
}

// Outranks reports whether a beats b inside a trick led with suit lead.
// Cards of different non-trump suits never beat the lead suit.
func Outranks(a, b Card, lead Suit) bool {
	switch {
	case a.Trump != b.Trump:
		return a.Trump
	case a.Suit == b.Suit:
		return a.Face > b.Face
	default:
		return a.Suit == lead
	}
}

func (c Card) index() int {
	return int(c.Suit)*NumFaces + int(c.Face)
}

func cardAt(i int, trump Trump) Card {
	return NewCard(Face(i%NumFaces), Suit(i/NumFaces), trump)
}

func compareCards(a, b Card) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Highest returns the greatest card by Less. cards must not be empty.
func Highest(cards []Card) Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if best.Less(c) {
			best = c
		}
	}
	return best
}

// Lowest returns the smallest card by Less. cards must not be empty.
func Lowest(cards []Card) Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Less(best) {
			best = c
		}
	}
	return best
}
