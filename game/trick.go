package game

import (
	"fmt"
	"strings"
)

// Play is one card laid in a trick.
type Play struct {
	Position Position
	Card     Card
}

// Trick holds up to one card per seat in play order. The zero value is an empty trick.
type Trick struct {
	plays [NumPlayers]Play
	n     int
}

func NewTrick() Trick {
	return Trick{}
}

func (t *Trick) Add(p Position, c Card) error {
	if t.n == NumPlayers {
		return fmt.Errorf("%w: cannot add %s for %s", ErrTrickFull, c, p)
	}
	for _, play := range t.Plays() {
		if play.Position == p {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p)
		}
		if play.Card.Equal(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
	}
	t.plays[t.n] = Play{Position: p, Card: c}
	t.n++
	return nil
}

func (t Trick) Len() int {
	return t.n
}

func (t Trick) IsEmpty() bool {
	return t.n == 0
}

func (t Trick) IsFull() bool {
	return t.n == NumPlayers
}

// Lead is the suit of the first card, or NoSuit.
func (t Trick) Lead() Suit {
	if t.n == 0 {
		return NoSuit
	}
	return t.plays[0].Card.Suit
}

// Leader is the seat that opened the trick. Only meaningful on a non-empty trick.
func (t Trick) Leader() Position {
	return t.plays[0].Position
}

// Plays returns the cards in play order.
func (t Trick) Plays() []Play {
	return t.plays[:t.n:t.n]
}

func (t Trick) Cards() []Card {
	cards := make([]Card, t.n)
	for i, play := range t.Plays() {
		cards[i] = play.Card
	}
	return cards
}

func (t Trick) Set() CardSet {
	var s CardSet
	for _, play := range t.Plays() {
		s = s.Add(play.Card)
	}
	return s
}

func (t Trick) CardOf(p Position) (Card, bool) {
	for _, play := range t.Plays() {
		if play.Position == p {
			return play.Card, true
		}
	}
	return Card{}, false
}

func (t Trick) Contains(p Position) bool {
	_, ok := t.CardOf(p)
	return ok
}

// Best returns the play currently taking the trick. ok is false for an empty trick.
func (t Trick) Best() (best Play, ok bool) {
	if t.n == 0 {
		return Play{}, false
	}
	lead := t.Lead()
	best = t.plays[0]
	for _, play := range t.plays[1:t.n] {
		if Outranks(play.Card, best.Card, lead) {
			best = play
		}
	}
	return best, true
}

// Beats reports whether c would take the trick if played now.
func (t Trick) Beats(c Card) bool {
	best, ok := t.Best()
	if !ok {
		return true
	}
	return Outranks(c, best.Card, t.Lead())
}

// Winner is defined only for a full trick.
func (t Trick) Winner() (Position, error) {
	if !t.IsFull() {
		return -1, fmt.Errorf("%w: %d of %d cards", ErrTrickIncomplete, t.n, NumPlayers)
	}
	best, _ := t.Best()
	return best.Position, nil
}

func (t Trick) String() string {
	parts := make([]string, t.n)
	for i, play := range t.Plays() {
		parts[i] = play.Position.String() + ":" + play.Card.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
