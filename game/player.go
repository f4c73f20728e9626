package game

import "fmt"

type Position int8

const (
	North Position = iota
	East
	South
	West
)

const NumPlayers = 4

// Positions lists the seats in seating order.
var Positions = [NumPlayers]Position{North, East, South, West}

var positionTokens = [NumPlayers]string{"N", "E", "S", "W"}

// Next returns the seat to the left: N -> E -> S -> W -> N.
func (p Position) Next() Position {
	return (p + 1) % NumPlayers
}

func (p Position) String() string {
	if p < 0 || int(p) >= NumPlayers {
		return "?"
	}
	return positionTokens[p]
}

func ParsePosition(token string) (Position, error) {
	for _, p := range Positions {
		if positionTokens[p] == token {
			return p, nil
		}
	}
	return -1, fmt.Errorf("unknown position %q", token)
}

// Player is a seat with its remaining hand and the cards it has played this deal.
// Players are identified by position.
type Player struct {
	Position Position
	Hand     Hand
	Played   CardSet
}

func NewPlayer(position Position, hand Hand) Player {
	return Player{Position: position, Hand: hand}
}

func (p *Player) Play(c Card) error {
	if p.Played.Contains(c) {
		return fmt.Errorf("%w: %s by %s", ErrAlreadyPlayed, c, p.Position)
	}
	if err := p.Hand.Play(c); err != nil {
		return fmt.Errorf("player %s: %w", p.Position, err)
	}
	p.Played = p.Played.Add(c)
	return nil
}
