package game

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// State is the full state of one deal. Search code never mutates a State it did not
// clone itself: use Successor, or Clone followed by Apply.
type State struct {
	DealID        uuid.UUID          // Identifies the deal the state belongs to
	Trick         Trick              // Cards laid in the current trick
	Players       [NumPlayers]Player // Players indexed by position
	CardsInHand   int                // Cards dealt to each seat, i.e. tricks in the deal
	PrevTricks    []Trick            // Completed tricks, archived only in real games
	TricksWon     [NumPlayers]int    // Tricks taken per seat
	Score         [NumPlayers]int    // Score per seat, settled when the deal ends
	Bids          [NumPlayers]int    // Contracted tricks per seat
	Current       Position           // Seat to act
	Trump         Trump              // Trump suit of the deal
	AlreadyPlayed CardSet            // Every card laid this deal, including the current trick
}

// NewState starts a deal from four hands. Hands must be disjoint and of equal size.
func NewState(hands [NumPlayers]Hand, trump Trump, starting Position) (*State, error) {
	s := &State{
		DealID:      uuid.New(),
		Trick:       NewTrick(),
		CardsInHand: hands[North].Len(),
		Current:     starting,
		Trump:       trump,
	}

	var seen CardSet
	for _, p := range Positions {
		h := hands[p]
		if h.Len() != s.CardsInHand {
			return nil, fmt.Errorf("%w: %s holds %d cards, %s holds %d", ErrInvalidDeal, p, h.Len(), North, s.CardsInHand)
		}
		if !seen.IsDisjoint(h.Set()) {
			return nil, fmt.Errorf("%w: hands overlap on %s", ErrInvalidDeal, seen.Intersect(h.Set()))
		}
		seen = seen.Union(h.Set())
		h.trump = trump
		s.Players[p] = NewPlayer(p, h)
	}
	if s.CardsInHand < 1 || s.CardsInHand > NumFaces {
		return nil, fmt.Errorf("%w: %d cards per hand", ErrInvalidDeal, s.CardsInHand)
	}
	return s, nil
}

// Clone returns a deep copy that shares nothing with s.
func (s *State) Clone() *State {
	c := *s
	c.PrevTricks = slices.Clone(s.PrevTricks)
	return &c
}

func (s *State) Player(p Position) *Player {
	return &s.Players[p]
}

func (s *State) CurrentPlayer() *Player {
	return &s.Players[s.Current]
}

// LegalSet is the set form of LegalActions.
func (s *State) LegalSet() CardSet {
	return s.LegalSetOf(s.Current)
}

// LegalSetOf returns what p could play into the current trick: cards of the lead suit
// when p holds any, otherwise the whole hand.
func (s *State) LegalSetOf(p Position) CardSet {
	hand := s.Players[p].Hand.Set()
	if !hand.IsDisjoint(s.AlreadyPlayed) {
		panic(fmt.Errorf("%w: %s holds played cards %s", ErrInvariant, p, hand.Intersect(s.AlreadyPlayed)))
	}
	if follow := hand.OfSuit(s.Trick.Lead()); !follow.IsEmpty() {
		return follow
	}
	return hand
}

// LegalActions lists the legal cards of the seat to act in ascending card order.
func (s *State) LegalActions() []Card {
	hand := s.CurrentPlayer().Hand
	if cards := hand.CardsOfSuit(s.Trick.Lead(), s.AlreadyPlayed); len(cards) > 0 {
		return cards
	}
	return hand.Cards()
}

func (s *State) IsLegal(c Card) bool {
	return s.LegalSet().Contains(c)
}

// Apply plays c for the seat to act and returns the trick it went into. When that
// completes the trick, the winner takes it, leads the next one and, in a real game,
// the trick is archived in PrevTricks. The score is settled after the last trick.
func (s *State) Apply(c Card, isRealGame bool) (Trick, error) {
	if s.IsGameOver() {
		return Trick{}, fmt.Errorf("%w: cannot play %s", ErrGameOver, c)
	}
	if s.Trick.IsFull() {
		return Trick{}, fmt.Errorf("%w: %s", ErrInvariant, ErrTrickFull)
	}
	if s.AlreadyPlayed.Contains(c) {
		return Trick{}, fmt.Errorf("%w: %s", ErrAlreadyPlayed, c)
	}
	player := s.CurrentPlayer()
	if !player.Hand.Contains(c) {
		return Trick{}, fmt.Errorf("%w: %s does not hold %s", ErrCardNotInHand, s.Current, c)
	}
	if c.Trump != s.Trump.Is(c.Suit) {
		return Trick{}, fmt.Errorf("%w: %s is not from a %s deal", ErrInvalidCard, c, s.Trump)
	}
	if !s.IsLegal(c) {
		return Trick{}, fmt.Errorf("%w: %s must follow %s", ErrIllegalAction, c, s.Trick.Lead())
	}

	if err := player.Play(c); err != nil {
		return Trick{}, err
	}
	if err := s.Trick.Add(s.Current, c); err != nil {
		return Trick{}, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	s.AlreadyPlayed = s.AlreadyPlayed.Add(c)

	trick := s.Trick
	if !trick.IsFull() {
		s.Current = s.Current.Next()
		return trick, nil
	}

	if isRealGame {
		s.PrevTricks = append(s.PrevTricks, trick)
	}
	winner, err := trick.Winner()
	if err != nil {
		return Trick{}, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	s.TricksWon[winner]++
	s.Trick = NewTrick()
	s.Current = winner
	if s.IsGameOver() {
		s.settle()
	}
	return trick, nil
}

// Successor returns a copy of s with c applied. s is left untouched.
func (s *State) Successor(c Card) (*State, error) {
	next := s.Clone()
	if _, err := next.Apply(c, false); err != nil {
		return nil, err
	}
	return next, nil
}

// IsGameOver reports whether every hand is empty.
func (s *State) IsGameOver() bool {
	for i := range s.Players {
		if !s.Players[i].Hand.IsEmpty() {
			return false
		}
	}
	return true
}

// TricksPlayed counts completed tricks.
func (s *State) TricksPlayed() int {
	total := 0
	for _, n := range s.TricksWon {
		total += n
	}
	return total
}

func (s *State) BidsTotal() int {
	total := 0
	for _, b := range s.Bids {
		total += b
	}
	return total
}

// DealScore is the score a seat gets for a deal: the bid when the tricks match it
// exactly, otherwise minus the distance between tricks and bid.
func DealScore(tricks, bid int) int {
	if tricks == bid {
		return bid
	}
	if tricks > bid {
		return bid - tricks
	}
	return tricks - bid
}

func (s *State) settle() {
	for _, p := range Positions {
		s.Score[p] += DealScore(s.TricksWon[p], s.Bids[p])
	}
}

// History lists every card laid this deal in play order. It needs archived tricks,
// so it is only complete for real games.
func (s *State) History() []Play {
	history := make([]Play, 0, s.AlreadyPlayed.Len())
	for _, t := range s.PrevTricks {
		history = append(history, t.Plays()...)
	}
	return append(history, s.Trick.Plays()...)
}

func (s *State) String() string {
	return fmt.Sprintf("deal %s trump %s turn %s trick %s tricks %v bids %v", s.DealID, s.Trump, s.Current, s.Trick, s.TricksWon, s.Bids)
}
