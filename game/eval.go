package game

import (
	"fmt"
	"sort"
)

const (
	EvalTricksWon     = "CountOfTricksWon"
	EvalTargetReached = "TargetReached"
	EvalShortGreedy   = "ShortGreedyEvaluation"
	EvalLongGreedy    = "LongGreedyEvaluation"
)

var evaluations = map[string]Evaluate{
	EvalTricksWon:     EvaluateTricksWon,
	EvalTargetReached: EvaluateTargetReached,
	EvalShortGreedy:   EvaluateShortGreedy,
	EvalLongGreedy:    EvaluateLongGreedy,
}

// EvaluationByName resolves a registered evaluation function.
func EvaluationByName(name string) (Evaluate, error) {
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation function %q", name)
	}
	return evaluate, nil
}

func EvaluationNames() []string {
	names := make([]string, 0, len(evaluations))
	for name := range evaluations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvaluateTricksWon is the raw number of tricks taken.
func EvaluateTricksWon(s *State, player Position, _ int) float64 {
	return float64(s.TricksWon[player])
}

// EvaluateTargetReached is 1 once the player has taken target tricks, 0 before or
// when no target is set.
func EvaluateTargetReached(s *State, player Position, target int) float64 {
	if target <= 0 {
		return 0
	}
	if s.TricksWon[player] >= target {
		return 1
	}
	return 0
}

// EvaluateShortGreedy weighs tricks taken above anything else, then rewards holding the
// current trick or having cards that beat it. Only the trick on the table is considered.
func EvaluateShortGreedy(s *State, player Position, _ int) float64 {
	value := NumFaces * s.TricksWon[player]
	if s.Trick.IsEmpty() {
		return float64(value)
	}
	if s.Trick.Contains(player) {
		if best, _ := s.Trick.Best(); best.Position == player {
			value++
		}
		return float64(value)
	}
	for _, c := range s.LegalSetOf(player).Cards(s.Trump) {
		if s.Trick.Beats(c) {
			value++
		}
	}
	return float64(value)
}

// EvaluateLongGreedy weighs tricks taken above anything else, then adds one when the
// player holds or can play a card that no seat still to play can beat, looking at every
// hand.
func EvaluateLongGreedy(s *State, player Position, _ int) float64 {
	value := float64(NumFaces * s.TricksWon[player])
	if s.Trick.Contains(player) {
		c, _ := s.Trick.CardOf(player)
		if s.Secure(c, player) {
			value++
		}
		return value
	}
	for _, c := range s.LegalSetOf(player).Cards(s.Trump) {
		if s.Secure(c, player) {
			return value + 1
		}
	}
	return value
}

// Secure reports whether c, played (or already played) by p in the current trick, takes
// it whatever the seats still to play answer with.
func (s *State) Secure(c Card, p Position) bool {
	lead := s.Trick.Lead()
	if lead == NoSuit {
		lead = c.Suit
	}
	if played, ok := s.Trick.CardOf(p); ok {
		best, _ := s.Trick.Best()
		if !played.Equal(c) || best.Position != p {
			return false
		}
	} else if !s.Trick.Beats(c) {
		return false
	}

	for _, q := range s.Pending(p) {
		for _, r := range s.Responses(q, lead).Cards(s.Trump) {
			if Outranks(r, c, lead) {
				return false
			}
		}
	}
	return true
}

// Pending lists the seats other than p that have not played in the current trick.
func (s *State) Pending(p Position) []Position {
	pending := make([]Position, 0, NumPlayers-1)
	for _, q := range Positions {
		if q != p && !s.Trick.Contains(q) {
			pending = append(pending, q)
		}
	}
	return pending
}

// Responses is what seat q may legally play to a trick led with lead.
func (s *State) Responses(q Position, lead Suit) CardSet {
	hand := s.Players[q].Hand.Set()
	if follow := hand.OfSuit(lead); !follow.IsEmpty() {
		return follow
	}
	return hand
}

// LeadCandidates lists the legal cards of the seat to act that take the trick against
// any legal answer. Empty unless the trick is empty.
func (s *State) LeadCandidates() []Card {
	if !s.Trick.IsEmpty() {
		return nil
	}
	return s.SecureCards()
}

// SecureCards lists the legal cards of the seat to act for which Secure holds.
func (s *State) SecureCards() []Card {
	var secure []Card
	for _, c := range s.LegalActions() {
		if s.Secure(c, s.Current) {
			secure = append(secure, c)
		}
	}
	return secure
}
