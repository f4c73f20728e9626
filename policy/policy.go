package policy

import (
	"bridge/game"
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// Policy picks a legal card for the seat to act. The state is read only and must not
// be over. Policies are pure apart from rng, so concurrent playouts each pass their own.
type Policy func(state *game.State, rng *rand.Rand) game.Card

const (
	NameHighestFirst    = "HighestFirst"
	NameLowestFirst     = "LowestFirst"
	NameRandom          = "Random"
	NameHardShortGreedy = "HardShortGreedy"
	NameHardLongGreedy  = "HardLongGreedy"
	NameSoftShortGreedy = "SoftShortGreedy"
	NameSoftLongGreedy  = "SoftLongGreedy"
	NameWhist           = "Whist"
)

var registry = map[string]Policy{
	NameHighestFirst:    HighestFirst,
	NameLowestFirst:     LowestFirst,
	NameRandom:          Random,
	NameHardShortGreedy: HardShortGreedy,
	NameHardLongGreedy:  HardLongGreedy,
	NameSoftShortGreedy: SoftShortGreedy,
	NameSoftLongGreedy:  SoftLongGreedy,
	NameWhist:           Whist,
}

// ByName resolves a registered policy.
func ByName(name string) (Policy, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown action policy %q", name)
	}
	return p, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithEpsilon plays a uniformly random legal card with probability epsilon and defers
// to p otherwise.
func WithEpsilon(p Policy, epsilon float64) Policy {
	return func(state *game.State, rng *rand.Rand) game.Card {
		if rng.Float64() < epsilon {
			return Random(state, rng)
		}
		return p(state, rng)
	}
}

func Random(state *game.State, rng *rand.Rand) game.Card {
	legal := state.LegalActions()
	return legal[rng.Intn(len(legal))]
}

func HighestFirst(state *game.State, _ *rand.Rand) game.Card {
	return game.Highest(state.LegalActions())
}

func LowestFirst(state *game.State, _ *rand.Rand) game.Card {
	return game.Lowest(state.LegalActions())
}

// HardShortGreedy leads its highest card, takes the trick with its highest winning card
// when it can and otherwise throws its lowest card.
func HardShortGreedy(state *game.State, _ *rand.Rand) game.Card {
	legal := state.LegalActions()
	if state.Trick.IsEmpty() {
		return game.Highest(legal)
	}
	if winners := beating(state, legal); len(winners) > 0 {
		return game.Highest(winners)
	}
	return game.Lowest(legal)
}

// SoftShortGreedy is HardShortGreedy spending as little as possible.
func SoftShortGreedy(state *game.State, _ *rand.Rand) game.Card {
	legal := state.LegalActions()
	if state.Trick.IsEmpty() {
		return game.Lowest(legal)
	}
	if winners := beating(state, legal); len(winners) > 0 {
		return game.Lowest(winners)
	}
	return game.Lowest(legal)
}

// HardLongGreedy looks at every hand and plays its highest card that no later seat can
// beat, otherwise its lowest card.
func HardLongGreedy(state *game.State, _ *rand.Rand) game.Card {
	if secure := state.SecureCards(); len(secure) > 0 {
		return game.Highest(secure)
	}
	return game.Lowest(state.LegalActions())
}

// SoftLongGreedy plays its lowest card that no later seat can beat, otherwise its lowest
// card.
func SoftLongGreedy(state *game.State, _ *rand.Rand) game.Card {
	if secure := state.SecureCards(); len(secure) > 0 {
		return game.Lowest(secure)
	}
	return game.Lowest(state.LegalActions())
}

// Whist plays soft when the table has overbid the deal and hard otherwise.
func Whist(state *game.State, rng *rand.Rand) game.Card {
	if state.BidsTotal() > state.CardsInHand {
		return SoftLongGreedy(state, rng)
	}
	return HardLongGreedy(state, rng)
}

func beating(state *game.State, legal []game.Card) []game.Card {
	var winners []game.Card
	for _, c := range legal {
		if state.Trick.Beats(c) {
			winners = append(winners, c)
		}
	}
	return winners
}
