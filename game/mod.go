package game

// Evaluate scores state from player's point of view; higher is better. target is the
// number of tricks the player aims for, used by target-based evaluations.
type Evaluate func(state *State, player Position, target int) float64
