package searcher

// Hyperparameters for the search agents

const Exploration = 1.4 // UCT exploration constant C

const DefaultEpsilon = 0.1 // Random move probability of the stochastic rollout agent

const DefaultGoroutines = 8
