package config

import (
	"bridge/game"
	"bridge/searcher/agent"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGoroutines     = 8
	DefaultSimulations    = 150
	DefaultDeals          = 100
	DefaultBidSimulations = 1000
	DefaultCardsInHand    = game.NumFaces
)

type Config struct {
	Name           string         `yaml:"name"`
	Deals          int            `yaml:"deals"`
	CardsInHand    int            `yaml:"cardsInHand"`
	Trump          string         `yaml:"trump"` // Empty picks a trump per deal
	Seed           uint64         `yaml:"seed"`  // Zero seeds from the clock
	BidSimulations int            `yaml:"bidSimulations"`
	Goroutines     int            `yaml:"goroutines"`
	LogLevel       string         `yaml:"logLevel"`
	OutputDir      string         `yaml:"outputDir"` // Empty skips the CSV output
	Agents         []agent.Config `yaml:"agents"`
}

// Default is four random players over full hands.
func Default() *Config {
	agents := make([]agent.Config, game.NumPlayers)
	for i := range agents {
		agents[i] = agent.Config{Kind: agent.KindSimple, Policy: "Random"}
	}
	return &Config{
		Name:           "match",
		Deals:          DefaultDeals,
		CardsInHand:    DefaultCardsInHand,
		BidSimulations: DefaultBidSimulations,
		Goroutines:     DefaultGoroutines,
		LogLevel:       zerolog.LevelInfoValue,
		Agents:         agents,
	}
}

// Load reads the YAML file at path over the defaults, then applies overrides from the
// environment. Variables found in envFiles (".env" when none are given) are loaded into
// the environment first; missing files are skipped.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("BRIDGE_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("BRIDGE_OUTPUT_DIR"); ok {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv("BRIDGE_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("BRIDGE_SEED: %w", err)
		}
		c.Seed = seed
	}
	for name, target := range map[string]*int{
		"BRIDGE_DEALS":      &c.Deals,
		"BRIDGE_GOROUTINES": &c.Goroutines,
	} {
		if v, ok := os.LookupEnv(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*target = n
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Deals < 1 {
		return fmt.Errorf("deals must be positive, got %d", c.Deals)
	}
	if c.CardsInHand < 1 || c.CardsInHand > game.NumFaces {
		return fmt.Errorf("cardsInHand must be within 1..%d, got %d", game.NumFaces, c.CardsInHand)
	}
	if c.BidSimulations < 1 {
		return fmt.Errorf("bidSimulations must be positive, got %d", c.BidSimulations)
	}
	if c.Goroutines < 1 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if c.Trump != "" {
		if _, err := game.ParseTrump(c.Trump); err != nil {
			return err
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}
	if len(c.Agents) != game.NumPlayers {
		return fmt.Errorf("need %d agents, got %d", game.NumPlayers, len(c.Agents))
	}
	for i, a := range c.Agents {
		if _, err := agent.New(a); err != nil {
			return fmt.Errorf("agent %s: %w", game.Positions[i], err)
		}
	}
	return nil
}

// FixedTrump returns the configured trump, if any.
func (c *Config) FixedTrump() (game.Trump, bool) {
	if c.Trump == "" {
		return game.NoTrump, false
	}
	trump, err := game.ParseTrump(c.Trump)
	if err != nil {
		return game.NoTrump, false
	}
	return trump, true
}
