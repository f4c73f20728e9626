package main

import (
	"bridge/config"
	"bridge/experiments"
	"bridge/game"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		configPath string
		envFile    string
		throughput string
	)
	flag.StringVar(&configPath, "config", "", "YAML match config (default: four random players)")
	flag.StringVar(&envFile, "env", ".env", "Env file with BRIDGE_* overrides")
	flag.StringVar(&throughput, "throughput", "", "Comma separated goroutine counts to time instead of playing a match")
	flag.Parse()

	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel) // Checked by Load
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if throughput != "" {
		if err := runThroughput(cfg, throughput); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		return
	}

	summary, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Name)
	}
	fmt.Printf("%s: %d deals\n", cfg.Name, summary.Deals)
	for i, a := range cfg.Agents {
		fmt.Printf("  %s %-32s %6d\n", game.Positions[i], a, summary.Totals[i])
	}
	if summary.Dir != "" {
		fmt.Printf("records in %s\n", summary.Dir)
	}
}

func runThroughput(cfg *config.Config, counts string) error {
	goroutines := []int{}
	for _, field := range strings.Split(counts, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 {
			return fmt.Errorf("invalid goroutine count %q", field)
		}
		goroutines = append(goroutines, n)
	}

	records, err := experiments.Throughput(goroutines, cfg.Deals, cfg.BidSimulations, cfg.CardsInHand, cfg.Seed)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%4d goroutines %10.0f playouts/s\n", r.Goroutines, r.PlayoutsPerSecond())
	}
	if cfg.OutputDir != "" {
		dir, err := experiments.StoreThroughput(cfg.OutputDir, records)
		if err != nil {
			return err
		}
		fmt.Printf("records in %s\n", dir)
	}
	return nil
}
