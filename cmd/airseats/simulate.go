package main

import (
	"context"
	"fmt"

	"github.com/lox/airseats/internal/matchid"
	"github.com/lox/airseats/internal/simulator"
)

type SimulateCmd struct {
	Config      string `default:"airseats.hcl" help:"Simulation config file (HCL)"`
	Matches     int    `help:"Number of matches to simulate (overrides config)"`
	Seed        int64  `help:"Base RNG seed (overrides config)"`
	Parallelism int    `help:"Concurrent match workers (overrides config)"`
	Verbose     bool   `help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := simulator.LoadFileConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Matches > 0 {
		cfg.Simulation.Matches = c.Matches
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.Parallelism > 0 {
		cfg.Simulation.Parallelism = c.Parallelism
	}

	factory, err := simulator.AgentFactory(cfg.Players)
	if err != nil {
		return err
	}

	logger := newLogger(c.Verbose)
	runID := matchid.New()
	logger.Info("starting simulation",
		"run", runID,
		"matches", cfg.Simulation.Matches,
		"players", len(cfg.Players),
		"seed", cfg.Simulation.Seed,
		"parallelism", cfg.Simulation.Parallelism)

	sim, err := simulator.New(simulator.Config{
		Matches:     cfg.Simulation.Matches,
		NumPlayers:  len(cfg.Players),
		Seed:        cfg.Simulation.Seed,
		Parallelism: cfg.Simulation.Parallelism,
		NewAgents:   factory,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	results, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d matches\n", runID, len(results.Matches))
	for p, summary := range results.PerPlayer {
		fmt.Printf("  %-10s %s\n", cfg.Players[p].Name, summary)
	}
	return nil
}
