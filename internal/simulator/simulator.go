// Package simulator drives complete matches between agents and aggregates
// per-player statistics over many seeded runs.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/airseats/internal/agent"
	"github.com/lox/airseats/internal/game"
	"github.com/lox/airseats/internal/randutil"
	"github.com/lox/airseats/internal/statistics"
)

// Config holds configuration for running simulations. NewAgents is called
// once per match so that stateful agents (scripts, private rand streams) are
// never shared between concurrently running matches.
type Config struct {
	Matches     int
	NumPlayers  int
	Seed        int64
	Parallelism int
	NewAgents   func(matchSeed int64) []agent.Agent
	Logger      *log.Logger
}

// Simulator runs seeded matches between a fixed set of agents.
type Simulator struct {
	config Config
	def    game.Definition
}

// New validates the configuration and creates a simulator.
func New(config Config) (*Simulator, error) {
	def, err := game.NewDefinition(config.NumPlayers)
	if err != nil {
		return nil, err
	}
	if config.Matches <= 0 {
		return nil, fmt.Errorf("matches must be positive, got %d", config.Matches)
	}
	if config.NewAgents == nil {
		return nil, fmt.Errorf("agent factory is required")
	}
	if config.Parallelism <= 0 {
		config.Parallelism = 1
	}
	return &Simulator{config: config, def: def}, nil
}

// Results aggregates the outcome of a simulation run.
type Results struct {
	Matches   []statistics.MatchResult
	PerPlayer []*statistics.Summary
}

// Run executes the configured number of matches. Match i always uses seed
// base+i, so results are reproducible regardless of parallelism: workers
// write into per-match slots and aggregation happens afterwards in order.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	results := make([]statistics.MatchResult, s.config.Matches)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallelism)
	for i := 0; i < s.config.Matches; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := s.config.Seed + int64(i)
			m := game.NewMatch(s.def, randutil.NewSource(seed))
			state, err := PlayMatch(m, s.config.NewAgents(seed), s.config.Logger)
			if err != nil {
				return fmt.Errorf("match %d (seed %d): %w", i, seed, err)
			}
			results[i] = statistics.MatchResult{Seed: seed, Returns: state.Returns()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	perPlayer := make([]*statistics.Summary, s.config.NumPlayers)
	for p := range perPlayer {
		perPlayer[p] = &statistics.Summary{}
	}
	for _, r := range results {
		for p, ret := range r.Returns {
			perPlayer[p].Add(ret)
		}
	}
	return &Results{Matches: results, PerPlayer: perPlayer}, nil
}

// PlayMatch drives a single match to completion: chance nodes take their
// forced action, player nodes ask the player's agent.
func PlayMatch(m *game.Match, agents []agent.Agent, logger *log.Logger) (*game.State, error) {
	if len(agents) != m.Definition().NumPlayers {
		return nil, fmt.Errorf("have %d agents for %d players", len(agents), m.Definition().NumPlayers)
	}

	state := m.NewInitialState()
	for !state.IsTerminal() {
		legal := state.LegalActions()
		p := state.CurrentPlayer()

		var action game.Action
		if p == game.ChancePlayer {
			action = legal[0]
		} else {
			action = agents[p].Act(state.View(p), legal)
			if !game.ActionLegal(state.Phase(), action) {
				return nil, fmt.Errorf("agent %s chose illegal action %v in phase %v", agents[p].Name(), action, state.Phase())
			}
			if logger != nil {
				logger.Debug("action", "player", p, "agent", agents[p].Name(), "move", state.ActionToString(action), "round", state.Round())
			}
		}
		state.ApplyAction(action)
	}
	return state, nil
}
