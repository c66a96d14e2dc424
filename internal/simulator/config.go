package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/airseats/internal/agent"
	"github.com/lox/airseats/internal/game"
	"github.com/lox/airseats/internal/randutil"
)

// FileConfig is the on-disk simulation configuration.
type FileConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Players    []PlayerConfig     `hcl:"player,block"`
}

// SimulationSettings contains run-level configuration.
type SimulationSettings struct {
	Matches     int    `hcl:"matches,optional"`
	Seed        int64  `hcl:"seed,optional"`
	Parallelism int    `hcl:"parallelism,optional"`
	LogLevel    string `hcl:"log_level,optional"`
}

// PlayerConfig defines one player's strategy.
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Buy      int    `hcl:"buy,optional"`
	Price    int    `hcl:"price,optional"`
}

// DefaultFileConfig returns the configuration used when no file is present:
// two fixed mid-range players.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Simulation: SimulationSettings{
			Matches:     1000,
			Seed:        1,
			Parallelism: 4,
			LogLevel:    "info",
		},
		Players: []PlayerConfig{
			{Name: "alice", Strategy: "fixed", Buy: 10, Price: 55},
			{Name: "bob", Strategy: "undercut"},
		},
	}
}

// LoadFileConfig loads simulation configuration from an HCL file, falling
// back to defaults when the file does not exist.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	config := &FileConfig{}
	if diags := gohcl.DecodeBody(file.Body, nil, config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *FileConfig) {
	if config.Simulation.Matches == 0 {
		config.Simulation.Matches = 1000
	}
	if config.Simulation.Seed == 0 {
		config.Simulation.Seed = 1
	}
	if config.Simulation.Parallelism == 0 {
		config.Simulation.Parallelism = 4
	}
	if config.Simulation.LogLevel == "" {
		config.Simulation.LogLevel = "info"
	}
}

// AgentFactory builds the per-match agent constructor described by the
// player blocks. Random agents derive their private stream from the match
// seed and seat so runs stay reproducible.
func AgentFactory(players []PlayerConfig) (func(matchSeed int64) []agent.Agent, error) {
	builders := make([]func(matchSeed int64, seat int) agent.Agent, len(players))
	for i, p := range players {
		switch p.Strategy {
		case "random":
			builders[i] = func(matchSeed int64, seat int) agent.Agent {
				return agent.NewRandom(randutil.New(matchSeed<<8 | int64(seat)))
			}
		case "undercut":
			builders[i] = func(int64, int) agent.Agent {
				return agent.Undercut{}
			}
		case "fixed":
			buy, err := buyActionForQuantity(p.Buy)
			if err != nil {
				return nil, fmt.Errorf("player %q: %w", p.Name, err)
			}
			price, err := priceActionForValue(p.Price)
			if err != nil {
				return nil, fmt.Errorf("player %q: %w", p.Name, err)
			}
			builders[i] = func(int64, int) agent.Agent {
				return agent.Fixed{Buy: buy, Price: price}
			}
		default:
			return nil, fmt.Errorf("player %q: unknown strategy %q", p.Name, p.Strategy)
		}
	}

	return func(matchSeed int64) []agent.Agent {
		agents := make([]agent.Agent, len(builders))
		for i, build := range builders {
			agents[i] = build(matchSeed, i)
		}
		return agents
	}, nil
}

func buyActionForQuantity(quantity int) (game.Action, error) {
	for _, a := range game.LegalActions(game.SeatBuying) {
		if game.BuyQuantity(a) == quantity {
			return a, nil
		}
	}
	return 0, fmt.Errorf("no buy action for quantity %d", quantity)
}

func priceActionForValue(price int) (game.Action, error) {
	for _, a := range game.LegalActions(game.PriceSetting) {
		if game.PriceValue(a) == price {
			return a, nil
		}
	}
	return 0, fmt.Errorf("no price action for price %d", price)
}
