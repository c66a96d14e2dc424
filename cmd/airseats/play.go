package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lox/airseats/internal/agent"
	"github.com/lox/airseats/internal/game"
	"github.com/lox/airseats/internal/matchid"
	"github.com/lox/airseats/internal/randutil"
)

type PlayCmd struct {
	Opponent string `default:"undercut" enum:"undercut,random,fixed" help:"Opponent strategy"`
	Players  int    `default:"2" help:"Number of players (you are player 0)"`
	Seed     int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Resume   string `help:"Serialized match record to resume from"`
	Verbose  bool   `help:"Verbose logging"`
}

func (c *PlayCmd) Run() error {
	def, err := game.NewDefinition(c.Players)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := game.NewMatch(def, randutil.NewSource(seed))

	var state *game.State
	if c.Resume != "" {
		if state, err = m.DeserializeState(c.Resume); err != nil {
			return fmt.Errorf("resume: %w", err)
		}
	} else {
		state = m.NewInitialState()
	}

	opponents := make([]agent.Agent, c.Players)
	for p := 1; p < c.Players; p++ {
		opponents[p] = c.opponent(seed, p)
	}

	logger := newLogger(c.Verbose)
	logger.Info("match started", "id", matchid.New(), "seed", seed, "players", c.Players, "opponent", c.Opponent)

	reader := bufio.NewReader(os.Stdin)
	for !state.IsTerminal() {
		p := state.CurrentPlayer()
		legal := state.LegalActions()

		var action game.Action
		switch {
		case p == game.ChancePlayer:
			action = legal[0]
		case p == 0:
			var quit bool
			action, quit, err = promptAction(reader, state, legal)
			if err != nil {
				return err
			}
			if quit {
				fmt.Printf("resume with:\n%s\n", state.Serialize())
				return nil
			}
		default:
			action = opponents[p].Act(state.View(p), legal)
			fmt.Printf("player %d: %s\n", p, state.ActionToString(action))
		}
		state.ApplyAction(action)
	}

	fmt.Println("match over")
	for p, ret := range state.Returns() {
		who := fmt.Sprintf("player %d", p)
		if p == 0 {
			who = "you"
		}
		fmt.Printf("  %-8s %+.0f\n", who, ret)
	}
	return nil
}

func (c *PlayCmd) opponent(seed int64, p int) agent.Agent {
	switch c.Opponent {
	case "random":
		return agent.NewRandom(randutil.New(seed<<8 | int64(p)))
	case "fixed":
		return agent.Fixed{Buy: game.Buy10, Price: game.SetPrice55}
	default:
		return agent.Undercut{}
	}
}

func promptAction(reader *bufio.Reader, state *game.State, legal []game.Action) (game.Action, bool, error) {
	fmt.Printf("\n%s\n", state.InformationString(0))
	fmt.Printf("your move (%s):\n", state.Phase())
	for i, a := range legal {
		fmt.Printf("  [%d] %s\n", i, state.ActionToString(a))
	}
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, false, err
		}
		line = strings.TrimSpace(line)
		if line == "save" || line == "q" {
			return 0, true, nil
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 0 || idx >= len(legal) {
			fmt.Println("enter a listed number, or 'save' to stop and print a resume record")
			continue
		}
		return legal[idx], false, nil
	}
}
