package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/airseats/internal/agent"
	"github.com/lox/airseats/internal/game"
	"github.com/lox/airseats/internal/randutil"
)

type ReplayCmd struct {
	Record  string `arg:"" optional:"" help:"Serialized match record (reads stdin when omitted)"`
	Players int    `default:"2" help:"Number of players in the record"`
	Finish  bool   `help:"Drive the restored match to completion with undercut agents"`
}

func (c *ReplayCmd) Run() error {
	record := c.Record
	if record == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read record from stdin: %w", err)
		}
		record = strings.TrimSpace(string(data))
	}

	def, err := game.NewDefinition(c.Players)
	if err != nil {
		return err
	}
	m := game.NewMatch(def, randutil.NewSource(0))

	state, err := m.DeserializeState(record)
	if err != nil {
		return err
	}

	fmt.Println(state)
	fmt.Printf("terminal: %v\n", state.IsTerminal())
	for p := 0; p < c.Players; p++ {
		fmt.Printf("  player %d view: %s\n", p, state.InformationString(p))
	}

	if !state.IsTerminal() && c.Finish {
		for !state.IsTerminal() {
			legal := state.LegalActions()
			p := state.CurrentPlayer()
			if p == game.ChancePlayer {
				state.ApplyAction(legal[0])
				continue
			}
			state.ApplyAction(agent.Undercut{}.Act(state.View(p), legal))
		}
		fmt.Println("finished:")
	}
	if state.IsTerminal() {
		for p, ret := range state.Returns() {
			fmt.Printf("  player %d return: %+.0f\n", p, ret)
		}
	}
	return nil
}
