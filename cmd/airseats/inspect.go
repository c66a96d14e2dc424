package main

import (
	"fmt"

	"github.com/lox/airseats/internal/game"
)

type InspectCmd struct {
	Players int `default:"2" help:"Number of players"`
}

func (c *InspectCmd) Run() error {
	def, err := game.NewDefinition(c.Players)
	if err != nil {
		return err
	}

	fmt.Printf("players:                %d\n", def.NumPlayers)
	fmt.Printf("rounds:                 %d\n", game.MaxRounds)
	fmt.Printf("distinct actions:       %d\n", def.NumDistinctActions())
	fmt.Printf("max game length:        %d\n", def.MaxGameLength())
	fmt.Printf("chance nodes:           %d\n", def.MaxChanceNodesInHistory())
	fmt.Printf("utility range:          [%.0f, %.0f]\n", def.MinUtility(), def.MaxUtility())
	fmt.Printf("information tensor:     %d\n", def.InformationTensorSize())

	fmt.Println("\nactions by phase:")
	for _, phase := range []game.Phase{game.InitialConditions, game.SeatBuying, game.PriceSetting, game.DemandSimulation} {
		fmt.Printf("  %-20s", phase)
		for _, a := range game.LegalActions(phase) {
			fmt.Printf(" %d=%s", a, game.ActionLabel(phase, a))
		}
		fmt.Println()
	}
	return nil
}
