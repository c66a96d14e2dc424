package game

import "fmt"

// Phase is the current stage of a round.
type Phase int

const (
	InitialConditions Phase = iota
	SeatBuying
	PriceSetting
	DemandSimulation
)

func (p Phase) String() string {
	return [...]string{"initial-conditions", "seat-buying", "price-setting", "demand-simulation"}[p]
}

// Code returns the two-letter tag used in serialized match records.
func (p Phase) Code() string {
	return [...]string{"IC", "SB", "PS", "DS"}[p]
}

// IsChance reports whether the phase is resolved by a forced chance move
// rather than a player decision.
func (p Phase) IsChance() bool {
	return p == InitialConditions || p == DemandSimulation
}

func phaseFromCode(code string) (Phase, error) {
	for _, p := range []Phase{InitialConditions, SeatBuying, PriceSetting, DemandSimulation} {
		if p.Code() == code {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase code %q", code)
}
