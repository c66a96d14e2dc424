package game

import "fmt"

// Action is an entry in the flat 0-based action space. Ids 0..4 are buy
// quantities, ids 5..9 are price levels; which range is legal depends on the
// current phase. ChanceAction is the single forced move at chance nodes.
type Action int

const (
	Buy0 Action = iota
	Buy5
	Buy10
	Buy15
	Buy20
	SetPrice50
	SetPrice55
	SetPrice60
	SetPrice65
	SetPrice70
)

// ChanceAction is the sentinel id accepted during the InitialConditions and
// DemandSimulation phases. It shares id 0 with Buy0; phase-scoped legality
// keeps the two unambiguous.
const ChanceAction Action = 0

const (
	numBuyActions   = 5
	numPriceActions = 5
)

func (a Action) String() string {
	switch {
	case a >= Buy0 && a <= Buy20:
		return fmt.Sprintf("Buy:%d", BuyQuantity(a))
	case a >= SetPrice50 && a <= SetPrice70:
		return fmt.Sprintf("SetPrice:%d", PriceValue(a))
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// BuyQuantity returns the number of seats purchased by a buy action.
func BuyQuantity(a Action) int {
	return int(a) * seatLot
}

// PriceValue returns the sale price set by a price action.
func PriceValue(a Action) int {
	return basePrice + (int(a)-numBuyActions)*priceStep
}

// LegalActions returns the legal action set for a phase, in ascending id
// order. Chance phases have a single forced action.
func LegalActions(phase Phase) []Action {
	switch phase {
	case SeatBuying:
		return []Action{Buy0, Buy5, Buy10, Buy15, Buy20}
	case PriceSetting:
		return []Action{SetPrice50, SetPrice55, SetPrice60, SetPrice65, SetPrice70}
	default:
		return []Action{ChanceAction}
	}
}

// ActionLegal reports whether the action id is in the phase's legal set.
func ActionLegal(phase Phase, a Action) bool {
	switch phase {
	case SeatBuying:
		return a >= Buy0 && a <= Buy20
	case PriceSetting:
		return a >= SetPrice50 && a <= SetPrice70
	default:
		return a == ChanceAction
	}
}

// ActionLabel renders an action as a human-readable label in the context of a
// phase. Chance moves are labelled with the phase they resolve.
func ActionLabel(phase Phase, a Action) string {
	if phase.IsChance() {
		return phase.String()
	}
	return a.String()
}
