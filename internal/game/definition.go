// Package game implements the airline seats pricing game: players pre-purchase
// a block of seats, then over a fixed number of rounds set sale prices while a
// stochastic demand model allocates sales between them. The package is a pure
// state machine; all randomness comes from an injected uniform source so that
// matches are deterministic and resumable.
package game

import "fmt"

const (
	// MaxRounds is the number of price-setting/demand-simulation cycles in
	// a match. Rounds are 0-based; the match is terminal once the round
	// counter reaches MaxRounds.
	MaxRounds = 10

	// MinPlayers and MaxPlayers bound the supported table sizes.
	MinPlayers = 2
	MaxPlayers = 4

	seatLot   = 5  // seats per buy-action increment
	basePrice = 50 // price for the lowest price action
	priceStep = 5  // price increment between adjacent price actions

	initialPurchasePrice = 50 // cost per seat bought up front
	latePurchasePrice    = 80 // cost per seat sold beyond owned inventory

	// Demand model constants. Lower prices attract a larger share of a
	// market whose total size is shaped by the per-match coefficient c1.
	demandBase     = 36.0 // C0, baseline market demand
	demandExponent = 50.0 // price attractiveness exponent (applied negated)
	noiseSpread    = 20.0 // per-player demand noise spread, in percent

	// c1 is sampled uniformly from [c1RangeStart, c1RangeEnd] once per match.
	c1RangeStart = -0.24
	c1RangeEnd   = -0.293
)

// Definition captures the fixed facts of a match configuration: everything a
// driver needs to size buffers and bound utilities before any state exists.
type Definition struct {
	NumPlayers int
}

// NewDefinition validates the player count and returns a Definition.
func NewDefinition(numPlayers int) (Definition, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return Definition{}, fmt.Errorf("num players %d out of range [%d,%d]", numPlayers, MinPlayers, MaxPlayers)
	}
	return Definition{NumPlayers: numPlayers}, nil
}

// NumDistinctActions returns the size of the flat action space: five buy
// quantities followed by five price levels.
func (d Definition) NumDistinctActions() int {
	return numBuyActions + numPriceActions
}

// MaxGameLength returns the maximum number of player (non-chance) moves in a
// match: one buy per player plus one price per player per round.
func (d Definition) MaxGameLength() int {
	return d.NumPlayers + d.NumPlayers*MaxRounds
}

// MaxChanceNodesInHistory returns the number of chance moves in a full match:
// the initial-conditions draw plus one demand simulation per round.
func (d Definition) MaxChanceNodesInHistory() int {
	return MaxRounds + 1
}

// MinUtility and MaxUtility bound a player's terminal return.
func (d Definition) MinUtility() float64 { return -1000 }
func (d Definition) MaxUtility() float64 { return 5000 }

// InformationTensorSize returns the length of the vector produced by
// State.InformationTensor: a one-hot round slot (rounds 0..MaxRounds), a
// one-hot actor slot (players, chance, terminal), the requesting player's own
// bought seats, and the public sold and price histories.
func (d Definition) InformationTensorSize() int {
	return (MaxRounds + 1) + (d.NumPlayers + 2) + 1 + 2*d.NumPlayers*MaxRounds
}
