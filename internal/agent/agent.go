// Package agent provides action-selection policies for driving matches.
// Agents receive an immutable player view and the legal action set, and
// return one action; they never mutate match state.
package agent

import (
	rand "math/rand/v2"

	"github.com/lox/airseats/internal/game"
)

// Agent chooses one legal action whenever its player is to act.
type Agent interface {
	Name() string
	Act(view game.PlayerView, legal []game.Action) game.Action
}

// Random picks uniformly among the legal actions. The agent's rand stream is
// separate from the match stream so strategy randomness never perturbs the
// demand draws.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random agent with its own rand stream.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (a *Random) Name() string { return "random" }

func (a *Random) Act(view game.PlayerView, legal []game.Action) game.Action {
	return legal[a.rng.IntN(len(legal))]
}

// Fixed always buys the same quantity and sets the same price.
type Fixed struct {
	Buy   game.Action
	Price game.Action
}

func (a Fixed) Name() string { return "fixed" }

func (a Fixed) Act(view game.PlayerView, legal []game.Action) game.Action {
	if view.Phase == game.SeatBuying {
		return a.Buy
	}
	return a.Price
}

// Scripted replays a predetermined action sequence, falling back to the
// first legal action when the script is exhausted.
type Scripted struct {
	Actions []game.Action
	next    int
}

func (a *Scripted) Name() string { return "scripted" }

func (a *Scripted) Act(view game.PlayerView, legal []game.Action) game.Action {
	if a.next >= len(a.Actions) {
		return legal[0]
	}
	action := a.Actions[a.next]
	a.next++
	return action
}

// Undercut buys the maximum block of seats and then prices one step below
// the cheapest of the most recent prices observed from any player, bottoming
// out at the lowest price level. With no history it opens mid-range.
type Undercut struct{}

func (a Undercut) Name() string { return "undercut" }

func (a Undercut) Act(view game.PlayerView, legal []game.Action) game.Action {
	if view.Phase == game.SeatBuying {
		return game.Buy20
	}
	if view.Round == 0 {
		return game.SetPrice60
	}

	lowest := -1
	for p := range view.Prices {
		hist := view.Prices[p]
		if len(hist) == 0 {
			continue
		}
		if last := hist[len(hist)-1]; lowest == -1 || last < lowest {
			lowest = last
		}
	}

	for i := len(legal) - 1; i > 0; i-- {
		if game.PriceValue(legal[i]) < lowest {
			return legal[i]
		}
	}
	return legal[0]
}
