package game

import "fmt"

// Actor markers for non-player turns.
const (
	ChancePlayer   = -1
	TerminalPlayer = -2
)

// UniformSource is the random stream a match draws from. Draws are consumed
// in a fixed order by the transition logic, and the textual state snapshot
// lets a serialized match resume its stream without drift.
type UniformSource interface {
	// Uint64 returns the next draw.
	Uint64() uint64
	// Max returns the largest value Uint64 can produce.
	Max() uint64
	// State returns the stream's current position as text.
	State() string
	// SetState restores a position previously returned by State.
	SetState(state string) error
}

// Match owns the immutable configuration and the random stream shared by all
// states derived from it. A Match must not be shared between concurrently
// running states; the stream is a single sequential resource.
type Match struct {
	def Definition
	rng UniformSource
}

// NewMatch creates a match from a validated definition and a random stream.
func NewMatch(def Definition, rng UniformSource) *Match {
	return &Match{def: def, rng: rng}
}

// Definition returns the match's fixed configuration.
func (m *Match) Definition() Definition {
	return m.def
}

// rand draws one uniform variate in [0,1].
func (m *Match) rand() float64 {
	return float64(m.rng.Uint64()) / float64(m.rng.Max())
}

// State is the full mutable state of one match in progress. It is mutated
// exclusively through ApplyAction and is immutable once terminal.
type State struct {
	match *Match

	round   int
	phase   Phase
	current int // player index, ChancePlayer, or TerminalPlayer
	c1      float64

	bought []int   // seats bought up front, one entry per player
	sold   [][]int // seats sold per player per completed round
	prices [][]int // price set per player per round
}

// NewInitialState returns a fresh state at the initial chance node.
func (m *Match) NewInitialState() *State {
	return &State{
		match:   m,
		round:   0,
		phase:   InitialConditions,
		current: ChancePlayer,
		bought:  make([]int, m.def.NumPlayers),
		sold:    make([][]int, m.def.NumPlayers),
		prices:  make([][]int, m.def.NumPlayers),
	}
}

// NumPlayers returns the number of players in the match.
func (s *State) NumPlayers() int {
	return s.match.def.NumPlayers
}

// CurrentPlayer returns the acting player index, or ChancePlayer /
// TerminalPlayer when no player is to act.
func (s *State) CurrentPlayer() int {
	return s.current
}

// Round returns the number of completed rounds.
func (s *State) Round() int {
	return s.round
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// IsTerminal reports whether the match has finished all rounds.
func (s *State) IsTerminal() bool {
	return s.current == TerminalPlayer
}

// LegalActions returns the legal action ids for the current phase.
func (s *State) LegalActions() []Action {
	if s.IsTerminal() {
		return nil
	}
	return LegalActions(s.phase)
}

// Outcome is one chance-node outcome with its probability.
type Outcome struct {
	Action      Action
	Probability float64
}

// ChanceOutcomes returns the outcome distribution at a chance node. The game
// is sampled-stochastic: a single forced action whose effect is resolved by
// drawing from the match stream inside ApplyAction.
func (s *State) ChanceOutcomes() []Outcome {
	if s.IsTerminal() || !s.phase.IsChance() {
		panic(fmt.Sprintf("ChanceOutcomes called in phase %v", s.phase))
	}
	return []Outcome{{Action: ChanceAction, Probability: 1}}
}

// ActionToString renders an action in the context of the current phase.
func (s *State) ActionToString(a Action) string {
	return ActionLabel(s.phase, a)
}

// ApplyAction advances the state by one action. The action must be in the
// current phase's legal set; anything else is a caller contract violation and
// panics. Terminal states accept no further actions.
func (s *State) ApplyAction(a Action) {
	if s.IsTerminal() {
		panic(fmt.Sprintf("action %v applied to terminal state", a))
	}
	if !ActionLegal(s.phase, a) {
		panic(fmt.Sprintf("action %v is not legal in phase %v", a, s.phase))
	}
	switch s.phase {
	case InitialConditions:
		s.applyInitialConditions()
	case SeatBuying:
		s.applySeatBuying(a)
	case PriceSetting:
		s.applyPriceSetting(a)
	case DemandSimulation:
		s.applyDemandSimulation()
	}
}

// applyInitialConditions samples the per-match demand coefficient and hands
// the turn to player 0 for seat buying.
func (s *State) applyInitialConditions() {
	s.c1 = s.match.rand()*(c1RangeEnd-c1RangeStart) + c1RangeStart
	s.current = 0
	s.phase = SeatBuying
}

func (s *State) applySeatBuying(a Action) {
	s.bought[s.current] = BuyQuantity(a)
	s.current++
	if s.current == s.match.def.NumPlayers {
		s.current = 0
		s.phase = PriceSetting
	}
}

func (s *State) applyPriceSetting(a Action) {
	s.prices[s.current] = append(s.prices[s.current], PriceValue(a))
	s.current++
	if s.current == s.match.def.NumPlayers {
		s.current = ChancePlayer
		s.phase = DemandSimulation
	}
}

func (s *State) applyDemandSimulation() {
	sold := s.simulateDemand()
	for p := range sold {
		s.sold[p] = append(s.sold[p], sold[p])
	}
	s.round++
	if s.round >= MaxRounds {
		s.current = TerminalPlayer
		return
	}
	s.current = 0
	s.phase = PriceSetting
}

// BoughtSeats returns the seats player p purchased during seat buying.
func (s *State) BoughtSeats(p int) int {
	s.checkPlayer(p)
	return s.bought[p]
}

// Sold returns a copy of player p's per-round sold history.
func (s *State) Sold(p int) []int {
	s.checkPlayer(p)
	return append([]int(nil), s.sold[p]...)
}

// Prices returns a copy of player p's per-round price history.
func (s *State) Prices(p int) []int {
	s.checkPlayer(p)
	return append([]int(nil), s.prices[p]...)
}

func (s *State) checkPlayer(p int) {
	if p < 0 || p >= s.match.def.NumPlayers {
		panic(fmt.Sprintf("player %d out of range [0,%d)", p, s.match.def.NumPlayers))
	}
}

// Clone returns a deep copy of the state sharing the same match (and thus the
// same random stream).
func (s *State) Clone() *State {
	c := *s
	c.bought = append([]int(nil), s.bought...)
	c.sold = make([][]int, len(s.sold))
	c.prices = make([][]int, len(s.prices))
	for p := range s.sold {
		c.sold[p] = append([]int(nil), s.sold[p]...)
		c.prices[p] = append([]int(nil), s.prices[p]...)
	}
	return &c
}

// String renders the full state for logs and debugging.
func (s *State) String() string {
	return fmt.Sprintf("round=%d phase=%s actor=%s c1=%.4f bought=%v sold=%v prices=%v",
		s.round, s.phase, actorString(s.current), s.c1, s.bought, s.sold, s.prices)
}

func actorString(actor int) string {
	switch actor {
	case ChancePlayer:
		return "chance"
	case TerminalPlayer:
		return "terminal"
	default:
		return fmt.Sprintf("p%d", actor)
	}
}
