package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/airseats/internal/randutil"
)

func newTestMatch(t *testing.T, players int, seed int64) *Match {
	t.Helper()
	def, err := NewDefinition(players)
	require.NoError(t, err)
	return NewMatch(def, randutil.NewSource(seed))
}

// playFixed drives a match to completion with every player buying the same
// quantity and setting the same price every round.
func playFixed(t *testing.T, m *Match, buy, price Action) *State {
	t.Helper()
	s := m.NewInitialState()
	for !s.IsTerminal() {
		switch s.Phase() {
		case SeatBuying:
			s.ApplyAction(buy)
		case PriceSetting:
			s.ApplyAction(price)
		default:
			s.ApplyAction(ChanceAction)
		}
	}
	return s
}

func TestMatchFlowInvariants(t *testing.T) {
	m := newTestMatch(t, 3, 42)
	s := m.NewInitialState()

	require.Equal(t, InitialConditions, s.Phase())
	require.Equal(t, ChancePlayer, s.CurrentPlayer())
	require.False(t, s.IsTerminal())

	s.ApplyAction(ChanceAction)
	require.Equal(t, SeatBuying, s.Phase())

	// Seat buying visits players in index order.
	for p := 0; p < 3; p++ {
		require.Equal(t, p, s.CurrentPlayer())
		s.ApplyAction(Action(p + 1)) // buy 5, 10, 15
	}
	assert.Equal(t, 5, s.BoughtSeats(0))
	assert.Equal(t, 10, s.BoughtSeats(1))
	assert.Equal(t, 15, s.BoughtSeats(2))
	require.Equal(t, PriceSetting, s.Phase())
	require.Equal(t, 0, s.CurrentPlayer())

	prevRound := s.Round()
	for !s.IsTerminal() {
		switch s.Phase() {
		case PriceSetting:
			require.GreaterOrEqual(t, s.CurrentPlayer(), 0)
			s.ApplyAction(SetPrice55)
		case DemandSimulation:
			require.Equal(t, ChancePlayer, s.CurrentPlayer())
			s.ApplyAction(ChanceAction)
		default:
			t.Fatalf("unexpected phase %v", s.Phase())
		}

		// Round counter is non-decreasing and histories stay in lockstep
		// at every observable boundary.
		require.GreaterOrEqual(t, s.Round(), prevRound)
		prevRound = s.Round()
		if s.Phase() != PriceSetting || s.CurrentPlayer() == 0 || s.IsTerminal() {
			for p := 0; p < 3; p++ {
				require.Len(t, s.Sold(p), s.Round(), "player %d sold", p)
				if s.IsTerminal() {
					require.Len(t, s.Prices(p), s.Round(), "player %d prices", p)
				}
			}
		}
	}

	assert.Equal(t, MaxRounds, s.Round())
	assert.Equal(t, TerminalPlayer, s.CurrentPlayer())
	assert.Nil(t, s.LegalActions())
}

func TestMatchDeterminism(t *testing.T) {
	s1 := playFixed(t, newTestMatch(t, 2, 99), Buy10, SetPrice50)
	s2 := playFixed(t, newTestMatch(t, 2, 99), Buy10, SetPrice50)

	for p := 0; p < 2; p++ {
		assert.Equal(t, s1.Sold(p), s2.Sold(p), "player %d sold history", p)
	}
	assert.Equal(t, s1.Returns(), s2.Returns())

	// A different seed diverges.
	s3 := playFixed(t, newTestMatch(t, 2, 100), Buy10, SetPrice50)
	diverged := false
	for p := 0; p < 2; p++ {
		if !assert.ObjectsAreEqual(s1.Sold(p), s3.Sold(p)) {
			diverged = true
		}
	}
	assert.True(t, diverged, "expected different seeds to produce different sales")
}

func TestMatchEndToEndScoring(t *testing.T) {
	// Both players buy 10 seats and hold price 50 for the whole match. The
	// terminal returns must equal the closed-form accumulation applied to
	// the realized sold/price histories.
	s := playFixed(t, newTestMatch(t, 2, 7), Buy10, SetPrice50)
	returns := s.Returns()

	for p := 0; p < 2; p++ {
		sold := s.Sold(p)
		prices := s.Prices(p)
		require.Len(t, sold, MaxRounds)
		require.Len(t, prices, MaxRounds)

		want := -10.0 * 50
		seatsLeft := 10
		for r := 0; r < MaxRounds; r++ {
			want += float64(sold[r] * prices[r])
			if seatsLeft > 0 {
				seatsLeft -= sold[r]
				if seatsLeft < 0 {
					want -= float64(-seatsLeft * 80)
				}
			} else {
				want -= float64(sold[r] * 80)
			}
		}
		assert.InDelta(t, want, returns[p], 1e-9, "player %d", p)
	}
}

func TestMatchGoldenTrace(t *testing.T) {
	// Recorded reference trace for seed 7: both players buy 10 seats and
	// hold price 50 for the whole match. The seeded stream must reproduce
	// these sales histories bit-for-bit; any drift in the generator, the
	// draw order, or the demand arithmetic shows up here.
	s := playFixed(t, newTestMatch(t, 2, 7), Buy10, SetPrice50)

	assert.Equal(t, []int{12, 10, 11, 10, 10, 12, 11, 12, 11, 10}, s.Sold(0))
	assert.Equal(t, []int{11, 11, 11, 12, 10, 11, 10, 10, 10, 11}, s.Sold(1))
	assert.Equal(t, []float64{-2970, -2910}, s.Returns())
}

func TestRewardsMatchReturnsAtTerminal(t *testing.T) {
	s := playFixed(t, newTestMatch(t, 2, 13), Buy20, SetPrice70)
	assert.Equal(t, s.Returns(), s.Rewards())
}

func TestReturnsZeroBeforeTerminal(t *testing.T) {
	m := newTestMatch(t, 2, 5)
	s := m.NewInitialState()
	s.ApplyAction(ChanceAction)
	s.ApplyAction(Buy10)
	s.ApplyAction(Buy10)

	assert.Equal(t, []float64{0, 0}, s.Returns())
}

func TestApplyActionPanicsOnIllegalAction(t *testing.T) {
	m := newTestMatch(t, 2, 1)
	s := m.NewInitialState()

	assert.Panics(t, func() { s.ApplyAction(Buy5) }, "player action at chance node")

	s.ApplyAction(ChanceAction)
	assert.Panics(t, func() { s.ApplyAction(SetPrice50) }, "price action while seat buying")
	assert.Panics(t, func() { s.ApplyAction(Action(10)) }, "action id out of space")
}

func TestApplyActionPanicsOnTerminalState(t *testing.T) {
	s := playFixed(t, newTestMatch(t, 2, 3), Buy10, SetPrice50)
	require.True(t, s.IsTerminal())
	assert.Panics(t, func() { s.ApplyAction(ChanceAction) })
}

func TestChanceOutcomes(t *testing.T) {
	m := newTestMatch(t, 2, 11)
	s := m.NewInitialState()

	outcomes := s.ChanceOutcomes()
	require.Len(t, outcomes, 1)
	assert.Equal(t, ChanceAction, outcomes[0].Action)
	assert.Equal(t, 1.0, outcomes[0].Probability)

	s.ApplyAction(ChanceAction)
	assert.Panics(t, func() { s.ChanceOutcomes() }, "chance outcomes at a player node")
}

func TestCloneIsIndependent(t *testing.T) {
	m := newTestMatch(t, 2, 21)
	s := m.NewInitialState()
	s.ApplyAction(ChanceAction)
	s.ApplyAction(Buy10)

	c := s.Clone()
	c.ApplyAction(Buy20)

	assert.Equal(t, 1, s.CurrentPlayer(), "original state advanced by clone")
	assert.Equal(t, 0, s.BoughtSeats(1))
	assert.Equal(t, 20, c.BoughtSeats(1))
	assert.Equal(t, PriceSetting, c.Phase())
	assert.Equal(t, SeatBuying, s.Phase())
}

func TestNewDefinitionValidatesPlayers(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		_, err := NewDefinition(n)
		assert.NoError(t, err, "%d players", n)
	}
	for _, n := range []int{-1, 0, 1, 5} {
		_, err := NewDefinition(n)
		assert.Error(t, err, "%d players", n)
	}
}

func TestDefinitionFacts(t *testing.T) {
	def, err := NewDefinition(2)
	require.NoError(t, err)

	assert.Equal(t, 10, def.NumDistinctActions())
	assert.Equal(t, 2+2*MaxRounds, def.MaxGameLength())
	assert.Equal(t, MaxRounds+1, def.MaxChanceNodesInHistory())
	assert.Less(t, def.MinUtility(), def.MaxUtility())
}
