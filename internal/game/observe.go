package game

import (
	"fmt"
	"strings"
)

// PlayerView is the player-scoped projection of the match: the player's own
// purchase, the round bookkeeping, and the public sold/price history. Other
// players' purchase quantities are private and never included.
type PlayerView struct {
	Player       int
	Round        int
	Phase        Phase
	CurrentActor int
	BoughtSeats  int
	Sold         [][]int
	Prices       [][]int
}

// View builds the information view for the requesting player. The player
// index must be in range; anything else is a caller error and panics.
func (s *State) View(player int) PlayerView {
	s.checkPlayer(player)
	n := s.match.def.NumPlayers
	sold := make([][]int, n)
	prices := make([][]int, n)
	for p := 0; p < n; p++ {
		sold[p] = append([]int(nil), s.sold[p]...)
		prices[p] = append([]int(nil), s.prices[p]...)
	}
	return PlayerView{
		Player:       player,
		Round:        s.round,
		Phase:        s.phase,
		CurrentActor: s.current,
		BoughtSeats:  s.bought[player],
		Sold:         sold,
		Prices:       prices,
	}
}

// InformationString renders the requesting player's view as text.
func (s *State) InformationString(player int) string {
	v := s.View(player)
	var b strings.Builder
	fmt.Fprintf(&b, "player:%d round:%d actor:%s seats:%d", v.Player, v.Round, actorString(v.CurrentActor), v.BoughtSeats)
	fmt.Fprintf(&b, " sold:%v prices:%v", v.Sold, v.Prices)
	return b.String()
}

// InformationTensor encodes the requesting player's view as a fixed-size
// vector: one-hot round, one-hot actor (players then chance then terminal),
// the player's own bought seats, then the sold and price histories flattened
// round-major player-minor and zero-filled beyond the current round.
func (s *State) InformationTensor(player int) []float64 {
	s.checkPlayer(player)
	n := s.match.def.NumPlayers
	out := make([]float64, s.match.def.InformationTensorSize())

	out[s.round] = 1
	offset := MaxRounds + 1

	switch s.current {
	case ChancePlayer:
		out[offset+n] = 1
	case TerminalPlayer:
		out[offset+n+1] = 1
	default:
		out[offset+s.current] = 1
	}
	offset += n + 2

	out[offset] = float64(s.bought[player])
	offset++

	for r := 0; r < MaxRounds; r++ {
		for p := 0; p < n; p++ {
			if r < len(s.sold[p]) {
				out[offset] = float64(s.sold[p][r])
			}
			offset++
		}
	}
	for r := 0; r < MaxRounds; r++ {
		for p := 0; p < n; p++ {
			if r < len(s.prices[p]) {
				out[offset] = float64(s.prices[p][r])
			}
			offset++
		}
	}
	return out
}

// ObservationString and ObservationTensor alias the information view: the
// sold and price histories are fully public in this design, so the
// observation carries the same content.
func (s *State) ObservationString(player int) string {
	return s.InformationString(player)
}

func (s *State) ObservationTensor(player int) []float64 {
	return s.InformationTensor(player)
}
