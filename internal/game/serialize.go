package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialized record layout, pipe-delimited:
//
//	rng_snapshot | round | c1 | current_actor | phase_code | bought_csv | sold_csv | prices_csv
//
// History blocks are flattened in round-major, player-minor order. A
// partially completed price round only ever involves a prefix of the players
// (they act in index order), so entry i always belongs to player i mod n.
const serializedFieldCount = 8

// Serialize renders the full match state, including the random stream's
// position, as a single delimited record. Deserializing the record restores
// the state bit-for-bit, with subsequent draws continuing the stream exactly.
func (s *State) Serialize() string {
	fields := []string{
		s.match.rng.State(),
		strconv.Itoa(s.round),
		strconv.FormatFloat(s.c1, 'g', -1, 64),
		strconv.Itoa(s.current),
		s.phase.Code(),
		joinInts(s.bought),
		flattenHistory(s.sold),
		flattenHistory(s.prices),
	}
	return strings.Join(fields, "|")
}

// DeserializeState parses a record produced by State.Serialize into a fresh
// state owned by this match. A malformed or inconsistent record yields an
// error and no state; the match's random stream is only restored once the
// whole record has been parsed and validated, so a failed restore leaves the
// stream untouched.
func (m *Match) DeserializeState(record string) (*State, error) {
	fields := strings.Split(record, "|")
	if len(fields) != serializedFieldCount {
		return nil, fmt.Errorf("serialized state has %d fields, want %d", len(fields), serializedFieldCount)
	}

	round, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("parse round: %w", err)
	}
	c1, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("parse c1: %w", err)
	}
	actor, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("parse actor: %w", err)
	}
	phase, err := phaseFromCode(fields[4])
	if err != nil {
		return nil, err
	}

	n := m.def.NumPlayers
	bought, err := splitInts(fields[5])
	if err != nil {
		return nil, fmt.Errorf("parse bought seats: %w", err)
	}
	if len(bought) != n {
		return nil, fmt.Errorf("bought seats has %d entries, want %d", len(bought), n)
	}

	sold, err := unflattenHistory(fields[6], n)
	if err != nil {
		return nil, fmt.Errorf("parse sold history: %w", err)
	}
	prices, err := unflattenHistory(fields[7], n)
	if err != nil {
		return nil, fmt.Errorf("parse price history: %w", err)
	}

	s := &State{
		match:   m,
		round:   round,
		phase:   phase,
		current: actor,
		c1:      c1,
		bought:  bought,
		sold:    sold,
		prices:  prices,
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("inconsistent state record: %w", err)
	}

	if err := m.rng.SetState(fields[0]); err != nil {
		return nil, fmt.Errorf("restore rng: %w", err)
	}
	return s, nil
}

// validate checks that a deserialized record describes a state the transition
// rules could actually reach: the actor must match the phase, and every
// history length must match the round counter. Records that parse
// field-by-field but break these relationships would corrupt scoring and
// replay if accepted.
func (s *State) validate() error {
	n := s.match.def.NumPlayers
	if s.round < 0 || s.round > MaxRounds {
		return fmt.Errorf("round %d out of range [0,%d]", s.round, MaxRounds)
	}
	playerActor := s.current >= 0 && s.current < n

	switch s.phase {
	case InitialConditions:
		if s.current != ChancePlayer || s.round != 0 {
			return fmt.Errorf("phase %v with actor %d at round %d", s.phase, s.current, s.round)
		}
	case SeatBuying:
		if !playerActor || s.round != 0 {
			return fmt.Errorf("phase %v with actor %d at round %d", s.phase, s.current, s.round)
		}
	case PriceSetting:
		if !playerActor || s.round >= MaxRounds {
			return fmt.Errorf("phase %v with actor %d at round %d", s.phase, s.current, s.round)
		}
	case DemandSimulation:
		switch s.current {
		case ChancePlayer:
			if s.round >= MaxRounds {
				return fmt.Errorf("phase %v with actor %d at round %d", s.phase, s.current, s.round)
			}
		case TerminalPlayer:
			if s.round != MaxRounds {
				return fmt.Errorf("terminal state at round %d, want %d", s.round, MaxRounds)
			}
		default:
			return fmt.Errorf("phase %v with actor %d at round %d", s.phase, s.current, s.round)
		}
	}

	for p := 0; p < n; p++ {
		if len(s.sold[p]) != s.round {
			return fmt.Errorf("player %d has %d sold entries, want %d", p, len(s.sold[p]), s.round)
		}
		wantPrices := s.round
		switch {
		case s.phase == PriceSetting && p < s.current:
			// players before the actor have already priced this round
			wantPrices = s.round + 1
		case s.phase == DemandSimulation && s.current == ChancePlayer:
			wantPrices = s.round + 1
		}
		if len(s.prices[p]) != wantPrices {
			return fmt.Errorf("player %d has %d price entries, want %d", p, len(s.prices[p]), wantPrices)
		}
	}
	return nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func splitInts(csv string) ([]int, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	vals := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// flattenHistory joins per-player sequences in round-major, player-minor
// order, including a trailing partial round.
func flattenHistory(h [][]int) string {
	var parts []string
	for r := 0; ; r++ {
		any := false
		for p := range h {
			if r < len(h[p]) {
				parts = append(parts, strconv.Itoa(h[p][r]))
				any = true
			}
		}
		if !any {
			break
		}
	}
	return strings.Join(parts, ",")
}

func unflattenHistory(csv string, numPlayers int) ([][]int, error) {
	vals, err := splitInts(csv)
	if err != nil {
		return nil, err
	}
	h := make([][]int, numPlayers)
	for i, v := range vals {
		h[i%numPlayers] = append(h[i%numPlayers], v)
	}
	return h, nil
}
