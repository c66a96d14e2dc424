package game

// Returns reports each player's terminal profit and loss. Results are not
// final until the match ends, so a non-terminal state returns all zeros.
func (s *State) Returns() []float64 {
	if !s.IsTerminal() {
		return make([]float64, s.match.def.NumPlayers)
	}
	return s.accumulate(MaxRounds)
}

// Rewards reports the same accumulation as Returns restricted to completed
// rounds, for reward-shaping drivers. At a terminal state it equals Returns.
func (s *State) Rewards() []float64 {
	return s.accumulate(s.round)
}

// accumulate computes per-player profit over the first rounds rounds: the
// up-front seat purchase, revenue per round, and the late-purchase penalty
// for every seat sold beyond owned inventory.
func (s *State) accumulate(rounds int) []float64 {
	pnls := make([]float64, s.match.def.NumPlayers)
	for p := range pnls {
		pnl := -float64(s.bought[p] * initialPurchasePrice)
		seatsLeft := s.bought[p]
		for r := 0; r < rounds; r++ {
			sold := s.sold[p][r]
			pnl += float64(sold * s.prices[p][r])
			if seatsLeft > 0 {
				seatsLeft -= sold
				if seatsLeft < 0 {
					// Went over this round: only the overrun is late.
					pnl -= float64(-seatsLeft * latePurchasePrice)
				}
			} else {
				// Already out of inventory: the whole round is late.
				pnl -= float64(sold * latePurchasePrice)
			}
		}
		pnls[p] = pnl
	}
	return pnls
}
