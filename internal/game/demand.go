package game

import "math"

// signAwarePow raises base to exp, routing negative exponents through the
// reciprocal so math.Pow never sees a combination that produces a domain
// error for the bases this model generates.
func signAwarePow(base, exp float64) float64 {
	if exp < 0 {
		return 1 / math.Pow(base, -exp)
	}
	return math.Pow(base, exp)
}

// simulateDemand resolves one round of the market. Each player's
// attractiveness weight is price^-k, total demand is C0 plus a c1-scaled
// transform of the weight mass, and each player's nominal share is perturbed
// by an independent noise draw. Noise draws are consumed in player-index
// order; replay from a saved stream position reproduces identical results.
//
// Sales are not clamped to owned inventory: overselling is allowed here and
// priced in by the scoring engine as a late-purchase penalty.
func (s *State) simulateDemand() []int {
	n := s.match.def.NumPlayers

	powers := make([]float64, n)
	var powerSum float64
	for p := 0; p < n; p++ {
		price := s.prices[p][s.round] // most recent price
		powers[p] = signAwarePow(float64(price), -demandExponent)
		powerSum += powers[p]
	}

	totalDemand := demandBase + signAwarePow(powerSum, 1/-demandExponent)*s.c1

	sold := make([]int, n)
	for p := 0; p < n; p++ {
		noise := (s.match.rand() - 0.5) * noiseSpread / 100
		share := powers[p] / powerSum
		sold[p] = int(math.Round(totalDemand * (1 + noise) * share))
	}
	return sold
}
