// Package statistics aggregates per-player returns over many simulated
// matches.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MatchResult is the outcome of one completed match.
type MatchResult struct {
	Seed    int64 // RNG seed for this match (for replay)
	Returns []float64
}

// Summary tracks the distribution of one player's returns.
type Summary struct {
	Matches int
	Sum     float64
	Sum2    float64   // sum of squares for variance calculation
	Values  []float64 // all values, for median/percentile calculation
}

// Add records one match return.
func (s *Summary) Add(v float64) {
	s.Matches++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean of all recorded returns.
func (s *Summary) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.Sum / float64(s.Matches)
}

// Variance returns the sample variance of all recorded returns.
func (s *Summary) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
}

// StdDev returns the sample standard deviation.
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Summary) StdError() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Matches))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Percentile returns the pth percentile (0..100) of recorded returns.
func (s *Summary) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), s.Values...)
	sort.Float64s(sorted)
	idx := int(p / 100 * float64(len(sorted)-1))
	return sorted[idx]
}

// Median returns the 50th percentile.
func (s *Summary) Median() float64 {
	return s.Percentile(50)
}

// Min and Max return the extremes of recorded returns.
func (s *Summary) Min() float64 { return s.Percentile(0) }
func (s *Summary) Max() float64 { return s.Percentile(100) }

// String renders a one-line summary.
func (s *Summary) String() string {
	lo, hi := s.ConfidenceInterval95()
	return fmt.Sprintf("n=%d mean=%.1f stddev=%.1f ci95=[%.1f,%.1f] min=%.1f max=%.1f",
		s.Matches, s.Mean(), s.StdDev(), lo, hi, s.Min(), s.Max())
}
