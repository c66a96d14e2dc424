package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func summaryOf(values ...float64) *Summary {
	s := &Summary{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func TestSummaryEmpty(t *testing.T) {
	s := &Summary{}
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.StdError())
	assert.Equal(t, 0.0, s.Median())
}

func TestSummaryMoments(t *testing.T) {
	s := summaryOf(2, 4, 4, 4, 5, 5, 7, 9)

	assert.InDelta(t, 5.0, s.Mean(), 1e-9)
	// Sample variance of the classic dataset is 32/7.
	assert.InDelta(t, 32.0/7.0, s.Variance(), 1e-9)
	assert.InDelta(t, 2.138, s.StdDev(), 1e-3)
	assert.Greater(t, s.StdError(), 0.0)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
}

func TestSummaryPercentiles(t *testing.T) {
	s := summaryOf(30, 10, 50, 20, 40)

	assert.Equal(t, 10.0, s.Min())
	assert.Equal(t, 50.0, s.Max())
	assert.Equal(t, 30.0, s.Median())
	// Percentile must not disturb insertion order.
	assert.Equal(t, []float64{30, 10, 50, 20, 40}, s.Values)
}

func TestSummarySingleValue(t *testing.T) {
	s := summaryOf(42)
	assert.Equal(t, 42.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance(), "variance undefined for one sample")
	assert.Equal(t, 42.0, s.Median())
}
