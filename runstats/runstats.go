// Package runstats provides an online mean/variance accumulator. Samples
// are incorporated one at a time in O(1) time and memory using Welford's
// recurrence, which stays numerically stable as the sample count grows
// (the naive sum-of-squares formula loses precision catastrophically when
// the mean is large relative to the spread).
package runstats

import (
	"errors"
	"math"
)

// ErrNoSamples is returned when a statistic is requested before enough
// samples have been pushed: Mean needs one, Variance and StdDev need two.
var ErrNoSamples = errors.New("runstats: not enough samples")

// Stats accumulates streaming mean and variance. The zero value is ready
// to use. There is no reset; start a fresh instance instead. A Stats is
// not safe for concurrent mutation — serialise Push externally or keep
// one accumulator per goroutine.
type Stats struct {
	count int
	mean  float64
	m2    float64 // sum of squared deviations from the running mean
}

// Push incorporates one sample.
func (s *Stats) Push(x float64) {
	s.count++
	delta := x - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (x - s.mean)
}

// Count returns the number of samples pushed so far.
func (s *Stats) Count() int {
	return s.count
}

// Mean returns the arithmetic mean of all pushed samples. It returns
// ErrNoSamples if nothing has been pushed.
func (s *Stats) Mean() (float64, error) {
	if s.count == 0 {
		return 0, ErrNoSamples
	}
	return s.mean, nil
}

// Variance returns the sample variance (n-1 divisor). It returns
// ErrNoSamples with fewer than 2 samples.
func (s *Stats) Variance() (float64, error) {
	if s.count < 2 {
		return 0, ErrNoSamples
	}
	return s.m2 / float64(s.count-1), nil
}

// StdDev returns the sample standard deviation. It returns ErrNoSamples
// with fewer than 2 samples.
func (s *Stats) StdDev() (float64, error) {
	v, err := s.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}
