// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package analytics

import (
	"encoding/json"
	"math"
)

// IncrementalStats tracks count, extrema, a compensated sum and the first
// four central moments of a stream of values in a single pass.
type IncrementalStats struct {
	count uint64
	min   float64
	max   float64
	ksum  float64 // Kahan sum
	c     float64 // compensation of the Kahan sum
	m1    float64 // mean
	m2    float64 // sum of squared deviations
	m3    float64
	m4    float64
}

// Update adds x to the statistics.
func (s *IncrementalStats) Update(x float64) {
	if s.count == 0 || x < s.min {
		s.min = x
	}
	if s.count == 0 || x > s.max {
		s.max = x
	}

	y := x - s.c
	t := s.ksum + y
	s.c = (t - s.ksum) - y
	s.ksum = t

	n1 := float64(s.count)
	s.count++
	n := float64(s.count)
	delta := x - s.m1
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n1
	s.m1 += deltaN
	s.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
	s.m3 += term1*deltaN*(n-2) - 3*deltaN*s.m2
	s.m2 += term1
}

func (s *IncrementalStats) GetCount() uint64 {
	return s.count
}

func (s *IncrementalStats) GetMin() float64 {
	return s.min
}

func (s *IncrementalStats) GetMax() float64 {
	return s.max
}

func (s *IncrementalStats) GetSum() float64 {
	return s.ksum
}

func (s *IncrementalStats) GetMean() float64 {
	return s.m1
}

// GetVariance returns the sample variance; zero for fewer than two values.
func (s *IncrementalStats) GetVariance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.m2 / float64(s.count-1)
}

func (s *IncrementalStats) GetStandardDeviation() float64 {
	return math.Sqrt(s.GetVariance())
}

// GetSkewness returns the sample skewness; zero without spread.
func (s *IncrementalStats) GetSkewness() float64 {
	if s.m2 == 0 {
		return 0
	}
	return math.Sqrt(float64(s.count)) * s.m3 / math.Pow(s.m2, 1.5)
}

// GetKurtosis returns the excess kurtosis; zero without spread.
func (s *IncrementalStats) GetKurtosis() float64 {
	if s.m2 == 0 {
		return 0
	}
	return float64(s.count)*s.m4/(s.m2*s.m2) - 3
}

func (s IncrementalStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Count    uint64  `json:"count"`
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Sum      float64 `json:"sum"`
		Mean     float64 `json:"mean"`
		StdDev   float64 `json:"stddev"`
		Skewness float64 `json:"skewness"`
		Kurtosis float64 `json:"kurtosis"`
	}{s.count, s.min, s.max, s.ksum, s.m1, s.GetStandardDeviation(), s.GetSkewness(), s.GetKurtosis()})
}

// String renders the statistics as JSON.
func (s IncrementalStats) String() string {
	b, err := s.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}
