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

package distribution

import (
	"math"
	"slices"
	"sort"

	"github.com/0xsoniclabs/randstream/stochastic"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Empirical is the continuous distribution implied by a data set. Its
// cumulative distribution function is piecewise linear through the sorted
// data points, the i-th of n points sitting at probability i/(n-1).
// Both axes are normalised to [0,1] so that the eCDF can be simplified
// independently of the data's scale.
type Empirical struct {
	offset float64      // smallest data point
	span   float64      // distance between the smallest and largest data point
	ecdf   [][2]float64 // normalised eCDF; nil for a point mass
}

// NewEmpirical creates an empirical distribution from a non-empty data set.
// Data sets with more than NumECDFPoints points are reduced with the
// Visvalingam-Whyatt algorithm.
func NewEmpirical(data []float64) (*Empirical, error) {
	if len(data) == 0 {
		return nil, invalidf("empirical: data set is empty")
	}
	if !lo.EveryBy(data, isFinite) {
		return nil, invalidf("empirical: data points must be finite")
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	lowest, highest := sorted[0], sorted[len(sorted)-1]
	e := &Empirical{offset: lowest, span: highest - lowest}
	if math.IsInf(e.span, 0) {
		return nil, invalidf("empirical: range of data points [%v, %v] overflows", lowest, highest)
	}
	if e.span == 0 {
		return e, nil
	}

	n := float64(len(sorted) - 1)
	ls := make(orb.LineString, len(sorted))
	for i, x := range sorted {
		ls[i] = orb.Point{(x - lowest) / e.span, float64(i) / n}
	}
	if len(ls) > stochastic.NumECDFPoints {
		simplifier := simplify.VisvalingamKeep(stochastic.NumECDFPoints)
		ls = simplifier.Simplify(ls).(orb.LineString)
	}
	e.ecdf = make([][2]float64, len(ls))
	for i := range ls {
		e.ecdf[i] = [2]float64(ls[i])
	}
	return e, nil
}

// Quantile is the inverse of the piecewise linear CDF for p in [0,1].
func (e *Empirical) Quantile(p float64) float64 {
	if e.ecdf == nil {
		return e.offset
	}
	last := len(e.ecdf) - 1
	i := sort.Search(last, func(i int) bool { return e.ecdf[i+1][1] >= p })
	if i == last {
		return e.offset + e.span
	}
	x0, p0 := e.ecdf[i][0], e.ecdf[i][1]
	x1, p1 := e.ecdf[i+1][0], e.ecdf[i+1][1]
	x := x0 + (p-p0)/(p1-p0)*(x1-x0)
	return e.offset + x*e.span
}

func (e *Empirical) Sample(src rand.Source) float64 {
	return e.Quantile(distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand())
}
