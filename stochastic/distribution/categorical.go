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
	"sort"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Categorical draws the zero-based index of a category with probability
// proportional to its weight. The index is returned as a float64.
type Categorical struct {
	cumulative []float64 // running sum of the weights
}

// NewCategorical creates a categorical distribution from non-negative
// weights which need not be normalised.
func NewCategorical(weights []float64) (*Categorical, error) {
	if len(weights) == 0 {
		return nil, invalidf("categorical: no weights given")
	}
	if w, i, bad := lo.FindIndexOf(weights, func(w float64) bool { return !isFinite(w) || w < 0 }); bad {
		return nil, invalidf("categorical: weight %d (%v) must be finite and non-negative", i, w)
	}
	cumulative := floats.CumSum(make([]float64, len(weights)), weights)
	total := cumulative[len(cumulative)-1]
	if !isFinite(total) || total <= 0 {
		return nil, invalidf("categorical: weights must have a positive finite sum (got %v)", total)
	}
	return &Categorical{cumulative: cumulative}, nil
}

func (c *Categorical) Sample(src rand.Source) float64 {
	total := c.cumulative[len(c.cumulative)-1]
	u := distuv.Uniform{Min: 0, Max: total, Src: src}.Rand()
	i := sort.Search(len(c.cumulative), func(i int) bool { return c.cumulative[i] > u })
	if i == len(c.cumulative) {
		// u rounded up to the total; pick the last category with positive weight
		i = sort.SearchFloat64s(c.cumulative, total)
	}
	return float64(i)
}
