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
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the continuous uniform distribution on [min, max) or, if
// inclusive, on [min, max].
type Uniform struct {
	min, max  float64
	inclusive bool
}

// NewUniform creates a uniform distribution. The half-open variant requires
// max > min, the inclusive variant max >= min.
func NewUniform(min, max float64, inclusive bool) (*Uniform, error) {
	if !isFinite(min) || !isFinite(max) {
		return nil, invalidf("uniform: bounds must be finite (min=%v, max=%v)", min, max)
	}
	if inclusive && max < min {
		return nil, invalidf("uniform: max (%v) must not be less than min (%v)", max, min)
	}
	if !inclusive && max <= min {
		return nil, invalidf("uniform: max (%v) must be greater than min (%v)", max, min)
	}
	return &Uniform{min: min, max: max, inclusive: inclusive}, nil
}

func (u *Uniform) Sample(src rand.Source) float64 {
	if u.inclusive {
		// 53 random bits scaled onto the closed unit interval
		f := float64(src.Uint64()>>11) / (1<<53 - 1)
		x := u.min + f*(u.max-u.min)
		if x > u.max {
			return u.max
		}
		return x
	}
	d := distuv.Uniform{Min: u.min, Max: u.max, Src: src}
	for {
		// rounding of min + f*(max-min) may hit max for wide ranges
		if x := d.Rand(); x < u.max {
			return x
		}
	}
}

// Normal is the normal distribution.
type Normal struct {
	mean, stddev float64
}

// NewNormal creates a normal distribution with the given mean and standard deviation.
func NewNormal(mean, stddev float64) (*Normal, error) {
	if !isFinite(mean) {
		return nil, invalidf("normal: mean must be finite (got %v)", mean)
	}
	if !isFinite(stddev) || stddev <= 0 {
		return nil, invalidf("normal: stddev must be positive (got %v)", stddev)
	}
	return &Normal{mean: mean, stddev: stddev}, nil
}

func (n *Normal) Sample(src rand.Source) float64 {
	return distuv.Normal{Mu: n.mean, Sigma: n.stddev, Src: src}.Rand()
}

// Cauchy is the Cauchy distribution, drawn as a Student's t with one degree of freedom.
type Cauchy struct {
	median, scale float64
}

// NewCauchy creates a Cauchy distribution with the given median and scale.
func NewCauchy(median, scale float64) (*Cauchy, error) {
	if !isFinite(median) {
		return nil, invalidf("cauchy: median must be finite (got %v)", median)
	}
	if !isFinite(scale) || scale <= 0 {
		return nil, invalidf("cauchy: scale must be positive (got %v)", scale)
	}
	return &Cauchy{median: median, scale: scale}, nil
}

func (c *Cauchy) Sample(src rand.Source) float64 {
	return distuv.StudentsT{Mu: c.median, Sigma: c.scale, Nu: 1, Src: src}.Rand()
}

// Triangular is the triangular distribution on [min, max] with the given mode.
type Triangular struct {
	min, max, mode float64
}

// NewTriangular creates a triangular distribution. It requires min < max and
// min <= mode <= max.
func NewTriangular(min, max, mode float64) (*Triangular, error) {
	if !isFinite(min) || !isFinite(max) || !isFinite(mode) {
		return nil, invalidf("triangular: parameters must be finite (min=%v, max=%v, mode=%v)", min, max, mode)
	}
	if min >= max {
		return nil, invalidf("triangular: max (%v) must be greater than min (%v)", max, min)
	}
	if mode < min || mode > max {
		return nil, invalidf("triangular: mode (%v) must lie in [%v, %v]", mode, min, max)
	}
	return &Triangular{min: min, max: max, mode: mode}, nil
}

func (t *Triangular) Sample(src rand.Source) float64 {
	return distuv.NewTriangle(t.min, t.max, t.mode, src).Rand()
}

// StudentT is the location-scale Student's t distribution.
type StudentT struct {
	location, scale, freedom float64
}

// NewStudentT creates a Student's t distribution with the given location,
// scale and degrees of freedom.
func NewStudentT(location, scale, freedom float64) (*StudentT, error) {
	if !isFinite(location) {
		return nil, invalidf("student-t: location must be finite (got %v)", location)
	}
	if !isFinite(scale) || scale <= 0 {
		return nil, invalidf("student-t: scale must be positive (got %v)", scale)
	}
	if !isFinite(freedom) || freedom <= 0 {
		return nil, invalidf("student-t: degrees of freedom must be positive (got %v)", freedom)
	}
	return &StudentT{location: location, scale: scale, freedom: freedom}, nil
}

func (s *StudentT) Sample(src rand.Source) float64 {
	return distuv.StudentsT{Mu: s.location, Sigma: s.scale, Nu: s.freedom, Src: src}.Rand()
}
