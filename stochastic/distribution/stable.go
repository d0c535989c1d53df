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

	"github.com/0xsoniclabs/randstream/stochastic"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// uMin keeps U away from -pi/2 where cos(U) vanishes.
const uMin = -math.Pi/2 + 3*0x1p-52

// Stable is the general stable distribution S(alpha, beta, scale, location)
// sampled with the Chambers-Mallows-Stuck method. Every sample consumes one
// uniform draw on (-pi/2, pi/2) followed by one unit-rate exponential draw.
type Stable struct {
	location, scale, alpha, beta float64
	nearOne                      bool // alpha within StableAlphaTolerance of one

	// derived constants
	calcScale float64
	xi        float64 // alpha != 1 only
	alphaInv  float64 // alpha != 1 only
	alpha2    float64 // (1-alpha)/alpha, alpha != 1 only
	adjusted  float64 // shifted location, alpha ~ 1 only
}

// NewStable creates a stable distribution. The scale must be positive, alpha
// in (0, 2] and beta in [-1, 1].
func NewStable(location, scale, alpha, beta float64) (*Stable, error) {
	if !isFinite(location) {
		return nil, invalidf("stable: location must be finite (got %v)", location)
	}
	if !isFinite(scale) || scale <= 0 {
		return nil, invalidf("stable: scale must be positive (got %v)", scale)
	}
	if !(alpha > 0 && alpha <= 2) {
		return nil, invalidf("stable: alpha (%v) must lie in (0, 2]", alpha)
	}
	if !(beta >= -1 && beta <= 1) {
		return nil, invalidf("stable: beta (%v) must lie in [-1, 1]", beta)
	}

	s := &Stable{
		location: location,
		scale:    scale,
		alpha:    alpha,
		beta:     beta,
		nearOne:  math.Abs(alpha-1) <= stochastic.StableAlphaTolerance,
	}
	if s.nearOne {
		s.adjusted = location + 2/math.Pi*beta*scale*math.Log(scale)
		s.calcScale = scale * 2 / math.Pi
	} else {
		zeta := -beta * math.Tan(math.Pi*alpha/2)
		s.calcScale = scale * math.Pow(zeta*zeta+1, 1/(2*alpha))
		s.xi = math.Atan(-zeta) / alpha
		s.alphaInv = 1 / alpha
		s.alpha2 = (1 - alpha) / alpha
	}
	return s, nil
}

func (s *Stable) Sample(src rand.Source) float64 {
	u := distuv.Uniform{Min: uMin, Max: math.Pi / 2, Src: src}.Rand()
	w := distuv.Exponential{Rate: 1, Src: src}.Rand()
	return s.transform(u, w)
}

// transform maps a uniform angle u and an exponential variate w onto the distribution.
func (s *Stable) transform(u, w float64) float64 {
	if s.nearOne {
		h := math.Pi/2 + s.beta*u
		return s.adjusted + s.calcScale*(h*math.Tan(u)-s.beta*math.Log(math.Pi/2*w*math.Cos(u)/h))
	}
	a := s.alpha * (u + s.xi)
	return s.location + s.calcScale*math.Sin(a)/math.Pow(math.Cos(u), s.alphaInv)*
		math.Pow(math.Cos(u-a)/w, s.alpha2)
}
