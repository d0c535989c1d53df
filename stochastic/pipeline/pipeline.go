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

// Package pipeline turns raw draws of a distribution into the values that
// are emitted: exponentiation, discard bounds and random-walk accumulation.
package pipeline

import (
	"math"

	"github.com/0xsoniclabs/randstream/stochastic"
	"github.com/0xsoniclabs/randstream/stochastic/distribution"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// ErrEmptyAcceptance is reported when the discard bounds exclude every value.
var ErrEmptyAcceptance = errors.New("discard bounds exclude every value")

// Config selects the transformations applied to each raw draw.
type Config struct {
	Exponentiate bool     // replace x by e^x
	DiscardBelow *float64 // redraw values below this bound
	DiscardAbove *float64 // redraw values above this bound
	Cumulative   bool     // emit the running sum instead of the sample
}

// Pipeline draws from a distribution and applies the configured
// transformations in a fixed order. It is not safe for concurrent use.
type Pipeline struct {
	dist        distribution.Distribution
	cfg         Config
	accumulator float64
	discarded   uint64
}

// New creates a pipeline over the given distribution.
func New(dist distribution.Distribution, cfg Config) (*Pipeline, error) {
	if dist == nil {
		return nil, errors.New("pipeline: no distribution")
	}
	for _, bound := range []*float64{cfg.DiscardBelow, cfg.DiscardAbove} {
		if bound != nil && math.IsNaN(*bound) {
			return nil, errors.New("pipeline: discard bound is NaN")
		}
	}
	if cfg.DiscardBelow != nil && cfg.DiscardAbove != nil && *cfg.DiscardBelow > *cfg.DiscardAbove {
		return nil, errors.Wrapf(ErrEmptyAcceptance, "pipeline: lower bound %v exceeds upper bound %v",
			*cfg.DiscardBelow, *cfg.DiscardAbove)
	}
	return &Pipeline{dist: dist, cfg: cfg}, nil
}

// Next returns the next value to emit. Draws outside the discard bounds are
// dropped and redrawn without limit; bounds the distribution never reaches
// therefore make Next loop forever.
func (p *Pipeline) Next(src rand.Source) float64 {
	v, _ := p.NextUntil(nil, src)
	return v
}

// NextUntil is Next with a cancellation channel. While redrawing it polls
// done every DiscardCheckInterval discards and reports false once done is
// closed; nothing is emitted and the accumulator is left unchanged then.
// A nil done never cancels.
func (p *Pipeline) NextUntil(done <-chan struct{}, src rand.Source) (float64, bool) {
	x, ok := p.draw(done, src)
	if !ok {
		return 0, false
	}
	if !p.cfg.Cumulative {
		p.accumulator = 0
		return x, true
	}
	p.accumulator += x
	return p.accumulator, true
}

// draw returns the first exponentiated draw accepted by the bounds.
func (p *Pipeline) draw(done <-chan struct{}, src rand.Source) (float64, bool) {
	for rejected := 1; ; rejected++ {
		x := p.dist.Sample(src)
		if p.cfg.Exponentiate {
			x = math.Exp(x)
		}
		if p.accepts(x) {
			return x, true
		}
		p.discarded++
		if rejected%stochastic.DiscardCheckInterval == 0 {
			select {
			case <-done:
				return 0, false
			default:
			}
		}
	}
}

func (p *Pipeline) accepts(x float64) bool {
	if p.cfg.DiscardBelow != nil && x < *p.cfg.DiscardBelow {
		return false
	}
	if p.cfg.DiscardAbove != nil && x > *p.cfg.DiscardAbove {
		return false
	}
	return true
}

// Accumulator returns the current random-walk sum; zero outside cumulative mode.
func (p *Pipeline) Accumulator() float64 {
	return p.accumulator
}

// Discarded returns the number of draws dropped by the bounds so far.
func (p *Pipeline) Discarded() uint64 {
	return p.discarded
}
