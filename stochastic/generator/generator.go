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

// Package generator drives the sampling loop and writes the encoded stream.
package generator

import (
	"bufio"
	"context"
	"io"
	"iter"
	"time"

	"github.com/0xsoniclabs/randstream/stochastic"
	"github.com/0xsoniclabs/randstream/stochastic/encoding"
	"github.com/0xsoniclabs/randstream/stochastic/pipeline"
	"github.com/0xsoniclabs/randstream/utils/analytics"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// Stats summarises a run.
type Stats struct {
	Emitted     uint64        // values written to the sink
	Discarded   uint64        // draws dropped by the discard bounds
	Elapsed     time.Duration // wall time of the run
	Interrupted bool          // the context was cancelled before the count was reached

	Values analytics.IncrementalStats // moments of the written values
}

// Generator produces a bounded or unbounded sequence of values. It owns its
// source exclusively; a generator must not be shared between goroutines.
type Generator struct {
	pipeline *pipeline.Pipeline
	src      rand.Source
	count    uint64 // zero for an unbounded stream
	produced uint64

	done        <-chan struct{} // ends a redraw loop that never accepts a value
	interrupted bool
}

// New creates a generator yielding count values, or an unbounded stream if count is zero.
func New(p *pipeline.Pipeline, src rand.Source, count uint64) *Generator {
	return &Generator{pipeline: p, src: src, count: count}
}

// Values returns the sequence of values. The sequence continues where a
// previous iteration stopped and ends once count values have been produced,
// or during Run once its context is cancelled.
func (g *Generator) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for g.count == 0 || g.produced < g.count {
			v, ok := g.pipeline.NextUntil(g.done, g.src)
			if !ok {
				g.interrupted = true
				return
			}
			g.produced++
			if !yield(v) {
				return
			}
		}
	}
}

// Run encodes every value of the sequence into w through an application
// level buffer. The buffer is flushed when the sequence ends, when ctx is
// cancelled and after the first write error, which ends the run.
func (g *Generator) Run(ctx context.Context, w io.Writer, enc encoding.Encoder) (Stats, error) {
	start := time.Now()
	out := bufio.NewWriterSize(w, stochastic.OutputBufferSize)
	done := ctx.Done()
	g.done = done
	defer func() { g.done = nil }()

	var (
		stats Stats
		buf   []byte
		err   error
	)
	for v := range g.Values() {
		select {
		case <-done:
			stats.Interrupted = true
		default:
		}
		if stats.Interrupted {
			break
		}
		buf = enc.Append(buf[:0], v)
		if _, err = out.Write(buf); err != nil {
			err = errors.Wrap(err, "cannot write sample")
			break
		}
		stats.Emitted++
		stats.Values.Update(v)
	}
	if g.interrupted {
		stats.Interrupted = true
	}
	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = errors.Wrap(flushErr, "cannot flush output")
	}

	stats.Discarded = g.pipeline.Discarded()
	stats.Elapsed = time.Since(start)
	return stats, err
}
