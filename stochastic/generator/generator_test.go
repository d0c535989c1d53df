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

package generator

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/0xsoniclabs/randstream/stochastic/distribution"
	"github.com/0xsoniclabs/randstream/stochastic/encoding"
	"github.com/0xsoniclabs/randstream/stochastic/pipeline"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newGenerator(t *testing.T, seed uint64, count uint64, cfg pipeline.Config) *Generator {
	t.Helper()
	dist, err := distribution.NewUniform(-1, 1, false)
	require.NoError(t, err)
	p, err := pipeline.New(dist, cfg)
	require.NoError(t, err)
	return New(p, distribution.NewSource(seed), count)
}

func TestGenerator_ValuesIsBounded(t *testing.T) {
	g := newGenerator(t, 1, 25, pipeline.Config{})
	n := 0
	for range g.Values() {
		n++
	}
	assert.Equal(t, 25, n)

	// the sequence is exhausted and does not restart
	for range g.Values() {
		t.Fatal("exhausted sequence yielded a value")
	}
}

func TestGenerator_ValuesIsUnboundedForZeroCount(t *testing.T) {
	g := newGenerator(t, 1, 0, pipeline.Config{})
	n := 0
	for range g.Values() {
		n++
		if n == 10_000 {
			break
		}
	}
	assert.Equal(t, 10_000, n)
}

func TestGenerator_RunWritesEncodedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	dist := distribution.NewMockDistribution(ctrl)
	enc := encoding.NewMockEncoder(ctrl)
	gomock.InOrder(
		dist.EXPECT().Sample(gomock.Any()).Return(1.0),
		enc.EXPECT().Append(gomock.Any(), 1.0).DoAndReturn(func(dst []byte, v float64) []byte { return append(dst, 'a') }),
		dist.EXPECT().Sample(gomock.Any()).Return(2.0),
		enc.EXPECT().Append(gomock.Any(), 2.0).DoAndReturn(func(dst []byte, v float64) []byte { return append(dst, 'b') }),
	)
	p, err := pipeline.New(dist, pipeline.Config{})
	require.NoError(t, err)

	var out bytes.Buffer
	stats, err := New(p, distribution.NewSource(1), 2).Run(context.Background(), &out, enc)
	require.NoError(t, err)
	assert.Equal(t, "ab", out.String())
	assert.Equal(t, uint64(2), stats.Emitted)
	assert.False(t, stats.Interrupted)
}

func TestGenerator_RunTextOutput(t *testing.T) {
	var out bytes.Buffer
	stats, err := newGenerator(t, 3, 1000, pipeline.Config{}).Run(context.Background(), &out, encoding.Text{Precision: 4})
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), stats.Emitted)
	assert.Equal(t, uint64(1000), stats.Values.GetCount())
	assert.InDelta(t, 0.0, stats.Values.GetMean(), 0.1)
	assert.GreaterOrEqual(t, stats.Values.GetMin(), -1.0)
	assert.Less(t, stats.Values.GetMax(), 1.0)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 1000)
	for _, line := range lines {
		dot := strings.IndexByte(line, '.')
		require.Equal(t, 4, len(line)-dot-1, line)
		x, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err)
		require.GreaterOrEqual(t, x, -1.0)
		require.LessOrEqual(t, x, 1.0)
	}
}

func TestGenerator_RunBinaryOutput(t *testing.T) {
	format, err := encoding.ParseFormat("f64le")
	require.NoError(t, err)
	var out bytes.Buffer
	_, err = newGenerator(t, 4, 100, pipeline.Config{}).Run(context.Background(), &out, format)
	require.NoError(t, err)
	require.Equal(t, 800, out.Len())

	// the same values decode from the binary stream as the sequence yields
	want := newGenerator(t, 4, 100, pipeline.Config{})
	i := 0
	for v := range want.Values() {
		got := math.Float64frombits(binary.LittleEndian.Uint64(out.Bytes()[8*i:]))
		require.Equal(t, v, got)
		i++
	}
}

func TestGenerator_RunIsDeterministic(t *testing.T) {
	cfg := pipeline.Config{Cumulative: true, Exponentiate: true}
	var a, b bytes.Buffer
	_, err := newGenerator(t, 42, 5000, cfg).Run(context.Background(), &a, encoding.Text{Precision: 10})
	require.NoError(t, err)
	_, err = newGenerator(t, 42, 5000, cfg).Run(context.Background(), &b, encoding.Text{Precision: 10})
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestGenerator_RunStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	stats, err := newGenerator(t, 5, 0, pipeline.Config{}).Run(ctx, &out, encoding.Text{Precision: 2})
	require.NoError(t, err)
	assert.True(t, stats.Interrupted)
	assert.Zero(t, stats.Emitted)
	assert.Zero(t, out.Len())
}

func TestGenerator_RunStopsWhenBoundsAreNeverReached(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	var out bytes.Buffer
	g := newGenerator(t, 5, 0, pipeline.Config{DiscardBelow: lo.ToPtr(10.0)})

	stats, err := g.Run(ctx, &out, encoding.Text{Precision: 2})
	require.NoError(t, err)
	assert.True(t, stats.Interrupted)
	assert.Zero(t, stats.Emitted)
	assert.Positive(t, stats.Discarded)
	assert.Zero(t, out.Len())
}

// failingWriter accepts limit bytes and then fails.
type failingWriter struct {
	limit int
}

var errSinkClosed = errors.New("sink closed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errSinkClosed
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestGenerator_RunFailsOnWriteError(t *testing.T) {
	// unbounded: the error surfaces once the buffer spills
	stats, err := newGenerator(t, 6, 0, pipeline.Config{}).Run(context.Background(), &failingWriter{limit: 100}, encoding.Text{Precision: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errSinkClosed))
	assert.NotZero(t, stats.Emitted)

	// bounded: the error surfaces on the final flush
	_, err = newGenerator(t, 6, 10, pipeline.Config{}).Run(context.Background(), &failingWriter{}, encoding.Text{Precision: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errSinkClosed))
}

func TestGenerator_RunReportsDiscards(t *testing.T) {
	above := 0.0
	stats, err := newGenerator(t, 7, 1000, pipeline.Config{DiscardAbove: &above}).Run(context.Background(), io.Discard, encoding.Text{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), stats.Emitted)
	assert.NotZero(t, stats.Discarded)
}
