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

package pipeline

import (
	"math"
	"testing"

	"github.com/0xsoniclabs/randstream/stochastic"
	"github.com/0xsoniclabs/randstream/stochastic/distribution"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// expectSamples makes the mock return the given values in order.
func expectSamples(dist *distribution.MockDistribution, values ...float64) {
	calls := make([]any, len(values))
	for i, v := range values {
		calls[i] = dist.EXPECT().Sample(gomock.Any()).Return(v)
	}
	gomock.InOrder(calls...)
}

func TestPipeline_New_RejectsInvalidBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	dist := distribution.NewMockDistribution(ctrl)

	_, err := New(dist, Config{DiscardBelow: lo.ToPtr(5.0), DiscardAbove: lo.ToPtr(1.0)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyAcceptance))

	_, err = New(dist, Config{DiscardAbove: lo.ToPtr(math.NaN())})
	assert.Error(t, err)

	_, err = New(nil, Config{})
	assert.Error(t, err)

	_, err = New(dist, Config{DiscardBelow: lo.ToPtr(1.0), DiscardAbove: lo.ToPtr(1.0)})
	assert.NoError(t, err)
}

func TestPipeline_PassesSamplesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	dist := distribution.NewMockDistribution(ctrl)
	expectSamples(dist, 1.5, -2, 0)

	p, err := New(dist, Config{})
	require.NoError(t, err)
	src := distribution.NewSource(1)
	assert.Equal(t, 1.5, p.Next(src))
	assert.Equal(t, -2.0, p.Next(src))
	assert.Equal(t, 0.0, p.Next(src))
	assert.Zero(t, p.Accumulator())
	assert.Zero(t, p.Discarded())
}

func TestPipeline_Exponentiate(t *testing.T) {
	ctrl := gomock.NewController(t)
	dist := distribution.NewMockDistribution(ctrl)
	expectSamples(dist, 0, 1, -1)

	p, err := New(dist, Config{Exponentiate: true})
	require.NoError(t, err)
	src := distribution.NewSource(1)
	assert.Equal(t, 1.0, p.Next(src))
	assert.Equal(t, math.E, p.Next(src))
	assert.InDelta(t, 1/math.E, p.Next(src), 1e-15)
}

func TestPipeline_DiscardsAreRedrawnAndNotEmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	dist := distribution.NewMockDistribution(ctrl)
	expectSamples(dist, -1, 3, 11, 10, 0, 12, -0.5, 7)

	p, err := New(dist, Config{DiscardBelow: lo.ToPtr(0.0), DiscardAbove: lo.ToPtr(10.0)})
	require.NoError(t, err)
	src := distribution.NewSource(1)
	assert.Equal(t, 3.0, p.Next(src))
	assert.Equal(t, 10.0, p.Next(src))
	assert.Equal(t, 0.0, p.Next(src))
	assert.Equal(t, 7.0, p.Next(src))
	assert.Equal(t, uint64(4), p.Discarded())
}

func TestPipeline_NextUntil_StopsRedrawingWhenDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	dist := distribution.NewMockDistribution(ctrl)
	dist.EXPECT().Sample(gomock.Any()).Return(0.0).Times(stochastic.DiscardCheckInterval)

	p, err := New(dist, Config{DiscardBelow: lo.ToPtr(10.0), Cumulative: true})
	require.NoError(t, err)
	done := make(chan struct{})
	close(done)

	_, ok := p.NextUntil(done, distribution.NewSource(1))
	assert.False(t, ok)
	assert.Equal(t, uint64(stochastic.DiscardCheckInterval), p.Discarded())
	assert.Zero(t, p.Accumulator())
}

func TestPipeline_NextUntil_EmitsAcceptedValueWhenDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	dist := distribution.NewMockDistribution(ctrl)
	expectSamples(dist, -1, 2)

	p, err := New(dist, Config{DiscardBelow: lo.ToPtr(0.0)})
	require.NoError(t, err)
	done := make(chan struct{})
	close(done)

	v, ok := p.NextUntil(done, distribution.NewSource(1))
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestPipeline_BoundsApplyAfterExponentiation(t *testing.T) {
	ctrl := gomock.NewController(t)
	dist := distribution.NewMockDistribution(ctrl)
	// e^-1 < 0.5 is discarded, e^0 = 1 is kept
	expectSamples(dist, -1, 0)

	p, err := New(dist, Config{Exponentiate: true, DiscardBelow: lo.ToPtr(0.5)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Next(distribution.NewSource(1)))
	assert.Equal(t, uint64(1), p.Discarded())
}

func TestPipeline_CumulativeEmitsRunningSum(t *testing.T) {
	ctrl := gomock.NewController(t)
	dist := distribution.NewMockDistribution(ctrl)
	expectSamples(dist, 1, 20, 2, -4, 0.5)

	p, err := New(dist, Config{Cumulative: true, DiscardAbove: lo.ToPtr(10.0)})
	require.NoError(t, err)
	src := distribution.NewSource(1)
	assert.Equal(t, 1.0, p.Next(src))
	// 20 is discarded and does not enter the sum
	assert.Equal(t, 3.0, p.Next(src))
	assert.Equal(t, -1.0, p.Next(src))
	assert.Equal(t, -0.5, p.Next(src))
	assert.Equal(t, -0.5, p.Accumulator())
}

func TestPipeline_NormalWithinBounds(t *testing.T) {
	dist, err := distribution.NewNormal(5, 1)
	require.NoError(t, err)
	p, err := New(dist, Config{DiscardBelow: lo.ToPtr(0.0), DiscardAbove: lo.ToPtr(10.0)})
	require.NoError(t, err)
	src := distribution.NewSource(7)
	for range 100_000 {
		x := p.Next(src)
		require.GreaterOrEqual(t, x, 0.0)
		require.LessOrEqual(t, x, 10.0)
	}
}

func TestPipeline_CumulativeMatchesRunningSumOfFilteredSamples(t *testing.T) {
	dist, err := distribution.NewNormal(0, 1)
	require.NoError(t, err)
	cfg := Config{Exponentiate: true, DiscardAbove: lo.ToPtr(3.0)}

	plain, err := New(dist, cfg)
	require.NoError(t, err)
	cfg.Cumulative = true
	walk, err := New(dist, cfg)
	require.NoError(t, err)

	plainSrc, walkSrc := distribution.NewSource(21), distribution.NewSource(21)
	sum := 0.0
	for k := range 1000 {
		sum += plain.Next(plainSrc)
		require.Equal(t, sum, walk.Next(walkSrc), "value %d", k)
	}
}
