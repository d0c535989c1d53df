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

// Package distribution provides the sampling contract shared by all
// distribution families together with its implementations.
package distribution

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

//go:generate mockgen -source distribution.go -destination distribution_mock.go -package distribution

// Distribution draws one real-valued sample from a fixed parameterization of a
// distribution family. Implementations are immutable; the only state advanced
// by Sample is the given source.
type Distribution interface {
	Sample(src rand.Source) float64
}

// ErrInvalidParameter is reported by all constructors when a parameter is out of range.
var ErrInvalidParameter = errors.New("invalid distribution parameter")

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// NewSource returns a PCG source seeded with the given value.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

// EntropySeed reads a seed from the operating system's entropy pool.
func EntropySeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "cannot read entropy for seed")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
