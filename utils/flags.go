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

package utils

import (
	"github.com/0xsoniclabs/randstream/stochastic"
	"github.com/urfave/cli/v2"
)

// Stream flags shared by all distribution commands.
var (
	PrecisionFlag = cli.IntFlag{
		Name:    "precision",
		Aliases: []string{"p"},
		Usage:   "number of digits after the decimal point in text output",
		Value:   stochastic.DefaultPrecision,
	}
	CountFlag = cli.Uint64Flag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "number of samples to emit (0: unbounded)",
	}
	RandomSeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the random generator (default: drawn from the OS entropy pool)",
	}
	BinaryFormatFlag = cli.StringFlag{
		Name:    "binary",
		Aliases: []string{"b"},
		Usage:   "emit fixed-width binary values in the given format instead of text (see the formats command)",
	}
	ExponentiateFlag = cli.BoolFlag{
		Name:  "exp",
		Usage: "emit e^x instead of x, e.g. turning normal into log-normal samples",
	}
	DiscardBelowFlag = cli.Float64Flag{
		Name:  "discard-below",
		Usage: "silently redraw samples below this value",
	}
	DiscardAboveFlag = cli.Float64Flag{
		Name:  "discard-above",
		Usage: "silently redraw samples above this value",
	}
	CumulativeFlag = cli.BoolFlag{
		Name:    "cumulative",
		Aliases: []string{"walk"},
		Usage:   "emit the running sum of the samples (random walk)",
	}
)
