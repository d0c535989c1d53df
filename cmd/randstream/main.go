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

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/randstream/logger"
	"github.com/0xsoniclabs/randstream/utils"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "randstream",
		HelpName:  "randstream",
		Usage:     "emit a stream of samples from a probability distribution",
		Copyright: "(c) 2025 Sonic Labs",
		Flags: []cli.Flag{
			&utils.PrecisionFlag,
			&utils.CountFlag,
			&utils.RandomSeedFlag,
			&utils.BinaryFormatFlag,
			&utils.ExponentiateFlag,
			&utils.DiscardBelowFlag,
			&utils.DiscardAboveFlag,
			&utils.CumulativeFlag,
			&logger.LogLevelFlag,
		},
		Commands: []*cli.Command{
			&UniformCommand,
			&NormalCommand,
			&CauchyCommand,
			&TriangularCommand,
			&StudentTCommand,
			&StableCommand,
			&EmpiricalCommand,
			&CategoricalCommand,
			&FormatsCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
