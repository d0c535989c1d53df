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
	"strconv"
	"strings"

	"github.com/0xsoniclabs/randstream/stochastic/distribution"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

const positionalNote = "Arguments are positional; negative values are accepted as is."

var rightInclusiveFlag = cli.BoolFlag{
	Name:  "right-inclusive",
	Usage: "include the maximum as a possible value",
}

// UniformCommand samples the continuous uniform distribution.
var UniformCommand = cli.Command{
	Name:        "uniform",
	Usage:       "uniform distribution on [MIN, MAX)",
	ArgsUsage:   "MIN MAX",
	Flags:       []cli.Flag{&rightInclusiveFlag},
	Description: "Use -- before negative bounds, e.g. uniform -- -1 1.",
	Action: func(ctx *cli.Context) error {
		args, err := floatArgs(ctx, "MIN", "MAX")
		if err != nil {
			return err
		}
		d, err := distribution.NewUniform(args[0], args[1], ctx.Bool(rightInclusiveFlag.Name))
		if err != nil {
			return err
		}
		return generate(ctx, d)
	},
}

// NormalCommand samples the normal distribution.
var NormalCommand = cli.Command{
	Name:            "normal",
	Usage:           "normal distribution (log-normal with --exp)",
	ArgsUsage:       "MEAN STDDEV",
	Description:     positionalNote,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		args, err := floatArgs(ctx, "MEAN", "STDDEV")
		if err != nil {
			return err
		}
		d, err := distribution.NewNormal(args[0], args[1])
		if err != nil {
			return err
		}
		return generate(ctx, d)
	},
}

// CauchyCommand samples the Cauchy distribution.
var CauchyCommand = cli.Command{
	Name:            "cauchy",
	Usage:           "Cauchy distribution",
	ArgsUsage:       "MEDIAN SCALE",
	Description:     positionalNote,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		args, err := floatArgs(ctx, "MEDIAN", "SCALE")
		if err != nil {
			return err
		}
		d, err := distribution.NewCauchy(args[0], args[1])
		if err != nil {
			return err
		}
		return generate(ctx, d)
	},
}

// TriangularCommand samples the triangular distribution.
var TriangularCommand = cli.Command{
	Name:            "triangular",
	Usage:           "triangular distribution on [MIN, MAX] peaking at MODE",
	ArgsUsage:       "MIN MAX MODE",
	Description:     positionalNote,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		args, err := floatArgs(ctx, "MIN", "MAX", "MODE")
		if err != nil {
			return err
		}
		d, err := distribution.NewTriangular(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return generate(ctx, d)
	},
}

// StudentTCommand samples the Student's t distribution.
var StudentTCommand = cli.Command{
	Name:            "student-t",
	Usage:           "Student's t distribution",
	ArgsUsage:       "LOCATION SCALE FREEDOM",
	Description:     positionalNote,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		args, err := floatArgs(ctx, "LOCATION", "SCALE", "FREEDOM")
		if err != nil {
			return err
		}
		d, err := distribution.NewStudentT(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return generate(ctx, d)
	},
}

var (
	alphaFlag = cli.Float64Flag{
		Name:     "alpha",
		Usage:    "stability parameter in (0, 2]",
		Required: true,
	}
	betaFlag = cli.Float64Flag{
		Name:     "beta",
		Usage:    "skewness parameter in [-1, 1]",
		Required: true,
	}
	scaleFlag = cli.Float64Flag{
		Name:  "scale",
		Usage: "scale parameter",
		Value: 1,
	}
	locationFlag = cli.Float64Flag{
		Name:  "location",
		Usage: "location parameter",
	}
)

// StableCommand samples the general stable distribution.
var StableCommand = cli.Command{
	Name:        "stable",
	Usage:       "general stable distribution (Chambers-Mallows-Stuck)",
	Flags:       []cli.Flag{&alphaFlag, &betaFlag, &scaleFlag, &locationFlag},
	Description: "alpha = 2 is a normal, alpha = 1 with beta = 0 a Cauchy distribution.",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 0 {
			return errors.Newf("stable takes no positional arguments, got %q", ctx.Args().Slice())
		}
		d, err := distribution.NewStable(
			ctx.Float64(locationFlag.Name),
			ctx.Float64(scaleFlag.Name),
			ctx.Float64(alphaFlag.Name),
			ctx.Float64(betaFlag.Name),
		)
		if err != nil {
			return err
		}
		return generate(ctx, d)
	},
}

// EmpiricalCommand samples the distribution implied by a data set.
var EmpiricalCommand = cli.Command{
	Name:            "empirical",
	Usage:           "continuous distribution interpolating the given data points",
	ArgsUsage:       "X...",
	Description:     positionalNote,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		data, err := floatList(ctx, "X")
		if err != nil {
			return err
		}
		d, err := distribution.NewEmpirical(data)
		if err != nil {
			return err
		}
		return generate(ctx, d)
	},
}

// CategoricalCommand samples category indices by weight.
var CategoricalCommand = cli.Command{
	Name:            "categorical",
	Usage:           "zero-based category index drawn proportionally to the weights",
	ArgsUsage:       "WEIGHT...",
	Description:     positionalNote,
	SkipFlagParsing: true,
	Action: func(ctx *cli.Context) error {
		weights, err := floatList(ctx, "WEIGHT")
		if err != nil {
			return err
		}
		d, err := distribution.NewCategorical(weights)
		if err != nil {
			return err
		}
		return generate(ctx, d)
	},
}

// floatArgs parses exactly one positional argument per name.
func floatArgs(ctx *cli.Context, names ...string) ([]float64, error) {
	args := positionals(ctx)
	if len(args) != len(names) {
		return nil, errors.Newf("%s expects %d arguments (%s), got %d",
			ctx.Command.Name, len(names), strings.Join(names, " "), len(args))
	}
	values := make([]float64, len(names))
	for i, name := range names {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", name)
		}
		values[i] = v
	}
	return values, nil
}

// floatList parses one or more positional arguments.
func floatList(ctx *cli.Context, name string) ([]float64, error) {
	args := positionals(ctx)
	if len(args) == 0 {
		return nil, errors.Newf("%s expects at least one %s", ctx.Command.Name, name)
	}
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s #%d", name, i+1)
		}
		values[i] = v
	}
	return values, nil
}

// positionals returns the command arguments. Commands that skip flag parsing
// keep a leading "--" terminator, which is dropped here.
func positionals(ctx *cli.Context) []string {
	args := ctx.Args().Slice()
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}
