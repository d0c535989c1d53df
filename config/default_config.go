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

package config

import (
	"github.com/0xsoniclabs/randstream/logger"
	"github.com/0xsoniclabs/randstream/utils"
	"github.com/urfave/cli/v2"
)

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		BinaryFormat: getFlagValue(ctx, utils.BinaryFormatFlag).(string),
		Count:        getFlagValue(ctx, utils.CountFlag).(uint64),
		Cumulative:   getFlagValue(ctx, utils.CumulativeFlag).(bool),
		DiscardAbove: getOptionalFloat(ctx, utils.DiscardAboveFlag),
		DiscardBelow: getOptionalFloat(ctx, utils.DiscardBelowFlag),
		Exponentiate: getFlagValue(ctx, utils.ExponentiateFlag).(bool),
		LogLevel:     getFlagValue(ctx, logger.LogLevelFlag).(string),
		Precision:    getFlagValue(ctx, utils.PrecisionFlag).(int),
		RandomSeed:   getOptionalUint64(ctx, utils.RandomSeedFlag),
	}

	return cfg
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	switch f := flag.(type) {
	case cli.IntFlag:
		if ctx.IsSet(f.Name) {
			return ctx.Int(f.Name)
		}
		return f.Value
	case cli.Uint64Flag:
		if ctx.IsSet(f.Name) {
			return ctx.Uint64(f.Name)
		}
		return f.Value
	case cli.Float64Flag:
		if ctx.IsSet(f.Name) {
			return ctx.Float64(f.Name)
		}
		return f.Value
	case cli.StringFlag:
		if ctx.IsSet(f.Name) {
			return ctx.String(f.Name)
		}
		return f.Value
	case cli.BoolFlag:
		if ctx.IsSet(f.Name) {
			return ctx.Bool(f.Name)
		}
		return f.Value
	}
	return nil
}

// getOptionalFloat returns nil unless the user specified the flag.
func getOptionalFloat(ctx *cli.Context, flag cli.Float64Flag) *float64 {
	if !ctx.IsSet(flag.Name) {
		return nil
	}
	v := ctx.Float64(flag.Name)
	return &v
}

// getOptionalUint64 returns nil unless the user specified the flag.
func getOptionalUint64(ctx *cli.Context, flag cli.Uint64Flag) *uint64 {
	if !ctx.IsSet(flag.Name) {
		return nil
	}
	v := ctx.Uint64(flag.Name)
	return &v
}
