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
	"github.com/0xsoniclabs/randstream/stochastic"
	"github.com/0xsoniclabs/randstream/stochastic/distribution"
	"github.com/0xsoniclabs/randstream/stochastic/encoding"
	"github.com/0xsoniclabs/randstream/stochastic/pipeline"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// Config summarizes the available parameters of a run.
type Config struct {
	AppName     string
	CommandName string

	BinaryFormat string   // name of the binary format; empty for text output
	Count        uint64   // number of samples; zero for an unbounded stream
	Cumulative   bool     // emit the running sum
	DiscardAbove *float64 // upper discard bound
	DiscardBelow *float64 // lower discard bound
	Exponentiate bool     // emit e^x
	LogLevel     string   // level of the logging of the app action
	Precision    int      // digits after the decimal point in text mode
	RandomSeed   *uint64  // nil for an entropy seed
}

// NewConfig creates and validates the configuration of the current command.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Precision < 0 || cfg.Precision > stochastic.MaxPrecision {
		return errors.Newf("precision (%d) must lie in [0, %d]", cfg.Precision, stochastic.MaxPrecision)
	}
	if cfg.BinaryFormat != "" {
		if _, err := encoding.ParseFormat(cfg.BinaryFormat); err != nil {
			return err
		}
	}
	return nil
}

// Seed returns the configured seed or draws one from the entropy pool.
func (cfg *Config) Seed() (uint64, error) {
	if cfg.RandomSeed != nil {
		return *cfg.RandomSeed, nil
	}
	return distribution.EntropySeed()
}

// Encoder returns the binary format if one is configured and text otherwise.
func (cfg *Config) Encoder() (encoding.Encoder, error) {
	if cfg.BinaryFormat == "" {
		return encoding.Text{Precision: cfg.Precision}, nil
	}
	return encoding.ParseFormat(cfg.BinaryFormat)
}

// PipelineConfig returns the transformations applied to each draw.
func (cfg *Config) PipelineConfig() pipeline.Config {
	return pipeline.Config{
		Exponentiate: cfg.Exponentiate,
		DiscardBelow: cfg.DiscardBelow,
		DiscardAbove: cfg.DiscardAbove,
		Cumulative:   cfg.Cumulative,
	}
}
