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
	"os"
	"os/signal"
	"syscall"

	"github.com/0xsoniclabs/randstream/config"
	"github.com/0xsoniclabs/randstream/logger"
	"github.com/0xsoniclabs/randstream/stochastic/distribution"
	"github.com/0xsoniclabs/randstream/stochastic/generator"
	"github.com/0xsoniclabs/randstream/stochastic/pipeline"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// generate streams samples of dist to the app's writer as configured by the global flags.
func generate(ctx *cli.Context, dist distribution.Distribution) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Randstream")

	enc, err := cfg.Encoder()
	if err != nil {
		return err
	}
	p, err := pipeline.New(dist, cfg.PipelineConfig())
	if err != nil {
		return err
	}
	seed, err := cfg.Seed()
	if err != nil {
		return err
	}
	log.Debugf("Sampling %v with seed %d", ctx.Command.Name, seed)

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// a second signal gets the default action
		<-runCtx.Done()
		stop()
	}()

	stats, err := generator.New(p, distribution.NewSource(seed), cfg.Count).Run(runCtx, ctx.App.Writer, enc)
	if err != nil {
		return err
	}

	hours, minutes, seconds := logger.ParseTime(stats.Elapsed)
	printer := message.NewPrinter(language.English)
	summary := printer.Sprintf("Emitted %d samples (%d discarded) in %02d:%02d:%02d", stats.Emitted, stats.Discarded, hours, minutes, seconds)
	if stats.Interrupted {
		log.Notice(summary + "; interrupted")
	} else {
		log.Info(summary)
	}
	log.Debugf("Stream statistics: %v", stats.Values.String())
	return nil
}
