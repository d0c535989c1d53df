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
	"github.com/0xsoniclabs/randstream/stochastic/encoding"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// FormatsCommand prints the table of binary formats.
var FormatsCommand = cli.Command{
	Name:   "formats",
	Usage:  "list the binary output formats",
	Action: printFormats,
}

func printFormats(ctx *cli.Context) error {
	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Format", "Bytes", "Kind", "Byte order"})
	for _, f := range encoding.Formats {
		t.AppendRow(table.Row{f.Name, f.Width, f.Kind, f.Endianness()})
	}
	t.Render()
	return nil
}
