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

package logger

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const (
	defaultLogFormat = "%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset}: %{message}"
	plainLogFormat   = "%{time:15:04:05.000} %{module} %{level:.4s}: %{message}"
)

// LogLevelFlag defines the level of logging of the app.
var LogLevelFlag = cli.StringFlag{
	Name:  "log",
	Usage: "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
	Value: "info",
}

// Logger is the logging interface used across randstream. It is satisfied by *logging.Logger.
type Logger interface {
	Critical(args ...interface{})
	Criticalf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// NewLogger creates a logger for the given module writing to stderr.
// Unknown levels fall back to INFO.
func NewLogger(level string, module string) Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat(isTerminal(os.Stderr))))
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)

	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)
	return log
}

// logFormat returns the colored format for terminals and a plain one otherwise.
func logFormat(terminal bool) string {
	if terminal {
		return defaultLogFormat
	}
	return plainLogFormat
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseTime splits a duration into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	return hours, minutes, seconds
}
