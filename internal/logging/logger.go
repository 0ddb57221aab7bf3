// Package logging exposes the process-wide zerolog logger used by the
// command-line tooling. Library packages never log; they surface typed
// errors implementing zerolog.LogObjectMarshaler and leave emitting them
// to callers holding this logger.
package logging

import (
	"github.com/rs/zerolog"
)

// Logger is the global logger. It discards everything until
// SetGlobalLogger installs a configured one.
var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

// SetGlobalLogger replaces the global logger and makes it the default
// context logger.
func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

// Err starts an error-level event carrying the given error.
func Err(err error) *zerolog.Event { return Logger.Err(err) }

func Debug() *zerolog.Event { return Logger.Debug() }

func Info() *zerolog.Event { return Logger.Info() }

func Warn() *zerolog.Event { return Logger.Warn() }

func Error() *zerolog.Event { return Logger.Error() }
