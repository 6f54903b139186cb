// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used across the user directory service.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info,
// Warn, Error, Fatal, ...) is available on *Logger directly. Handlers
// obtain a request-scoped logger via FromRequest; everything below the
// HTTP layer uses FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger that lets the
// application attach helper methods without shadowing the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label ("server", "client",
// "migrator") at the given level. Unknown level strings fall back to info.
//
// Every entry carries:
//   - a "role" field for filtering entries from different binaries;
//   - a "ts" timestamp;
//   - a "func" caller field holding the fully qualified function name.
//
// Output is JSON on os.Stdout.
func New(role, level string) *Logger {
	return newWriterLogger(os.Stdout, role, level)
}

// NewPretty is New with human-readable console output instead of JSON.
// Used by the command-line client, where the output is read by a person
// rather than shipped to a log collector.
func NewPretty(role, level string) *Logger {
	return newWriterLogger(zerolog.ConsoleWriter{Out: os.Stderr}, role, level)
}

func newWriterLogger(w io.Writer, role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithContext stores the logger in ctx so that FromContext recovers it
// further down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest extracts the request-scoped logger attached to the request
// context by the logging middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the logger stored in ctx. If none was attached,
// zerolog returns its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
