// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📣 Sink receives the events of a run. Calls are fire-and-forget.
type Sink interface {
	// Info reports a successful step
	Info(msg string)
	// Error reports a single failure without ending the run
	Error(err error)
	// Fail records the terminal failure of the run
	Fail(err error)
}

// 🖨️ Format selects how events are printed to the console
type Format string

const (
	// FormatConsole prints colored, human friendly lines
	FormatConsole Format = "console"
	// FormatActions prints GitHub Actions workflow commands
	FormatActions Format = "actions"
)

// Formats lists every supported format
var Formats = []Format{FormatConsole, FormatActions}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown format %q, options: %s, %s", s, FormatConsole, FormatActions)
}

// 🎯 Logger is a Sink that prints to a console writer and records to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	format  Format

	mu      sync.Mutex
	failure error
	errors  int
}

var _ Sink = (*Logger)(nil)

// 🏭 New creates a new logger
func New(console io.Writer, format Format, zlog zerolog.Logger) *Logger {
	if format == "" {
		format = FormatConsole
	}
	return &Logger{
		zlog:    zlog,
		console: console,
		format:  format,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// Format returns the console format in use
func (l *Logger) Format() Format {
	return l.format
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.format {
	case FormatActions:
		fmt.Fprintln(l.console, msg)
	default:
		fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), msg)
	}
	l.zlog.Info().Msg(msg)
}

// 📝 Error logs a failure
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.errors++
	l.printError(err)
	l.zlog.Error().Err(err).Msg("operation failed")
}

// 💥 Fail logs err and marks the run as failed. Only the first failure is kept.
func (l *Logger) Fail(err error) {
	if err == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failure == nil {
		l.failure = err
	}
	l.printError(err)
	l.zlog.Error().Err(err).Msg("run failed")
}

// Failed returns the terminal failure, or nil if the run has not failed
func (l *Logger) Failed() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failure
}

// ErrorCount returns how many errors were reported with Error
func (l *Logger) ErrorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors
}

// printError must be called with l.mu held
func (l *Logger) printError(err error) {
	switch l.format {
	case FormatActions:
		fmt.Fprintf(l.console, "::error::%s\n", escapeData(err.Error()))
	default:
		fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(err.Error()))
	}
}

// 📝 Header logs a header. Workflow command output has no headers.
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.format == FormatConsole {
		name := color.New(color.Bold, color.FgCyan).Sprint("overwrite")
		fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	}
	l.zlog.Debug().Msg(msg)
}

// escapeData escapes a workflow command message the way @actions/core does
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
