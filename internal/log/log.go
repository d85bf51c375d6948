// Package log provides context-aware verbose logging for the strfmt command.
package log

import (
	"context"
	"io"
	"strings"

	"github.com/bjaus/strfmt"
)

type ctxKey struct{}

// Logger writes diagnostics when verbose mode is enabled.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a new logger.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output in verbose mode.
func (l *Logger) Printf(format string, args ...any) {
	if !l.verbose {
		return
	}
	_ = strfmt.Fprintf(l.out, format, args...)
}

// Debug writes msg followed by key=value pairs in verbose mode.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.verbose {
		return
	}
	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		_ = strfmt.Fprintf(&sb, " %s=%s", keyvals[i], keyvals[i+1])
	}
	sb.WriteByte('\n')
	_, _ = io.WriteString(l.out, sb.String())
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}
