// Package log provides context-aware diagnostics for cck.
//
// Everything goes to stderr. In hook mode stdout belongs to the host
// protocol, so nothing in this package may ever write there.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// DebugEnv enables debug output when set to "1", even without --verbose.
// Hooks have no flags of their own, so this is the only way to trace them.
const DebugEnv = "CCK_DEBUG"

type ctxKey struct{}

// Logger writes diagnostics. Quiet suppresses everything except warnings.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// DebugFromEnv reports whether DebugEnv is set.
func DebugFromEnv() bool {
	return os.Getenv(DebugEnv) == "1"
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

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Warnf writes a warning line. Warnings are shown even when quiet.
func (l *Logger) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.out, "warning: "+strings.TrimRight(msg, "\n"))
}

// Debug logs a message with key/value pairs when verbose.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString("debug: ")
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Step logs the start of an operation and returns a function that logs its
// duration. Both are no-ops unless verbose.
func (l *Logger) Step(name string) func() {
	if !l.IsVerbose() {
		return func() {}
	}
	start := time.Now()
	fmt.Fprintf(l.out, "> %s\n", name)
	return func() {
		fmt.Fprintf(l.out, "< %s (%s)\n", name, time.Since(start).Round(time.Microsecond))
	}
}

// IsVerbose reports whether debug output is enabled. Quiet wins over verbose.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
