package log

import (
	"fmt"
	"io"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr). A non-empty
// Prefix is prepended to every line, e.g. "resources: loaded 7801 words".
type Logger struct {
	Enabled bool
	Prefix  string
	W       io.Writer
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false or the logger is nil.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled {
		return
	}
	if l.Prefix != "" {
		format = l.Prefix + ": " + format
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}

// WithPrefix returns a copy of the logger scoped to a component prefix.
func (l *Logger) WithPrefix(prefix string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{Enabled: l.Enabled, Prefix: prefix, W: l.W}
}
