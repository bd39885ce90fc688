// Package telemetry provides the logging handle shared by the search,
// traverse and tree operations. The handle is constructed explicitly by
// the host (typically once at process start) and passed down; there is
// no package-level logger.
package telemetry

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field is a key/value pair attached to a log line for context.
type Field struct {
	Key   string
	Value string
}

// F builds a Field.
func F(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Logger writes component-tagged log lines to a single writer. A nil
// *Logger is valid and discards everything, so callers never need to
// guard their log calls.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	min Level
}

// New creates a logger writing to w, dropping lines below min.
func New(w io.Writer, min Level) *Logger {
	return &Logger{w: w, min: min}
}

// Log writes one line: timestamp, level, component, message and any
// context fields.
func (l *Logger) Log(level Level, component, message string, fields ...Field) {
	if l == nil || level < l.min {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, " [%s:%s] %s", level, component, message)
	if len(fields) > 0 {
		b.WriteString(" [")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%s", f.Key, f.Value)
		}
		b.WriteString("]")
	}
	b.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.w, b.String())
}

// Debug logs at debug level.
func (l *Logger) Debug(component, message string, fields ...Field) {
	l.Log(LevelDebug, component, message, fields...)
}

// Info logs at info level.
func (l *Logger) Info(component, message string, fields ...Field) {
	l.Log(LevelInfo, component, message, fields...)
}

// Warn logs at warn level.
func (l *Logger) Warn(component, message string, fields ...Field) {
	l.Log(LevelWarn, component, message, fields...)
}

// Error logs at error level.
func (l *Logger) Error(component, message string, fields ...Field) {
	l.Log(LevelError, component, message, fields...)
}
