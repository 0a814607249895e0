package log

import (
	"time"

	logadapter "github.com/bft-labs/gridsim/internal/adapters/log"
	"github.com/bft-labs/gridsim/internal/ports"
	"github.com/rs/zerolog"
)

// Logger provides structured logging capabilities.
type Logger = ports.Logger

// Field is a key-value pair attached to a log entry.
type Field = ports.Field

// NewZerologLogger wraps a zerolog logger.
func NewZerologLogger(l zerolog.Logger) Logger {
	return logadapter.NewZerologAdapter(l)
}

// NewNoopLogger returns a logger that discards every entry.
func NewNoopLogger() Logger {
	return logadapter.NewNoopLogger()
}

// String creates a string field.
func String(key, value string) Field { return ports.String(key, value) }

// Int creates an int field.
func Int(key string, value int) Field { return ports.Int(key, value) }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return ports.Float64(key, value) }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return ports.Bool(key, value) }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field { return ports.Duration(key, value) }

// Err creates an error field with key "error".
func Err(err error) Field { return ports.Err(err) }

// Any creates a field with any value.
func Any(key string, value interface{}) Field { return ports.Any(key, value) }
