package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is the logic defect raised when a Level outside the
// declared range reaches a rendering function.
var ErrUnknownLevel = errors.New("core: unknown level value")

// Level represents the severity of a log line
type Level uint8

const (
	// NoneLevel sorts below every real severity
	NoneLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel triggers the engine's fatal policy
	FatalLevel
)

var levelNames = [...]string{
	NoneLevel:  "none",
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
}

// Rank returns the numeric rank used for ordering.
func (l Level) Rank() int {
	return int(l)
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return int(l) < len(levelNames)
}

// String returns the level name. It panics for out-of-range values,
// which can only be produced by an invalid conversion.
func (l Level) String() string {
	if !l.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(l)))
	}
	return levelNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts "warning" as an alias of warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return NoneLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return NoneLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
