package logger

import (
	"github.com/philipp01105/streamlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoneLevel  = core.NoneLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
