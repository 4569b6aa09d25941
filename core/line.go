package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// TimeAppearance selects how the time column of a rendered line looks.
type TimeAppearance uint8

const (
	// SecondsFromStart renders fractional seconds elapsed since the
	// engine started (default)
	SecondsFromStart TimeAppearance = iota
	// SecondsFromEpoch renders whole Unix seconds of the line's wall time
	SecondsFromEpoch
)

// String returns the string representation of the appearance
func (a TimeAppearance) String() string {
	switch a {
	case SecondsFromStart:
		return "seconds_from_start"
	case SecondsFromEpoch:
		return "seconds_from_epoch"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a TimeAppearance) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *TimeAppearance) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "seconds_from_start", "start", "":
		*a = SecondsFromStart
	case "seconds_from_epoch", "epoch":
		*a = SecondsFromEpoch
	default:
		return fmt.Errorf("core: unknown time appearance %q", text)
	}
	return nil
}

// Line is one committed log event. The engine builds it at commit time
// and hands it to each hook in turn; hooks other than annotation hooks
// should treat it as read-only.
type Line struct {
	Time    time.Time
	Level   Level
	Message string

	SourceFile     string
	SourceLine     uint32
	SourceFunction string

	// Start and Appearance are copied from the engine when the line is
	// committed.
	Start      time.Time
	Appearance TimeAppearance
}

// HasSource reports whether any source location field is set
func (l *Line) HasSource() bool {
	return l.SourceFile != "" || l.SourceLine != 0 || l.SourceFunction != ""
}

// Elapsed returns the time between engine start and the line.
func (l *Line) Elapsed() time.Duration {
	return l.Time.Sub(l.Start)
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
