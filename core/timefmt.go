package core

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat selects how wall-clock timestamps in the login and logout
// markers are written.
type TimeFormat uint8

const (
	// TimeFormatUTC writes ISO-8601 in UTC with a Z suffix (default)
	TimeFormatUTC TimeFormat = iota
	// TimeFormatLocal writes ISO-8601 in the local zone with a numeric offset
	TimeFormatLocal
)

const (
	layoutUTC   = "2006-01-02T15:04:05Z"
	layoutLocal = "2006-01-02T15:04:05-07:00"

	// ZeroTimestamp is written when a timestamp cannot be formatted.
	ZeroTimestamp = "0000-00-00T00:00:00Z"
)

// String returns the string representation of the format
func (f TimeFormat) String() string {
	switch f {
	case TimeFormatUTC:
		return "utc"
	case TimeFormatLocal:
		return "local"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f TimeFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *TimeFormat) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "utc", "gmt", "":
		*f = TimeFormatUTC
	case "local":
		*f = TimeFormatLocal
	default:
		return fmt.Errorf("core: unknown time format %q", text)
	}
	return nil
}

// FormatTimestamp renders t as ISO-8601 according to f. A zero time
// renders as ZeroTimestamp.
func FormatTimestamp(t time.Time, f TimeFormat) string {
	if t.IsZero() {
		return ZeroTimestamp
	}
	switch f {
	case TimeFormatLocal:
		return t.Local().Format(layoutLocal)
	default:
		return t.UTC().Format(layoutUTC)
	}
}
