package hook

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/streamlog/core"
)

// Zerolog returns a hook that forwards lines to l. WithLevel is used so
// fatal lines do not exit the process.
func Zerolog(l zerolog.Logger) Hook {
	return func(line *core.Line) error {
		lvl, ok := zerologLevel(line.Level)
		if !ok {
			return nil
		}

		ev := l.WithLevel(lvl)
		if ev == nil {
			return nil
		}
		ev = ev.Time(zerolog.TimestampFieldName, line.Time)
		if line.HasSource() {
			ev = ev.Str("source_file", line.SourceFile).
				Uint32("source_line", line.SourceLine).
				Str("source_function", line.SourceFunction)
		}
		ev.Msg(line.Message)
		return nil
	}
}

func zerologLevel(l core.Level) (zerolog.Level, bool) {
	switch l {
	case core.DebugLevel:
		return zerolog.DebugLevel, true
	case core.InfoLevel:
		return zerolog.InfoLevel, true
	case core.WarnLevel:
		return zerolog.WarnLevel, true
	case core.ErrorLevel:
		return zerolog.ErrorLevel, true
	case core.FatalLevel:
		return zerolog.FatalLevel, true
	default:
		return zerolog.NoLevel, false
	}
}
