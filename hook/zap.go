package hook

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/streamlog/core"
)

// Zap returns a hook that forwards lines to a zapcore.Core. Fatal lines
// are written at zap's fatal level but never trigger zap's exit; the
// engine's fatal policy stays in charge. None-level lines are skipped.
// A failing sink is reported as the hook's error.
func Zap(c zapcore.Core) Hook {
	return func(line *core.Line) error {
		lvl, ok := zapLevel(line.Level)
		if !ok {
			return nil
		}

		ent := zapcore.Entry{
			Level:   lvl,
			Time:    line.Time,
			Message: line.Message,
		}
		if line.HasSource() {
			ent.Caller = zapcore.EntryCaller{
				Defined:  true,
				File:     line.SourceFile,
				Line:     int(line.SourceLine),
				Function: line.SourceFunction,
			}
		}

		if !c.Enabled(lvl) {
			return nil
		}
		return c.Write(ent, nil)
	}
}

// ZapLogger is Zap for a *zap.Logger.
func ZapLogger(l *zap.Logger) Hook {
	return Zap(l.Core())
}

func zapLevel(l core.Level) (zapcore.Level, bool) {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel, true
	case core.InfoLevel:
		return zapcore.InfoLevel, true
	case core.WarnLevel:
		return zapcore.WarnLevel, true
	case core.ErrorLevel:
		return zapcore.ErrorLevel, true
	case core.FatalLevel:
		return zapcore.FatalLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}
