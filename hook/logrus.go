package hook

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/streamlog/core"
)

// Logrus returns a hook that forwards lines to l. Entry.Log is used so
// fatal lines do not call l.ExitFunc.
func Logrus(l *logrus.Logger) Hook {
	return func(line *core.Line) error {
		lvl, ok := logrusLevel(line.Level)
		if !ok || !l.IsLevelEnabled(lvl) {
			return nil
		}

		entry := logrus.NewEntry(l).WithTime(line.Time)
		if line.HasSource() {
			entry = entry.WithFields(logrus.Fields{
				"source_file":     line.SourceFile,
				"source_line":     line.SourceLine,
				"source_function": line.SourceFunction,
			})
		}
		entry.Log(lvl, line.Message)
		return nil
	}
}

func logrusLevel(l core.Level) (logrus.Level, bool) {
	switch l {
	case core.DebugLevel:
		return logrus.DebugLevel, true
	case core.InfoLevel:
		return logrus.InfoLevel, true
	case core.WarnLevel:
		return logrus.WarnLevel, true
	case core.ErrorLevel:
		return logrus.ErrorLevel, true
	case core.FatalLevel:
		return logrus.FatalLevel, true
	default:
		return logrus.PanicLevel, false
	}
}
