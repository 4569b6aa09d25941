package logger

import (
	"os"
	"sync"
	"sync/atomic"
)

var (
	defaultOnce   sync.Once
	defaultLogger atomic.Pointer[Logger]
)

// Instance returns the process-wide Logger, building it on first use
// from DefaultSettings, the file named by STREAMLOG_CONFIG and the
// STREAMLOG_* environment. Like every entry point it returns the
// pending deferred error, if any, instead of the logger.
func Instance() (*Logger, error) {
	defaultOnce.Do(func() {
		defaultLogger.Store(buildDefault())
	})
	l := defaultLogger.Load()

	l.mu.Lock()
	err := l.enter()
	l.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return l, nil
}

func buildDefault() *Logger {
	settings := DefaultSettings()
	var problems []error
	if path := os.Getenv("STREAMLOG_CONFIG"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			problems = append(problems, err)
		} else {
			settings = loaded
		}
	}
	FromEnv(&settings)

	b := NewBuilder()
	if err := settings.Apply(b); err != nil {
		problems = append(problems, err)
	}
	l := b.Build()
	for _, err := range problems {
		l.diagnose("default logger config ignored: %v", err)
	}
	return l
}

// Shutdown tears down the process-wide Logger if it was ever built.
// Call it once, at the end of main.
func Shutdown() {
	if l := defaultLogger.Load(); l != nil {
		l.Teardown()
	}
}

// Package-level convenience functions using the process-wide logger

// Open begins a line on the process-wide logger.
func Open(opts ...OpenOption) (*Stream, error) {
	l, err := Instance()
	if err != nil {
		return nil, err
	}
	return l.open(2, opts)
}

// Log commits one line on the process-wide logger.
func Log(level Level, values ...any) error {
	l, err := Instance()
	if err != nil {
		return err
	}
	return l.Log(level, values...)
}

// Logf commits one formatted line on the process-wide logger.
func Logf(level Level, format string, args ...any) error {
	l, err := Instance()
	if err != nil {
		return err
	}
	return l.Logf(level, format, args...)
}

// Debug logs a debug line using the process-wide logger
func Debug(values ...any) error {
	return Log(DebugLevel, values...)
}

// Info logs an info line using the process-wide logger
func Info(values ...any) error {
	return Log(InfoLevel, values...)
}

// Warn logs a warning line using the process-wide logger
func Warn(values ...any) error {
	return Log(WarnLevel, values...)
}

// Error logs an error line using the process-wide logger
func Error(values ...any) error {
	return Log(ErrorLevel, values...)
}

// Fatal logs a fatal line using the process-wide logger; what happens
// next depends on the fatal policy
func Fatal(values ...any) error {
	return Log(FatalLevel, values...)
}
