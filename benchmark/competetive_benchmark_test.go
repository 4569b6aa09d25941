package benchmark

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/streamlog/core"
	"github.com/philipp01105/streamlog/hook"
	"github.com/philipp01105/streamlog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard / no-op writer)
// ---------------------------------------------------------------------------

// newStreamlogLogger returns a streamlog logger that writes text to w.
func newStreamlogLogger(w io.Writer) *logger.Logger {
	return logger.NewBuilder().
		WithHooks(hook.Writer(w, nil)).
		WithKeepLevel(core.DebugLevel).
		WithDiagnostic(io.Discard).
		Build()
}

// newZapLogger returns a zap.Logger that writes console text to w.
func newZapLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// newSlogLogger returns an slog.Logger that writes text to w.
func newSlogLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newLogrusLogger returns a logrus.Logger that writes text to w.
func newLogrusLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	l.SetLevel(level)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes JSON to w.
func newZerologLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Info(b *testing.B) {
	b.Run("streamlog", func(b *testing.B) {
		l := newStreamlogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Log(core.InfoLevel, "info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard, zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Message built from several values
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Composed(b *testing.B) {
	b.Run("streamlog", func(b *testing.B) {
		l := newStreamlogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s, _ := l.Open()
			s.Append("user ", "alice", " took ", 12, "ms")
			s.Close()
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard, zap.DebugLevel).Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("user %s took %dms", "alice", 12)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("user %s took %dms", "alice", 12)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("user %s took %dms", "alice", 12)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Disabled level
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_DisabledLevel(b *testing.B) {
	b.Run("streamlog", func(b *testing.B) {
		l := newStreamlogLogger(io.Discard)
		_ = l.SetKeepLevel(core.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Log(core.DebugLevel, "debug message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard, zap.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelError)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Msg("debug message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – Parallel
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("streamlog", func(b *testing.B) {
		l := newStreamlogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = l.Log(core.InfoLevel, "parallel message")
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard, zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard, slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard, logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard, zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Msg("parallel message")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – streamlog forwarding into another framework
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Forwarding(b *testing.B) {
	b.Run("zap", func(b *testing.B) {
		fwd := hook.ZapLogger(newZapLogger(io.Discard, zap.DebugLevel))
		l := logger.NewBuilder().WithHooks(fwd).Build()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Log(core.InfoLevel, "forwarded")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		fwd := hook.Logrus(newLogrusLogger(io.Discard, logrus.DebugLevel))
		l := logger.NewBuilder().WithHooks(fwd).Build()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Log(core.InfoLevel, "forwarded")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		fwd := hook.Zerolog(newZerologLogger(io.Discard, zerolog.DebugLevel))
		l := logger.NewBuilder().WithHooks(fwd).Build()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Log(core.InfoLevel, "forwarded")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 6 – File output
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileOutput(b *testing.B) {
	b.Run("streamlog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-streamlog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newStreamlogLogger(f)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Log(core.InfoLevel, "file log")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("zap", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zap-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newZapLogger(f, zap.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log")
		}
		b.StopTimer()
		l.Sync()
		f.Close()
	})

	b.Run("slog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-slog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newSlogLogger(f, slog.LevelInfo)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("logrus", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-logrus-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newLogrusLogger(f, logrus.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("zerolog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zerolog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newZerologLogger(f, zerolog.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("file log")
		}
		b.StopTimer()
		f.Close()
	})
}
