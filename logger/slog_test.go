package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/streamlog/hook"
)

func TestSlogHandler(t *testing.T) {
	var rec hook.Recorder
	log := newTestLogger(t, &bytes.Buffer{}, rec.Hook())

	sl := slog.New(NewSlogHandler(log))
	sl.Warn("disk", "pct", 91)

	lines := rec.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	got := lines[1]
	if got.Level != WarnLevel || got.Message != "disk pct=91" {
		t.Errorf("Unexpected line: %+v", got)
	}
	if !strings.HasSuffix(got.SourceFile, "slog_test.go") {
		t.Errorf("Expected source from the slog call site, got %q", got.SourceFile)
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	var rec hook.Recorder
	log := newTestLogger(t, &bytes.Buffer{}, rec.Hook())

	sl := slog.New(NewSlogHandler(log)).
		With("svc", "api").
		WithGroup("req")
	sl.Info("done", "id", 7, slog.Group("user", "name", "ana"))

	if got := rec.Lines()[1].Message; got != "done svc=api req.id=7 req.user.name=ana" {
		t.Errorf("Message = %q", got)
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelDebug - 4, DebugLevel},
		{slog.LevelDebug, DebugLevel},
		{slog.LevelInfo, InfoLevel},
		{slog.LevelWarn, WarnLevel},
		{slog.LevelError, ErrorLevel},
		{SlogLevelFatal, FatalLevel},
		{SlogLevelFatal + 8, FatalLevel},
	}
	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	log := newTestLogger(t, &bytes.Buffer{})
	_ = log.SetKeepLevel(WarnLevel)
	h := NewSlogHandler(log)

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled below keep level warn")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled")
	}
}

func TestSlogHandler_ReturnsDeferredError(t *testing.T) {
	log := newTestLogger(t, &bytes.Buffer{}, failAtOrAbove(ErrorLevel, errBoom))
	h := NewSlogHandler(log)
	ctx := context.Background()

	if err := h.Handle(ctx, slog.NewRecord(testStart, slog.LevelError, "first", 0)); err != nil {
		t.Fatalf("Handle() = %v", err)
	}
	if err := h.Handle(ctx, slog.NewRecord(testStart, slog.LevelInfo, "second", 0)); err != errBoom {
		t.Fatalf("Expected deferred error, got %v", err)
	}
}
