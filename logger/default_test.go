package logger

import (
	"errors"
	"strings"
	"testing"

	"github.com/philipp01105/streamlog/hook"
)

// The process-wide logger is built once per test binary, so its whole
// life is exercised in this single test.
func TestInstanceLifecycle(t *testing.T) {
	t.Setenv("STREAMLOG_CONFIG", "")
	t.Setenv("STREAMLOG_OUTPUT", "none")
	t.Setenv("STREAMLOG_DEFAULT_LEVEL", "warn")

	l1, err := Instance()
	if err != nil {
		t.Fatalf("Instance() error = %v", err)
	}
	l2, _ := Instance()
	if l1 != l2 {
		t.Fatal("Instance() must return the same logger")
	}
	if lvl, _ := l1.DefaultLevel(); lvl != WarnLevel {
		t.Errorf("DefaultLevel = %v, want warn from the environment", lvl)
	}

	var rec hook.Recorder
	if err := l1.SetHooks(rec.Hook(), failAtOrAbove(ErrorLevel, errBoom)); err != nil {
		t.Fatal(err)
	}

	if err := Info("hello ", 1); err != nil {
		t.Fatal(err)
	}
	if err := Debug("quiet"); err != nil {
		t.Fatal(err)
	}
	s, err := Open(WithCaller(0))
	if err != nil {
		t.Fatal(err)
	}
	s.Append("opened").Close()

	lines := rec.Lines()
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	if lines[1].Message != "hello 1" || lines[2].Level != DebugLevel {
		t.Errorf("Unexpected lines: %+v", lines)
	}
	if lines[3].Level != WarnLevel || !strings.HasSuffix(lines[3].SourceFile, "default_test.go") {
		t.Errorf("Unexpected opened line: %+v", lines[3])
	}

	if err := Error("fails"); err != nil {
		t.Fatalf("Error() = %v", err)
	}
	if _, err := Instance(); !errors.Is(err, errBoom) {
		t.Fatalf("Instance() should return the deferred error, got %v", err)
	}
	if err := Warn("recovered"); err != nil {
		t.Fatalf("Warn() = %v", err)
	}

	Shutdown()
	last := rec.Lines()[rec.Len()-1]
	if !strings.HasPrefix(last.Message, "logout time: ") {
		t.Errorf("Expected logout line, got %q", last.Message)
	}
	if err := Logf(InfoLevel, "%d", 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed after Shutdown, got %v", err)
	}
}
