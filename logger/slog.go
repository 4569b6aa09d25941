package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/philipp01105/streamlog/core"
)

// SlogLevelFatal is the slog level mapped to FatalLevel. Anything at or
// above it is committed as fatal.
const SlogLevelFatal = slog.LevelError + 4

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so slog call sites feed the same hooks. Attributes are
// appended to the message as key=value text.
type SlogHandler struct {
	logger *Logger
	attrs  string
	group  string
}

// NewSlogHandler creates a new slog.Handler committing into l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether records at level would reach the hooks. It
// does not touch the deferred error slot.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	s.logger.mu.Lock()
	keep := s.logger.keepLevel
	s.logger.mu.Unlock()
	return slogLevelToCore(level).Rank() >= keep.Rank()
}

// Handle commits record as one line. It returns what Close returns.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	opts := []OpenOption{WithLevel(slogLevelToCore(record.Level))}
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		if frame.File != "" {
			opts = append(opts, WithSource(frame.File, uint32(frame.Line), frame.Function))
		}
	}

	stream, err := s.logger.open(2, opts)
	if err != nil {
		return err
	}
	stream.Append(record.Message, s.attrs)

	var buf bytes.Buffer
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, s.group, a)
		return true
	})
	_, _ = stream.Write(buf.Bytes())
	return stream.Close()
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var buf bytes.Buffer
	buf.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&buf, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  buf.String(),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= SlogLevelFatal:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value" for a, flattening groups with dotted
// keys.
func appendAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(buf, key, ga)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	fmt.Fprint(buf, a.Value.Any())
}
