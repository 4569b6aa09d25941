package logger

import (
	"bytes"
	"fmt"

	"github.com/philipp01105/streamlog/core"
)

// OpenOption configures a Stream at Open.
type OpenOption func(*openOptions)

type openOptions struct {
	level    core.Level
	hasLevel bool

	file     string
	line     uint32
	function string

	caller     bool
	callerSkip int
}

// WithLevel sets the stream's level instead of the logger's default.
func WithLevel(level core.Level) OpenOption {
	return func(o *openOptions) {
		o.level = level
		o.hasLevel = true
	}
}

// WithSource attaches a source location to the line.
func WithSource(file string, line uint32, function string) OpenOption {
	return func(o *openOptions) {
		o.file = file
		o.line = line
		o.function = function
		o.caller = false
	}
}

// WithCaller fills the source location from the call site of Open.
// skip counts extra frames above that call site.
func WithCaller(skip int) OpenOption {
	return func(o *openOptions) {
		o.caller = true
		o.callerSkip = skip
	}
}

// Stream accumulates the text of one line and commits it on Close.
//
// Close must be called exactly once, usually with defer. A stream that
// is never closed drops its line silently. A Stream is not safe for
// concurrent use. A nil *Stream is valid and discards everything.
type Stream struct {
	logger *Logger
	level  core.Level

	file     string
	line     uint32
	function string

	buf  bytes.Buffer
	done bool
}

// Open begins a line. It returns the pending deferred error, if any,
// instead of a stream. An out-of-range level is rejected with an error
// wrapping core.ErrUnknownLevel.
func (l *Logger) Open(opts ...OpenOption) (*Stream, error) {
	return l.open(2, opts)
}

// open builds a stream. depth is the number of frames between the
// caller of GetCaller and the user's call site.
func (l *Logger) open(depth int, opts []OpenOption) (*Stream, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	l.mu.Lock()
	if err := l.enter(); err != nil {
		l.mu.Unlock()
		return nil, err
	}
	level := l.defaultLevel
	l.mu.Unlock()

	if o.hasLevel {
		level = o.level
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", core.ErrUnknownLevel, uint8(level))
	}

	s := &Stream{
		logger:   l,
		level:    level,
		file:     o.file,
		line:     o.line,
		function: o.function,
	}
	if o.caller {
		if ci := core.GetCaller(depth + o.callerSkip); ci.Defined {
			s.file = ci.File
			s.line = uint32(ci.Line)
			s.function = ci.Function
		}
	}
	return s, nil
}

// Level returns the level the line will be committed with.
func (s *Stream) Level() core.Level {
	if s == nil {
		return core.NoneLevel
	}
	return s.level
}

// Append formats each value with fmt's default format and appends the
// results with no separator.
func (s *Stream) Append(values ...any) *Stream {
	if s == nil || s.done {
		return s
	}
	for _, v := range values {
		fmt.Fprint(&s.buf, v)
	}
	return s
}

// Appendf appends a formatted string.
func (s *Stream) Appendf(format string, args ...any) *Stream {
	if s == nil || s.done {
		return s
	}
	fmt.Fprintf(&s.buf, format, args...)
	return s
}

// Write implements io.Writer. Writes after Close are discarded.
func (s *Stream) Write(p []byte) (int, error) {
	if s == nil || s.done {
		return len(p), nil
	}
	return s.buf.Write(p)
}

// Close commits the line. Only the first call commits; later calls
// return nil.
//
// Close returns a hook error left pending by an earlier line, in which
// case this line is dropped, or a *FatalError when the line is fatal and
// the policy is FatalException. A hook failing on this line is not
// returned here.
func (s *Stream) Close() error {
	if s == nil || s.done {
		return nil
	}
	s.done = true

	line := &core.Line{
		Time:           s.logger.clock.Now(),
		Level:          s.level,
		Message:        s.buf.String(),
		SourceFile:     s.file,
		SourceLine:     s.line,
		SourceFunction: s.function,
	}
	return s.logger.commit(line)
}

// Log commits one line built from values.
func (l *Logger) Log(level core.Level, values ...any) error {
	s, err := l.open(2, []OpenOption{WithLevel(level)})
	if err != nil {
		return err
	}
	return s.Append(values...).Close()
}

// Logf commits one formatted line.
func (l *Logger) Logf(level core.Level, format string, args ...any) error {
	s, err := l.open(2, []OpenOption{WithLevel(level)})
	if err != nil {
		return err
	}
	return s.Appendf(format, args...).Close()
}
