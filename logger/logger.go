package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/streamlog/core"
	"github.com/philipp01105/streamlog/formatter"
	"github.com/philipp01105/streamlog/hook"
)

// ErrClosed is returned by every entry point of a Logger that has been
// torn down.
var ErrClosed = errors.New("logger: torn down")

const (
	stateRunning = iota
	stateTearingDown
	stateClosed
)

// Logger is the logging engine. It owns the configuration, the hook
// chain and the deferred error slot.
//
// A hook failure is never returned to the caller whose line caused it.
// It is stored and returned by the next entry point instead: the next
// Open, Close, Log or any getter or setter. That call returns the stored
// error, clears it, and does nothing else.
type Logger struct {
	mu sync.Mutex

	defaultLevel core.Level
	keepLevel    core.Level
	hooks        hook.Chain
	ifFatal      FatalPolicy
	atDestruct   func()
	appearance   core.TimeAppearance
	timeFormat   core.TimeFormat

	// pending is the deferred error slot.
	pending error
	state   int

	// loginMu is held while the login line is delivered, so no other
	// line reaches the hooks first. loggedIn is set once that is done.
	loginMu  sync.Mutex
	loggedIn atomic.Bool
	closers  []io.Closer

	start     time.Time
	clock     core.Clock
	diag      io.Writer
	formatter formatter.Formatter
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	defaultLevel core.Level
	keepLevel    core.Level
	hooks        hook.Chain
	hooksSet     bool
	ifFatal      FatalPolicy
	atDestruct   func()
	appearance   core.TimeAppearance
	timeFormat   core.TimeFormat
	clock        core.Clock
	diag         io.Writer
	formatter    formatter.Formatter
	closers      []io.Closer
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		defaultLevel: core.InfoLevel,
		keepLevel:    core.DebugLevel,
		ifFatal:      FatalNone,
		appearance:   core.SecondsFromStart,
		timeFormat:   core.TimeFormatUTC,
	}
}

// WithDefaultLevel sets the level of streams opened without one
func (b *Builder) WithDefaultLevel(level core.Level) *Builder {
	b.defaultLevel = level
	return b
}

// WithKeepLevel sets the minimum level delivered to hooks
func (b *Builder) WithKeepLevel(level core.Level) *Builder {
	b.keepLevel = level
	return b
}

// WithHooks replaces the default stderr hook with hooks. Calling it with
// no hooks leaves the chain empty.
func (b *Builder) WithHooks(hooks ...hook.Hook) *Builder {
	b.hooks = hook.NewChain(hooks...)
	b.hooksSet = true
	return b
}

// WithIfFatal sets the fatal policy
func (b *Builder) WithIfFatal(policy FatalPolicy) *Builder {
	b.ifFatal = policy
	return b
}

// WithAtDestruct sets the teardown callback
func (b *Builder) WithAtDestruct(fn func()) *Builder {
	b.atDestruct = fn
	return b
}

// WithTimeAppearance sets how the time column is rendered
func (b *Builder) WithTimeAppearance(a core.TimeAppearance) *Builder {
	b.appearance = a
	return b
}

// WithTimeFormat sets how login and logout timestamps are written
func (b *Builder) WithTimeFormat(f core.TimeFormat) *Builder {
	b.timeFormat = f
	return b
}

// WithClock sets the timestamp source (default: core.SystemClock)
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithDiagnostic sets where the logger reports its own problems
// (default: os.Stderr)
func (b *Builder) WithDiagnostic(w io.Writer) *Builder {
	b.diag = w
	return b
}

// WithFormatter sets the formatter used for FatalError payloads
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithCloser registers c to be closed at the end of Teardown, after the
// teardown callback. Closers run in registration order.
func (b *Builder) WithCloser(c io.Closer) *Builder {
	if c != nil {
		b.closers = append(b.closers, c)
	}
	return b
}

// Build creates the Logger instance. The start time is read from the
// clock here.
func (b *Builder) Build() *Logger {
	clock := b.clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	diag := b.diag
	if diag == nil {
		diag = os.Stderr
	}
	f := b.formatter
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	hooks := b.hooks.Clone()
	if !b.hooksSet {
		hooks = hook.NewChain(hook.Stderr())
	}
	atDestruct := b.atDestruct
	if atDestruct == nil {
		atDestruct = func() {}
	}

	return &Logger{
		defaultLevel: b.defaultLevel,
		keepLevel:    b.keepLevel,
		hooks:        hooks,
		ifFatal:      b.ifFatal,
		atDestruct:   atDestruct,
		appearance:   b.appearance,
		timeFormat:   b.timeFormat,
		start:        clock.Now(),
		clock:        clock,
		diag:         diag,
		formatter:    f,
		closers:      append([]io.Closer(nil), b.closers...),
	}
}

// New creates a Logger with the default configuration
func New() *Logger {
	return NewBuilder().Build()
}

// enter drains the deferred error slot and checks the logger is still
// usable. It must be called with mu held.
func (l *Logger) enter() error {
	if err := l.pending; err != nil {
		l.pending = nil
		return err
	}
	if l.state == stateClosed {
		return ErrClosed
	}
	return nil
}

// deferError stores err in the deferred slot. A second failure before
// the slot is drained is merged, not dropped.
func (l *Logger) deferError(err error) {
	l.mu.Lock()
	l.pending = multierr.Append(l.pending, err)
	l.mu.Unlock()
}

func (l *Logger) diagnose(format string, args ...any) {
	msg := fmt.Sprintf("streamlog: "+format+"\n", args...)
	_, _ = hook.WriteLocked(l.diag, []byte(msg))
}

// commitState is the configuration one commit works with.
type commitState struct {
	keep       core.Level
	hooks      hook.Chain
	ifFatal    FatalPolicy
	appearance core.TimeAppearance
	timeFormat core.TimeFormat
}

func (l *Logger) commit(line *core.Line) error {
	l.mu.Lock()
	if err := l.enter(); err != nil {
		l.mu.Unlock()
		return err
	}
	cs := commitState{
		keep:       l.keepLevel,
		hooks:      l.hooks,
		ifFatal:    l.ifFatal,
		appearance: l.appearance,
		timeFormat: l.timeFormat,
	}
	l.mu.Unlock()

	if !l.login(cs) {
		return nil
	}

	if !l.deliver(cs, line) {
		return nil
	}

	if line.Level == core.FatalLevel {
		return l.applyFatal(cs.ifFatal, func() string { return l.render(line) })
	}
	return nil
}

// login delivers the login line if no commit has done so yet. Commits
// racing the first one wait until it is delivered. It reports false when
// a hook failed on the login line.
//
// A hook must not log while it handles the login line.
func (l *Logger) login(cs commitState) bool {
	if l.loggedIn.Load() {
		return true
	}
	l.loginMu.Lock()
	defer l.loginMu.Unlock()
	if l.loggedIn.Load() {
		return true
	}
	defer l.loggedIn.Store(true)

	marker := &core.Line{
		Time:    l.start,
		Level:   core.InfoLevel,
		Message: "login time: " + core.FormatTimestamp(l.start, cs.timeFormat),
	}
	return l.deliver(cs, marker)
}

// deliver stamps line and runs the hooks. It reports false when a hook
// failed, in which case the failure has been deferred.
func (l *Logger) deliver(cs commitState, line *core.Line) bool {
	line.Start = l.start
	line.Appearance = cs.appearance

	if line.Level.Rank() < cs.keep.Rank() {
		return true
	}
	if err := cs.hooks.Run(line); err != nil {
		l.deferError(err)
		return false
	}
	return true
}

func (l *Logger) render(line *core.Line) string {
	data, err := l.formatter.Format(line)
	if err != nil {
		return formatter.Render(line)
	}
	return string(data)
}

// Teardown ends the logger's life. It runs at most once; later calls do
// nothing.
//
// If a hook failure is still pending, it is reported on the diagnostic
// writer and the process exits with status 1 without running the
// teardown callback. Otherwise a logout line is committed, the
// teardown callback runs and then the closers registered with
// Builder.WithCloser are closed.
func (l *Logger) Teardown() {
	l.mu.Lock()
	if l.state != stateRunning {
		l.mu.Unlock()
		return
	}
	if err := l.pending; err != nil {
		l.pending = nil
		l.state = stateClosed
		l.mu.Unlock()
		l.diagnose("hook error still pending at teardown, exiting: %v", err)
		quickExit(1)
		return
	}
	l.state = stateTearingDown
	atDestruct := l.atDestruct
	timeFormat := l.timeFormat
	l.mu.Unlock()

	now := l.clock.Now()
	logout := &core.Line{
		Time:    now,
		Level:   core.InfoLevel,
		Message: "logout time: " + core.FormatTimestamp(now, timeFormat),
	}
	commitErr := l.commit(logout)

	l.mu.Lock()
	l.state = stateClosed
	lateErr := l.pending
	l.pending = nil
	l.mu.Unlock()

	if err := multierr.Append(commitErr, lateErr); err != nil {
		l.diagnose("logout line failed: %v", err)
	}
	atDestruct()

	for _, c := range l.closers {
		if err := c.Close(); err != nil {
			l.diagnose("close at teardown: %v", err)
		}
	}
}

// DefaultLevel returns the level of streams opened without one
func (l *Logger) DefaultLevel() (core.Level, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return core.NoneLevel, err
	}
	return l.defaultLevel, nil
}

// SetDefaultLevel sets the level of streams opened without one
func (l *Logger) SetDefaultLevel(level core.Level) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return err
	}
	if !level.Valid() {
		return fmt.Errorf("%w: %d", core.ErrUnknownLevel, uint8(level))
	}
	l.defaultLevel = level
	return nil
}

// KeepLevel returns the minimum level delivered to hooks
func (l *Logger) KeepLevel() (core.Level, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return core.NoneLevel, err
	}
	return l.keepLevel, nil
}

// SetKeepLevel sets the minimum level delivered to hooks
func (l *Logger) SetKeepLevel(level core.Level) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return err
	}
	if !level.Valid() {
		return fmt.Errorf("%w: %d", core.ErrUnknownLevel, uint8(level))
	}
	l.keepLevel = level
	return nil
}

// Hooks returns a copy of the hook chain
func (l *Logger) Hooks() (hook.Chain, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return nil, err
	}
	return l.hooks.Clone(), nil
}

// SetHooks replaces the whole hook chain
func (l *Logger) SetHooks(hooks ...hook.Hook) error {
	chain := hook.NewChain(hooks...)
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return err
	}
	l.hooks = chain
	return nil
}

// IfFatal returns the fatal policy
func (l *Logger) IfFatal() (FatalPolicy, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return FatalNone, err
	}
	return l.ifFatal, nil
}

// SetIfFatal sets the fatal policy
func (l *Logger) SetIfFatal(policy FatalPolicy) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return err
	}
	if policy > FatalException {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, uint8(policy))
	}
	l.ifFatal = policy
	return nil
}

// SetAtDestruct sets the callback Teardown runs last. A nil fn clears it.
func (l *Logger) SetAtDestruct(fn func()) error {
	if fn == nil {
		fn = func() {}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return err
	}
	l.atDestruct = fn
	return nil
}

// TimeAppearance returns how the time column is rendered
func (l *Logger) TimeAppearance() (core.TimeAppearance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return core.SecondsFromStart, err
	}
	return l.appearance, nil
}

// SetTimeAppearance sets how the time column is rendered
func (l *Logger) SetTimeAppearance(a core.TimeAppearance) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return err
	}
	l.appearance = a
	return nil
}

// TimeFormat returns how login and logout timestamps are written
func (l *Logger) TimeFormat() (core.TimeFormat, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return core.TimeFormatUTC, err
	}
	return l.timeFormat, nil
}

// SetTimeFormat sets how login and logout timestamps are written
func (l *Logger) SetTimeFormat(f core.TimeFormat) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return err
	}
	l.timeFormat = f
	return nil
}

// StartTime returns the time the logger was built
func (l *Logger) StartTime() (time.Time, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enter(); err != nil {
		return time.Time{}, err
	}
	return l.start, nil
}
