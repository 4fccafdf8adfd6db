package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/handler"
	"github.com/philipp01105/dbglog/stream"
	"github.com/philipp01105/dbglog/threadid"
	"github.com/philipp01105/dbglog/timefmt"
)

// Logger is the bundled core.Sink. It enables every level at or above
// its threshold, stamps accepted lines with the time and the calling
// goroutine's thread label, and passes them to its handler. Goroutines
// that never called threadid.Get or threadid.Set are shown as
// "g<goroutine id>"; logging does not assign labels.
//
// The threshold can be changed at runtime; everything else is fixed at
// Build time. Logger is safe for concurrent use.
type Logger struct {
	handler      handler.Handler
	level        atomic.Int32
	threadLabels bool
	clock        timefmt.Clock
	onError      func(error)
}

var _ core.Sink = (*Logger)(nil)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler      handler.Handler
	level        core.Level
	threadLabels bool
	clock        timefmt.Clock
	onError      func(error)
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:        core.Info1, // Default level
		threadLabels: true,
		clock:        timefmt.SystemClock{},
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithThreadLabels controls whether entries carry the goroutine's thread
// label (default: true)
func (b *Builder) WithThreadLabels(enabled bool) *Builder {
	b.threadLabels = enabled
	return b
}

// WithClock sets the time source for entries
func (b *Builder) WithClock(c timefmt.Clock) *Builder {
	if c != nil {
		b.clock = c
	}
	return b
}

// WithErrorHandler sets a callback for handler failures. It is called
// synchronously from the logging goroutine and must not log through the
// same Logger.
func (b *Builder) WithErrorHandler(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		handler:      b.handler,
		threadLabels: b.threadLabels,
		clock:        b.clock,
		onError:      b.onError,
	}
	l.level.Store(int32(b.level))
	return l
}

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel changes the threshold
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// CheckLevel reports whether level is at or above the threshold.
func (l *Logger) CheckLevel(level core.Level) bool {
	return int32(level) >= l.level.Load()
}

// CheckLevelOnce applies the once policy on top of CheckLevel.
func (l *Logger) CheckLevelOnce(level core.Level, guard *core.OnceGuard) bool {
	return core.Once(l.CheckLevel(level), guard)
}

// Log dispatches one finished line to the handler. Handler errors and
// panics never reach the caller; they go to the error callback.
func (l *Logger) Log(level core.Level, msg string, loc core.Location) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			l.report(fmt.Errorf("logger: handler panicked: %v", r))
		}
	}()

	entry := core.GetEntry()
	entry.Time = l.clock.Now()
	entry.Level = level
	entry.Message = msg
	entry.Location = loc
	if l.threadLabels {
		entry.Thread = threadid.Current()
	}

	err := l.handler.Handle(entry)
	core.PutEntry(entry)
	if err != nil {
		l.report(err)
	}
}

func (l *Logger) report(err error) {
	if l.onError != nil {
		l.onError(err)
	}
}

// Begin starts a stream bound to this logger and the caller's location,
// or returns nil when level is disabled.
func (l *Logger) Begin(level core.Level) *stream.Stream {
	if !l.CheckLevel(level) {
		return nil
	}
	return stream.New(core.Caller(1), level, l)
}

// Printf logs one formatted line at level.
func (l *Logger) Printf(level core.Level, format string, args ...any) {
	if !l.CheckLevel(level) {
		return
	}
	s := stream.New(core.Caller(1), level, l)
	defer s.Close()
	s.Appendf(format, args...)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
