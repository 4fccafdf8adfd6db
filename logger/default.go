package logger

import (
	"sync"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
	"github.com/philipp01105/dbglog/handler/consolehandler"
	"github.com/philipp01105/dbglog/stream"
)

// DefaultLevelEnv names the environment variable that sets the default
// logger's initial threshold.
const DefaultLevelEnv = "DBGLOG_LEVEL"

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with console handler
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Formatter: formatter.NewTextFormatter(formatter.Config{TimePrecision: 3}),
	})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(LevelFromEnv(DefaultLevelEnv, core.Info1)).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger and returns the previous one
func SetDefault(l *Logger) *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultLogger
	defaultLogger = l
	return prev
}

// Call-site functions. Each evaluates the level gate first and captures
// the caller's location only when the statement is enabled.

// CheckLevel evaluates the level gate against the default logger.
func CheckLevel(level core.Level) bool {
	return Default().CheckLevel(level)
}

// CheckLevelOnce evaluates the once-guarded gate against the default
// logger.
func CheckLevelOnce(level core.Level, guard *core.OnceGuard) bool {
	return Default().CheckLevelOnce(level, guard)
}

// Begin returns a stream for the default logger, or nil when level is
// disabled. Defer Close on the result:
//
//	s := logger.Begin(logger.Info2)
//	defer s.Close()
//	s.Append("loaded ").Append(n).Append(" records")
func Begin(level core.Level) *stream.Stream {
	l := Default()
	if !l.CheckLevel(level) {
		return nil
	}
	return stream.New(core.Caller(1), level, l)
}

// BeginTo is Begin with an explicit sink.
func BeginTo(sink core.Sink, level core.Level) *stream.Stream {
	if !sink.CheckLevel(level) {
		return nil
	}
	return stream.New(core.Caller(1), level, sink)
}

// BeginOnce is Begin guarded by guard: it returns a stream at most once
// over the guard's lifetime.
func BeginOnce(guard *core.OnceGuard, level core.Level) *stream.Stream {
	l := Default()
	if !l.CheckLevelOnce(level, guard) {
		return nil
	}
	return stream.New(core.Caller(1), level, l)
}

// BeginOnceTo is BeginOnce with an explicit sink.
func BeginOnceTo(sink core.Sink, guard *core.OnceGuard, level core.Level) *stream.Stream {
	if !sink.CheckLevelOnce(level, guard) {
		return nil
	}
	return stream.New(core.Caller(1), level, sink)
}

// Log runs fn against a stream for the default logger when level is
// enabled. The line is delivered when fn returns or panics.
func Log(level core.Level, fn func(*stream.Stream)) {
	l := Default()
	if !l.CheckLevel(level) {
		return
	}
	stream.Run(core.Caller(1), level, l, fn)
}

// LogTo is Log with an explicit sink.
func LogTo(sink core.Sink, level core.Level, fn func(*stream.Stream)) {
	if !sink.CheckLevel(level) {
		return
	}
	stream.Run(core.Caller(1), level, sink, fn)
}

// Once is Log guarded by guard.
func Once(guard *core.OnceGuard, level core.Level, fn func(*stream.Stream)) {
	l := Default()
	if !l.CheckLevelOnce(level, guard) {
		return
	}
	stream.Run(core.Caller(1), level, l, fn)
}

// OnceTo is Once with an explicit sink.
func OnceTo(sink core.Sink, guard *core.OnceGuard, level core.Level, fn func(*stream.Stream)) {
	if !sink.CheckLevelOnce(level, guard) {
		return
	}
	stream.Run(core.Caller(1), level, sink, fn)
}

// Print logs args, concatenated without separators, to the default
// logger. The arguments are evaluated even when level is disabled; use
// Begin or Log for expensive values.
func Print(level core.Level, args ...any) {
	l := Default()
	if !l.CheckLevel(level) {
		return
	}
	printTo(core.Caller(1), l, level, args)
}

// PrintTo is Print with an explicit sink.
func PrintTo(sink core.Sink, level core.Level, args ...any) {
	if !sink.CheckLevel(level) {
		return
	}
	printTo(core.Caller(1), sink, level, args)
}

// Printf logs a formatted line to the default logger.
func Printf(level core.Level, format string, args ...any) {
	l := Default()
	if !l.CheckLevel(level) {
		return
	}
	s := stream.New(core.Caller(1), level, l)
	defer s.Close()
	s.Appendf(format, args...)
}

func printTo(loc core.Location, sink core.Sink, level core.Level, args []any) {
	s := stream.New(loc, level, sink)
	defer s.Close()
	for _, a := range args {
		s.Append(a)
	}
}
