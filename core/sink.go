package core

import "sync/atomic"

// OnceGuard records whether a call site has already logged. It is owned by
// the call site, typically as a package-level variable:
//
//	var startupGuard core.OnceGuard
type OnceGuard = atomic.Bool

// Sink is the destination of finished log lines. It owns the threshold
// and the output; the level gate and Stream depend only on this method
// set. Implementations must be safe for concurrent use.
type Sink interface {
	// CheckLevel reports whether statements at l should execute.
	CheckLevel(l Level) bool
	// CheckLevelOnce is CheckLevel combined with the Once policy on guard.
	CheckLevelOnce(l Level, guard *OnceGuard) bool
	// Log receives one finished line. It must not panic or block the
	// caller on failure.
	Log(l Level, msg string, loc Location)
}

// CheckLevel evaluates the level gate against sink.
func CheckLevel(l Level, sink Sink) bool {
	return sink.CheckLevel(l)
}

// CheckLevelOnce evaluates the once-guarded level gate against sink.
func CheckLevelOnce(l Level, sink Sink, guard *OnceGuard) bool {
	return sink.CheckLevelOnce(l, guard)
}

// Once applies the log-once policy to the outcome of an ordinary level
// check. A set guard suppresses regardless of pass. Otherwise the call is
// allowed only if pass is true and this caller is the one that flips the
// guard, so concurrent first hits produce exactly one true.
//
// The first passing level wins: once set, the guard suppresses every later
// invocation whatever level it uses.
func Once(pass bool, guard *OnceGuard) bool {
	if guard.Load() {
		return false
	}
	if !pass {
		return false
	}
	return guard.CompareAndSwap(false, true)
}
