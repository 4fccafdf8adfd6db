// Package core defines the shared types used across dbglog.
//
// It provides the Level type with its two-character output codes, the
// Location triple captured at a call site, the Entry type that carries a
// finished line to a handler, and the Sink contract that the level gate
// and log streams depend on.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must return it
// with PutEntry once the handler has consumed it.
//
// The level gate is deliberately thin: CheckLevel and CheckLevelOnce only
// delegate to the sink, which owns its threshold. Once implements the
// shared "log at most once" policy on top of an OnceGuard so that every
// sink applies it the same way.
package core
