// Package threadid assigns every goroutine that logs a stable display
// label.
//
// A goroutine's label is created on its first call to Get, drawn from a
// process-wide counter starting at "0", or adopted from Set. Labels are
// kept per goroutine, keyed by the runtime goroutine id, and only the
// owning goroutine reads or writes its slot. Go gives no notification when
// a goroutine exits, so goroutines that call Get or Set should call
// Release before they return. Current reads a label without creating one
// and falls back to "g<goroutine id>"; loggers use it so that logging
// alone never grows the table.
//
// After SetOSNaming(true), new and renamed labels are also pushed to the
// OS thread name (Linux only, truncated to 15 bytes) for debuggers and
// profilers. The runtime moves goroutines between threads, so this is
// only meaningful for goroutines pinned with runtime.LockOSThread.
// Failures are ignored.
package threadid
