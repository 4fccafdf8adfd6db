// Package handler provides the Handler interface and shared pieces for
// the handlers that write finished log entries to outputs.
//
// All handlers are synchronous: Handle returns after the entry has been
// written, so the caller may recycle the entry immediately.
//
// Built-in handlers:
//
//   - consolehandler writes formatted entries to any io.Writer (default: stderr).
//   - filehandler writes to a file with automatic rotation by size, age,
//     or interval, and manages old backup cleanup.
//   - zaphandler forwards entries to a zap.Logger.
//   - sloghandler goes the other way: a log/slog handler feeding a core.Sink.
//   - MultiHandler fans out a single entry to multiple child handlers.
//
// Handlers track processed and failed counts via the Stats type, which
// can be queried at runtime for monitoring; statscollector exports it to
// Prometheus.
package handler
