// Package consolehandler provides a synchronous handler that writes
// formatted log entries to any io.Writer (default: os.Stderr).
//
// Formatting and writing happen under one mutex when the formatter can
// write into the handler-owned buffer, so concurrent log lines never
// interleave.
package consolehandler
