// Package sloghandler provides a log/slog.Handler backed by a dbglog
// sink, allowing code written against the standard library's slog API to
// share the sink's threshold, thread labels and output.
package sloghandler
