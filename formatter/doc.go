// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which formats into a caller-owned bytes.Buffer.
// Handlers check for the optional interfaces at construction time and
// prefer them when available.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// all three. Timestamps go through timefmt.Append with the configured
// fractional precision, and levels are rendered as their two-character
// codes.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
