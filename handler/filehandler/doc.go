// Package filehandler provides a synchronous handler that writes
// formatted log entries to a rotating file.
//
// The file is managed by lumberjack, which also prunes backups by count
// (MaxBackups) and age (MaxAge) and can gzip them. The handler itself
// triggers rotation once MaxSize bytes have been written or
// RotateInterval has elapsed. Rotated files are named
// "<name>-<timestamp><ext>" next to the log file.
//
// Writes go through a 4 KiB bufio.Writer; Flush, Close and rotation
// flush it. Set FileConfig.FlushEach to push every line to the file
// before Handle returns.
package filehandler
