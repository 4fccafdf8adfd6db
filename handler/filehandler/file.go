package filehandler

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
	"github.com/philipp01105/dbglog/handler"
)

const megabyte = 1024 * 1024

// rotator is the rotating file underneath the handler. *lumberjack.Logger
// implements it.
type rotator interface {
	io.WriteCloser
	Rotate() error
}

// sizeTrackingWriter wraps an io.Writer and tracks total bytes written
type sizeTrackingWriter struct {
	w       io.Writer
	written int64
}

func (s *sizeTrackingWriter) Write(p []byte) (n int, err error) {
	n, err = s.w.Write(p)
	s.written += int64(n)
	return
}

// FileHandler writes formatted entries to a file synchronously, rotating
// it by size or interval.
type FileHandler struct {
	filename        string
	out             rotator
	bufWriter       *bufio.Writer
	sizeWriter      *sizeTrackingWriter
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex
	syncBuf         bytes.Buffer
	maxSize         int64
	rotateInterval  time.Duration
	flushEach       bool
	currentSize     int64
	lastRotateTime  time.Time
	stats           *handler.Stats
	closed          bool
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxSize is the size in bytes after which the file is rotated
	// (0 = no size rotation)
	MaxSize int64
	// MaxAge removes backups older than this, rounded up to whole days
	// (0 = no age limit)
	MaxAge time.Duration
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
	// RotateInterval is the interval for time-based rotation (0 = no interval rotation)
	RotateInterval time.Duration
	// Compress gzips rotated files
	Compress bool
	// FlushEach flushes the write buffer after every entry, so that lines
	// reach the file before Handle returns
	FlushEach bool
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// lumberjackSize converts a byte threshold to lumberjack's megabytes.
// The handler enforces the exact byte limit itself; lumberjack's limit
// only has to be no lower.
func lumberjackSize(maxSize int64) int {
	if maxSize <= 0 {
		return math.MaxInt32
	}
	return int((maxSize + megabyte - 1) / megabyte)
}

// lumberjackDays rounds an age up to whole days.
func lumberjackDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	return int((d + day - 1) / day)
}

// NewFileHandler opens (or creates) the configured file and returns a
// handler appending to it.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filehandler: filename is required")
	}
	applyFileDefaults(&cfg)

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filehandler: create directory: %w", err)
	}

	// Open once up front so an unwritable path fails here rather than on
	// the first line.
	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("filehandler: open: %w", err)
	}
	info, err := file.Stat()
	closeErr := file.Close()
	if err != nil {
		return nil, fmt.Errorf("filehandler: stat: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("filehandler: close: %w", closeErr)
	}

	out := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    lumberjackSize(cfg.MaxSize),
		MaxAge:     lumberjackDays(cfg.MaxAge),
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
		Compress:   cfg.Compress,
	}
	return newFileHandler(cfg, out, info.Size()), nil
}

func newFileHandler(cfg FileConfig, out rotator, size int64) *FileHandler {
	sw := &sizeTrackingWriter{w: out}
	h := &FileHandler{
		filename:       cfg.Filename,
		out:            out,
		sizeWriter:     sw,
		bufWriter:      bufio.NewWriterSize(sw, 4096),
		formatter:      cfg.Formatter,
		maxSize:        cfg.MaxSize,
		rotateInterval: cfg.RotateInterval,
		flushEach:      cfg.FlushEach,
		currentSize:    size,
		lastRotateTime: time.Now(),
		stats:          handler.NewStats(),
	}

	// Cache optional formatter interfaces for the write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
	}
	return h
}

// Handle formats and writes an entry.
func (h *FileHandler) Handle(entry *core.Entry) error {
	err := h.write(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// write formats and writes an entry
func (h *FileHandler) write(entry *core.Entry) error {
	var data []byte
	if h.bufferFormatter == nil && h.writerFormatter == nil {
		// Format outside the lock
		var err error
		if data, err = h.formatter.Format(entry); err != nil {
			return err
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return handler.ErrClosed
	}
	// A failed rotation still lets the line through to the current file.
	rotateErr := h.rotateIfNeeded()

	switch {
	case h.bufferFormatter != nil:
		h.syncBuf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
		n, err := h.bufWriter.Write(h.syncBuf.Bytes())
		h.currentSize += int64(n)
		if err != nil {
			return err
		}

	case h.writerFormatter != nil:
		prevFlushed := h.sizeWriter.written
		prevBuffered := h.bufWriter.Buffered()
		err := h.writerFormatter.FormatTo(entry, h.bufWriter)
		h.currentSize += (h.sizeWriter.written - prevFlushed) + int64(h.bufWriter.Buffered()-prevBuffered)
		if err != nil {
			return err
		}

	default:
		n, err := h.bufWriter.Write(data)
		h.currentSize += int64(n)
		if err != nil {
			return err
		}
	}

	if h.flushEach {
		if err := h.bufWriter.Flush(); err != nil {
			return err
		}
	}
	return rotateErr
}

// rotateIfNeeded rotates when the size or interval limit is reached.
func (h *FileHandler) rotateIfNeeded() error {
	switch {
	case h.maxSize > 0 && h.currentSize >= h.maxSize:
	case h.rotateInterval > 0 && time.Since(h.lastRotateTime) >= h.rotateInterval:
	default:
		return nil
	}
	return h.rotate()
}

// rotate flushes pending lines into the current file and starts a new
// one. The size and interval counters restart even when rotation fails,
// so a failing rename is retried after another MaxSize bytes or
// RotateInterval rather than on every line.
func (h *FileHandler) rotate() error {
	flushErr := h.bufWriter.Flush()
	rotateErr := h.out.Rotate()

	h.currentSize = 0
	h.lastRotateTime = time.Now()

	if flushErr != nil {
		return fmt.Errorf("filehandler: flush before rotate: %w", flushErr)
	}
	if rotateErr != nil {
		return fmt.Errorf("filehandler: rotate: %w", rotateErr)
	}
	return nil
}

// backups returns the rotated files of the handler, oldest first.
// lumberjack names them "<name>-<timestamp><ext>", optionally gzipped.
func (h *FileHandler) backups() []string {
	dir := filepath.Dir(h.filename)
	base := filepath.Base(h.filename)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext) + "-"

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var backups []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ext)
		stamp = strings.TrimPrefix(stamp, prefix)
		if _, err := time.Parse("2006-01-02T15-04-05.000", stamp); err == nil {
			backups = append(backups, filepath.Join(dir, name))
		}
	}
	sort.Strings(backups)
	return backups
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Flush writes buffered lines to the file.
func (h *FileHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return handler.ErrClosed
	}
	return h.bufWriter.Flush()
}

// Close flushes and closes the underlying file.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil // Already closed
	}
	h.closed = true

	flushErr := h.bufWriter.Flush()
	closeErr := h.out.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
