package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
	"github.com/philipp01105/dbglog/handler"
)

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleHandler writes formatted entries to an io.Writer synchronously.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool // true if writer is safe for concurrent Write calls
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and writer
	syncBuf         bytes.Buffer
	closed          chan struct{}
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Only consulted for formatters that produce a standalone []byte.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          handler.NewStats(),
		closed:         make(chan struct{}),
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
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	err := h.write(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

func (h *ConsoleHandler) write(entry *core.Entry) error {
	select {
	case <-h.closed:
		return handler.ErrClosed
	default:
	}

	switch {
	case h.bufferFormatter != nil:
		return h.writeBuffered(entry)
	case h.writerFormatter != nil:
		return h.writeThrough(entry)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	if h.concurrentSafe {
		_, err = h.writer.Write(data)
		return err
	}
	return h.writeLocked(data)
}

// writeBuffered formats into the handler-owned buffer and writes it under
// one lock so lines never interleave.
func (h *ConsoleHandler) writeBuffered(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.syncBuf.Reset()
	h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
	_, err := h.writer.Write(h.syncBuf.Bytes())
	return err
}

func (h *ConsoleHandler) writeThrough(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.writerFormatter.FormatTo(entry, h.writer)
}

func (h *ConsoleHandler) writeLocked(data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. The writer itself is not closed.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
