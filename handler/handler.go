package handler

import (
	"errors"

	"github.com/philipp01105/dbglog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle writes a log entry. The entry is only valid for the duration
	// of the call.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track write statistics.
type StatsProvider interface {
	Stats() Snapshot
}

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("handler: closed")
