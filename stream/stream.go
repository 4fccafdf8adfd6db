package stream

import (
	"fmt"

	"github.com/philipp01105/dbglog/core"
)

// Stream accumulates the text of one log statement. It is owned by the
// goroutine that created it and must not be copied.
type Stream struct {
	buf    []byte
	loc    core.Location
	level  core.Level
	sink   core.Sink
	closed bool
}

// New creates a stream bound to loc, level and sink. Nothing is written
// until Close.
func New(loc core.Location, level core.Level, sink core.Sink) *Stream {
	return &Stream{
		buf:   make([]byte, 0, 64),
		loc:   loc,
		level: level,
		sink:  sink,
	}
}

// Run creates a stream, passes it to fn, and closes it when fn returns or
// panics.
func Run(loc core.Location, level core.Level, sink core.Sink, fn func(*Stream)) {
	s := New(loc, level, sink)
	defer s.Close()
	fn(s)
}

// Append formats v the way fmt.Print would and appends it. It returns s
// for chaining.
func (s *Stream) Append(v any) *Stream {
	if s == nil || s.closed {
		return s
	}
	s.buf = appendValue(s.buf, v)
	return s
}

// Appendf appends according to a format specifier.
func (s *Stream) Appendf(format string, args ...any) *Stream {
	if s == nil || s.closed {
		return s
	}
	s.buf = fmt.Appendf(s.buf, format, args...)
	return s
}

// Write implements io.Writer so a stream can be the target of fmt.Fprintf
// and encoders. It never fails.
func (s *Stream) Write(p []byte) (int, error) {
	if s != nil && !s.closed {
		s.buf = append(s.buf, p...)
	}
	return len(p), nil
}

// Close delivers the accumulated text to the sink. Only the first call
// delivers; after it the stream is inert. A stream without a sink
// discards its text.
func (s *Stream) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	if s.sink != nil {
		s.sink.Log(s.level, string(s.buf), s.loc)
	}
	s.buf = nil
}

// Level returns the level the stream was created with.
func (s *Stream) Level() core.Level {
	if s == nil {
		return core.Debug
	}
	return s.level
}

// Location returns the call site the stream was created with.
func (s *Stream) Location() core.Location {
	if s == nil {
		return core.Location{}
	}
	return s.loc
}

// Len returns the number of bytes accumulated so far.
func (s *Stream) Len() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// String returns the text accumulated so far.
func (s *Stream) String() string {
	if s == nil {
		return ""
	}
	return string(s.buf)
}
