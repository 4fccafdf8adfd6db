package benchmark

import (
	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/handler"
)

// noopHandler accepts entries without formatting them. The Logger owns
// and recycles the entry.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}

// countingSink is a core.Sink that only counts delivered lines, isolating
// the stream cost from any handler.
type countingSink struct {
	threshold core.Level
	lines     uint64
	bytes     uint64
}

func (s *countingSink) CheckLevel(l core.Level) bool { return l >= s.threshold }

func (s *countingSink) CheckLevelOnce(l core.Level, guard *core.OnceGuard) bool {
	return core.Once(s.CheckLevel(l), guard)
}

func (s *countingSink) Log(_ core.Level, msg string, _ core.Location) {
	s.lines++
	s.bytes += uint64(len(msg))
}
