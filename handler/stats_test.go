package handler

import (
	"sync"
	"testing"

	"github.com/philipp01105/dbglog/core"
)

func TestStats_Counts(t *testing.T) {
	s := NewStats()
	s.IncrementProcessed(core.Info1)
	s.IncrementProcessed(core.Info1)
	s.IncrementProcessed(core.Err3)
	s.IncrementProcessed(core.Level(50))
	s.IncrementFailed()

	if got := s.GetProcessed(core.Info1); got != 2 {
		t.Errorf("GetProcessed(Info1) = %d, want 2", got)
	}
	if got := s.GetProcessed(core.Err3); got != 1 {
		t.Errorf("GetProcessed(Err3) = %d, want 1", got)
	}
	if got := s.GetTotalProcessed(); got != 4 {
		t.Errorf("GetTotalProcessed() = %d, want 4", got)
	}
	if got := s.GetFailed(); got != 1 {
		t.Errorf("GetFailed() = %d, want 1", got)
	}

	snap := s.GetSnapshot()
	if snap.ProcessedTotal != 4 || snap.FailedTotal != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(snap.Processed) != 2 {
		t.Errorf("snapshot has %d levels, want 2", len(snap.Processed))
	}

	s.Reset()
	if s.GetTotalProcessed() != 0 || s.GetFailed() != 0 {
		t.Error("Reset() left counters non-zero")
	}
}

func TestStats_Concurrent(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.IncrementProcessed(core.Warn2)
			}
		}()
	}
	wg.Wait()
	if got := s.GetProcessed(core.Warn2); got != 5000 {
		t.Errorf("GetProcessed(Warn2) = %d, want 5000", got)
	}
}
