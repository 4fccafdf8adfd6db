package filehandler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
	"github.com/philipp01105/dbglog/handler"
)

func newEntry(msg string) *core.Entry {
	return &core.Entry{Time: time.Now(), Level: core.Info1, Thread: "1", Message: msg}
}

func TestNewFileHandler_RequiresFilename(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); err == nil {
		t.Fatal("expected error for empty filename")
	}
}

func TestFileHandler_WritesLines(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "test.log")

	h, err := NewFileHandler(FileConfig{Filename: filename})
	if err != nil {
		t.Fatal(err)
	}

	for _, msg := range []string{"first", "second"} {
		if err := h.Handle(newEntry(msg)); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], " 1 I1: first") || !strings.HasSuffix(lines[1], " 1 I1: second") {
		t.Errorf("unexpected content %q", data)
	}
	if got := h.Stats().ProcessedTotal; got != 2 {
		t.Errorf("ProcessedTotal = %d, want 2", got)
	}
}

func TestFileHandler_Appends(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(filename, []byte("existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := NewFileHandler(FileConfig{Filename: filename, FlushEach: true})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	h.Handle(newEntry("new"))

	data, _ := os.ReadFile(filename)
	if !strings.HasPrefix(string(data), "existing\n") || !strings.Contains(string(data), "new") {
		t.Errorf("unexpected content %q", data)
	}
}

func TestFileHandler_MaxBackups(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "test.log")

	h, err := NewFileHandler(FileConfig{
		Filename:   filename,
		MaxSize:    100, // Small size to trigger rotation
		MaxBackups: 2,   // Keep only 2 backups
	})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	for i := 0; i < 10; i++ {
		if err := h.Handle(newEntry("This is a test message that will trigger rotation")); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		// Backup names have millisecond resolution
		time.Sleep(3 * time.Millisecond)
	}

	// Pruning runs in lumberjack's background goroutine
	assert.Eventually(t, func() bool {
		return len(h.backups()) == 2
	}, 2*time.Second, 10*time.Millisecond, "backups: %v", h.backups())
}

// failingRotator records writes in memory and refuses to rotate.
type failingRotator struct {
	buf     bytes.Buffer
	rotates int
}

func (r *failingRotator) Write(p []byte) (int, error) { return r.buf.Write(p) }
func (r *failingRotator) Close() error                { return nil }

func (r *failingRotator) Rotate() error {
	r.rotates++
	return errors.New("rename: permission denied")
}

func TestFileHandler_FailedRotationBacksOff(t *testing.T) {
	out := &failingRotator{}
	h := newFileHandler(FileConfig{
		Filename:  "unused.log",
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
		MaxSize:   100,
		FlushEach: true,
	}, out, 0)
	defer h.Close()

	var failed int
	for i := 0; i < 10; i++ {
		if err := h.Handle(newEntry("This is a test message that will trigger rotation")); err != nil {
			failed++
		}
	}

	// Each line is about 77 bytes, so a rotation is due every second line.
	// Without the counter reset every line after the first rotation would retry.
	if out.rotates != 4 {
		t.Errorf("Rotate called %d times, want 4", out.rotates)
	}
	if failed != out.rotates {
		t.Errorf("%d Handle errors, want one per failed rotation (%d)", failed, out.rotates)
	}
	if got := strings.Count(out.buf.String(), "\n"); got != 10 {
		t.Errorf("%d lines written, want 10: a failed rotation must not drop the line", got)
	}
}

func TestLumberjackConversions(t *testing.T) {
	if got := lumberjackSize(100); got != 1 {
		t.Errorf("lumberjackSize(100) = %d, want 1", got)
	}
	if got := lumberjackSize(3*megabyte + 1); got != 4 {
		t.Errorf("lumberjackSize(3MiB+1) = %d, want 4", got)
	}
	if got := lumberjackDays(0); got != 0 {
		t.Errorf("lumberjackDays(0) = %d, want 0", got)
	}
	if got := lumberjackDays(25 * time.Hour); got != 2 {
		t.Errorf("lumberjackDays(25h) = %d, want 2", got)
	}
}

func TestFileHandler_RotateInterval(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.log")

	h, err := NewFileHandler(FileConfig{
		Filename:       filename,
		RotateInterval: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	h.Handle(newEntry("first"))
	time.Sleep(80 * time.Millisecond)
	h.Handle(newEntry("second"))

	backups := h.backups()
	if len(backups) != 1 {
		t.Fatalf("found %d backups, want 1", len(backups))
	}
	data, _ := os.ReadFile(backups[0])
	if !strings.Contains(string(data), "first") || strings.Contains(string(data), "second") {
		t.Errorf("rotated file content %q", data)
	}
}

func TestFileHandler_ClosedRejectsWrites(t *testing.T) {
	h, err := NewFileHandler(FileConfig{Filename: filepath.Join(t.TempDir(), "test.log")})
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if err := h.Handle(newEntry("late")); !errors.Is(err, handler.ErrClosed) {
		t.Errorf("Handle() after Close = %v, want ErrClosed", err)
	}
	if err := h.Flush(); !errors.Is(err, handler.ErrClosed) {
		t.Errorf("Flush() after Close = %v, want ErrClosed", err)
	}
	if got := h.Stats().FailedTotal; got != 1 {
		t.Errorf("FailedTotal = %d, want 1", got)
	}
}
