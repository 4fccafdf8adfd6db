package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/timefmt"
)

// TextFormatter formats log entries as human-readable lines:
//
//	2026-02-18 13:00:00.123 7 I3 [name]: message {file:func():line}
//
// The thread label, name and location are omitted when empty or disabled.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry as text into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, buf)
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	t := entry.Time
	if f.UTC {
		t = t.UTC()
	}
	buf.Write(timefmt.Append(buf.AvailableBuffer(), t, f.TimePrecision))

	if entry.Thread != "" {
		buf.WriteByte(' ')
		buf.WriteString(entry.Thread)
	}

	buf.WriteByte(' ')
	buf.WriteString(entry.Level.Code())

	if f.Name != "" {
		buf.WriteString(" [")
		buf.WriteString(f.Name)
		buf.WriteByte(']')
	}

	buf.WriteString(": ")
	buf.WriteString(entry.Message)

	if f.IncludeLocation && !entry.Location.IsZero() {
		buf.WriteByte(' ')
		buf.Write(entry.Location.AppendTo(buf.AvailableBuffer()))
	}

	buf.WriteByte('\n')
}
