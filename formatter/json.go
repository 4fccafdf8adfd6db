package formatter

import (
	"bytes"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/timefmt"
)

// JSONFormatter formats log entries as one JSON object per line
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatJSONToBuffer(entry, buf)
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	t := entry.Time
	if f.UTC {
		t = t.UTC()
	}

	buf.WriteString(`{"time":"`)
	buf.Write(timefmt.Append(buf.AvailableBuffer(), t, f.TimePrecision))
	buf.WriteByte('"')

	if entry.Thread != "" {
		buf.WriteString(`,"thread":"`)
		appendJSONString(buf, entry.Thread)
		buf.WriteByte('"')
	}

	// Level codes never need escaping
	buf.WriteString(`,"level":"`)
	buf.WriteString(entry.Level.Code())
	buf.WriteByte('"')

	if f.Name != "" {
		buf.WriteString(`,"name":"`)
		appendJSONString(buf, f.Name)
		buf.WriteByte('"')
	}

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, entry.Message)
	buf.WriteByte('"')

	if f.IncludeLocation && !entry.Location.IsZero() {
		buf.WriteString(`,"location":{"file":"`)
		appendJSONString(buf, entry.Location.File)
		buf.WriteString(`","func":"`)
		appendJSONString(buf, entry.Location.Func)
		buf.WriteString(`","line":`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Location.Line), 10))
		buf.WriteByte('}')
	}

	buf.WriteString("}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer.
// Invalid UTF-8 is replaced with U+FFFD, as encoding/json does.
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				buf.WriteString(s[start:i])
				buf.WriteString(`\ufffd`)
				i += size
				start = i
				continue
			}
			i += size
			continue
		}
		if c >= 0x20 && c != '"' && c != '\\' {
			i++
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		i++
		start = i
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
