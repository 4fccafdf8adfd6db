package sloghandler

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/dbglog/core"
)

// SlogHandler implements slog.Handler on top of a dbglog sink, so
// libraries logging through log/slog share the sink's threshold and
// output. Attributes are rendered as key=value pairs after the message.
type SlogHandler struct {
	sink  core.Sink
	attrs []byte // pre-rendered " k=v" pairs from WithAttrs
	group string
}

// New creates a slog.Handler writing to sink.
func New(sink core.Sink) *SlogHandler {
	return &SlogHandler{sink: sink}
}

// FromSlogLevel maps slog levels onto dbglog levels. Each slog level
// step between Info and Error selects the next dbglog sublevel, so
// slog.LevelInfo is Info1, LevelInfo+1 is Info2, LevelWarn is Warn1 and
// so on. Anything below Info is Debug; anything from LevelError+4 up is
// Fatal.
func FromSlogLevel(level slog.Level) core.Level {
	switch {
	case level < slog.LevelInfo:
		return core.Debug
	case level >= slog.LevelError+4:
		return core.Fatal
	default:
		return core.Info1 + core.Level(level-slog.LevelInfo)
	}
}

// ToSlogLevel is the inverse of FromSlogLevel for defined levels.
func ToSlogLevel(l core.Level) slog.Level {
	switch {
	case l <= core.Debug:
		return slog.LevelDebug
	case l >= core.Fatal:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo + slog.Level(l-core.Info1)
	}
}

// Enabled reports whether the sink accepts records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.sink.CheckLevel(FromSlogLevel(level))
}

// Handle renders the record and delivers it to the sink.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	buf := make([]byte, 0, len(record.Message)+len(s.attrs)+64)
	buf = append(buf, record.Message...)
	buf = append(buf, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, s.group, a)
		return true
	})

	s.sink.Log(FromSlogLevel(record.Level), string(buf), recordLocation(record))
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := make([]byte, len(s.attrs), len(s.attrs)+16*len(attrs))
	copy(rendered, s.attrs)
	for _, a := range attrs {
		rendered = appendAttr(rendered, s.group, a)
	}
	return &SlogHandler{
		sink:  s.sink,
		attrs: rendered,
		group: s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		sink:  s.sink,
		attrs: s.attrs,
		group: newGroup,
	}
}

// recordLocation resolves the record's program counter into a Location.
func recordLocation(r slog.Record) core.Location {
	if r.PC == 0 {
		return core.Location{}
	}
	frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
	loc := core.Location{File: frame.File, Func: frame.Function, Line: frame.Line}
	if i := strings.LastIndexByte(loc.Func, '/'); i >= 0 {
		loc.Func = loc.Func[i+1:]
	}
	return loc
}

// appendAttr renders " key=value", prefixing the key with group.
// Group-valued attributes are flattened with dotted keys.
func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, key, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, key...)
	buf = append(buf, '=')
	return appendValue(buf, a.Value)
}

func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if needsQuoting(s) {
			return strconv.AppendQuote(buf, s)
		}
		return append(buf, s...)
	case slog.KindInt64:
		return strconv.AppendInt(buf, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(buf, v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.AppendFloat(buf, v.Float64(), 'g', -1, 64)
	case slog.KindBool:
		return strconv.AppendBool(buf, v.Bool())
	case slog.KindDuration:
		return append(buf, v.Duration().String()...)
	case slog.KindTime:
		return v.Time().AppendFormat(buf, time.RFC3339Nano)
	default:
		s := v.String()
		if needsQuoting(s) {
			return strconv.AppendQuote(buf, s)
		}
		return append(buf, s...)
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c == '=' || c == '"' || c >= 0x7f {
			return true
		}
	}
	return false
}
