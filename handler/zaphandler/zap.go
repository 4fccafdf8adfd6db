package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/dbglog/core"
)

// ZapHandler forwards entries to a zap.Logger. The dbglog level code,
// thread label and call site are attached as fields; the timestamp of
// the entry is preserved.
type ZapHandler struct {
	zc zapcore.Core
}

// New wraps l. The logger's own level filtering still applies after the
// dbglog threshold.
func New(l *zap.Logger) *ZapHandler {
	return &ZapHandler{zc: l.Core()}
}

// ToZapLevel maps a dbglog level onto the coarser zap levels. Fatal maps
// to ErrorLevel because dbglog never exits the process on its own.
func ToZapLevel(l core.Level) zapcore.Level {
	switch {
	case l <= core.Debug:
		return zapcore.DebugLevel
	case l <= core.Info4:
		return zapcore.InfoLevel
	case l <= core.Warn4:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Handle writes the entry through the zap core.
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ze := zapcore.Entry{
		Level:   ToZapLevel(entry.Level),
		Time:    entry.Time,
		Message: entry.Message,
	}
	if !entry.Location.IsZero() {
		ze.Caller = zapcore.EntryCaller{
			Defined:  true,
			File:     entry.Location.File,
			Line:     entry.Location.Line,
			Function: entry.Location.Func,
		}
	}

	ce := h.zc.Check(ze, nil)
	if ce == nil {
		return nil
	}

	fields := make([]zapcore.Field, 0, 2)
	fields = append(fields, zap.String("code", entry.Level.Code()))
	if entry.Thread != "" {
		fields = append(fields, zap.String("thread", entry.Thread))
	}
	// Write cannot report errors; zap routes them to its ErrorOutput.
	ce.Write(fields...)
	return nil
}

// Close flushes the zap core.
func (h *ZapHandler) Close() error {
	return h.zc.Sync()
}
