package logger

import (
	"os"

	"github.com/philipp01105/dbglog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	Debug = core.Debug
	Info1 = core.Info1
	Info2 = core.Info2
	Info3 = core.Info3
	Info4 = core.Info4
	Warn1 = core.Warn1
	Warn2 = core.Warn2
	Warn3 = core.Warn3
	Warn4 = core.Warn4
	Err1  = core.Err1
	Err2  = core.Err2
	Err3  = core.Err3
	Err4  = core.Err4
	Fatal = core.Fatal
)

// ParseLevel converts a name or code to a Level, returning fallback when
// s is not recognized.
func ParseLevel(s string, fallback Level) Level {
	if l, ok := core.ParseLevel(s); ok {
		return l
	}
	return fallback
}

// LevelFromEnv reads a threshold from the environment variable name,
// returning fallback when it is unset or unrecognized.
func LevelFromEnv(name string, fallback Level) Level {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	return ParseLevel(v, fallback)
}
