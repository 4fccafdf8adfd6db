package core

import "strings"

// Level represents the severity level of a log statement. Levels are
// totally ordered; a sink enables every level at or above its threshold.
type Level int8

const (
	// Debug for detailed debugging information
	Debug Level = iota
	// Info1 is the least severe informational level
	Info1
	Info2
	Info3
	// Info4 is the most severe informational level
	Info4
	Warn1
	Warn2
	Warn3
	Warn4
	Err1
	Err2
	Err3
	Err4
	// Fatal for unrecoverable conditions. Logging at Fatal does not exit.
	Fatal
)

// NumLevels is the number of defined levels.
const NumLevels = int(Fatal) + 1

// UnknownCode is rendered for values outside the enumeration.
const UnknownCode = "??"

var levelCodes = [NumLevels]string{
	Debug: "DD",
	Info1: "I1",
	Info2: "I2",
	Info3: "I3",
	Info4: "I4",
	Warn1: "W1",
	Warn2: "W2",
	Warn3: "W3",
	Warn4: "W4",
	Err1:  "E1",
	Err2:  "E2",
	Err3:  "E3",
	Err4:  "E4",
	Fatal: "FF",
}

var levelNames = [NumLevels]string{
	Debug: "debug",
	Info1: "info1",
	Info2: "info2",
	Info3: "info3",
	Info4: "info4",
	Warn1: "warn1",
	Warn2: "warn2",
	Warn3: "warn3",
	Warn4: "warn4",
	Err1:  "err1",
	Err2:  "err2",
	Err3:  "err3",
	Err4:  "err4",
	Fatal: "fatal",
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= Debug && l <= Fatal
}

// Code returns the fixed two-character code used in output lines, or
// UnknownCode for values outside the enumeration.
func (l Level) Code() string {
	if !l.Valid() {
		return UnknownCode
	}
	return levelCodes[l]
}

// String returns the lowercase level name
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}

// Levels returns all defined levels in ascending order.
func Levels() []Level {
	out := make([]Level, NumLevels)
	for i := range out {
		out[i] = Level(i)
	}
	return out
}

// ParseLevel converts a level name ("warn2") or code ("W2") to a Level.
// Matching is case insensitive. A few common aliases are accepted for the
// first level of each group.
func ParseLevel(s string) (Level, bool) {
	s = strings.TrimSpace(s)
	for i := 0; i < NumLevels; i++ {
		if strings.EqualFold(s, levelNames[i]) || strings.EqualFold(s, levelCodes[i]) {
			return Level(i), true
		}
	}
	switch strings.ToLower(s) {
	case "info":
		return Info1, true
	case "warn", "warning":
		return Warn1, true
	case "err", "error":
		return Err1, true
	}
	return Debug, false
}
