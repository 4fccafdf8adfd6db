package core

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Location identifies the call site of a log statement. It is used only
// for attribution in output, never for control flow.
type Location struct {
	File string
	Func string
	Line int
}

// Caller captures the location of a caller. Caller(0) returns the location
// of the function that called Caller, Caller(1) that of its caller, and so
// on. An unavailable frame yields the zero Location.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = shortFuncName(fn.Name())
	}

	return Location{
		File: file,
		Func: funcName,
		Line: line,
	}
}

// shortFuncName strips the import path, leaving "pkg.Func" or
// "pkg.(*T).Method".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// IsZero reports whether the location was never captured.
func (l Location) IsZero() bool {
	return l.File == "" && l.Func == "" && l.Line == 0
}

// ShortFile returns the base name of File.
func (l Location) ShortFile() string {
	if l.File == "" {
		return ""
	}
	return filepath.Base(l.File)
}

// AppendTo appends the location as {file:func():line}.
func (l Location) AppendTo(dst []byte) []byte {
	dst = append(dst, '{')
	dst = append(dst, l.File...)
	dst = append(dst, ':')
	dst = append(dst, l.Func...)
	dst = append(dst, "():"...)
	dst = strconv.AppendInt(dst, int64(l.Line), 10)
	return append(dst, '}')
}

// String renders the location as {file:func():line}.
func (l Location) String() string {
	return string(l.AppendTo(make([]byte, 0, len(l.File)+len(l.Func)+16)))
}
