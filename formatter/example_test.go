package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/dbglog/core"
	"github.com/philipp01105/dbglog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{
		TimePrecision: 3,
		Name:          "tiles",
	})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 250*int(time.Millisecond), time.UTC),
		Level:   core.Info3,
		Thread:  "4",
		Message: "hello world",
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// 2026-01-15 12:00:00.250 4 I3 [tiles]: hello world
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.Warn2,
		Thread:  "main",
		Message: "request handled",
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// {"time":"2026-01-15 12:00:00","thread":"main","level":"W2","message":"request handled"}
}
