package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/philipp01105/dbglog/core"
)

var testTime = time.Date(2026, 2, 18, 13, 0, 0, 123456*1000, time.UTC)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{
		Time:    testTime,
		Level:   core.Info1,
		Thread:  "12",
		Message: "test message",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got, want := string(result), "2026-02-18 13:00:00 12 I1: test message\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_Precision(t *testing.T) {
	f := NewTextFormatter(Config{TimePrecision: 6})

	entry := &core.Entry{Time: testTime, Level: core.Err2, Message: "x"}
	result, _ := f.Format(entry)
	if got, want := string(result), "2026-02-18 13:00:00.123456 E2: x\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_UnknownLevel(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := &core.Entry{Time: testTime, Level: core.Level(99), Message: "odd"}
	result, _ := f.Format(entry)
	if !strings.Contains(string(result), " ??: odd") {
		t.Errorf("Expected unknown code in output, got: %s", result)
	}
}

func TestTextFormatter_WithLocation(t *testing.T) {
	f := NewTextFormatter(Config{IncludeLocation: true, Name: "svc"})

	entry := &core.Entry{
		Time:    testTime,
		Level:   core.Warn1,
		Thread:  "worker",
		Message: "test",
		Location: core.Location{
			File: "/path/to/file.go",
			Func: "main.main",
			Line: 123,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "2026-02-18 13:00:00 worker W1 [svc]: test {/path/to/file.go:main.main():123}\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestTextFormatter_FormatToAndEntry(t *testing.T) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{Time: testTime, Level: core.Info2, Message: "same"}

	want, _ := f.Format(entry)

	var w bytes.Buffer
	if err := f.FormatTo(entry, &w); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	var b bytes.Buffer
	f.FormatEntry(entry, &b)

	if w.String() != string(want) || b.String() != string(want) {
		t.Errorf("outputs differ: Format=%q FormatTo=%q FormatEntry=%q", want, w.String(), b.String())
	}
}

func TestTextFormatter_UTC(t *testing.T) {
	loc := time.FixedZone("X", 3*60*60)
	f := NewTextFormatter(Config{UTC: true})
	entry := &core.Entry{Time: testTime.In(loc), Level: core.Info1, Message: "m"}
	result, _ := f.Format(entry)
	if !strings.HasPrefix(string(result), "2026-02-18 13:00:00 ") {
		t.Errorf("Expected UTC timestamp, got: %s", result)
	}
}

func TestJSONFormatter_Basic(t *testing.T) {
	f := NewJSONFormatter(Config{TimePrecision: 3})

	entry := &core.Entry{
		Time:    testTime,
		Level:   core.Info4,
		Thread:  "3",
		Message: "test \"quoted\"\nmessage",
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["time"] != "2026-02-18 13:00:00.123" {
		t.Errorf("Expected time with millis, got: %v", data["time"])
	}
	if data["level"] != "I4" {
		t.Errorf("Expected level 'I4', got: %v", data["level"])
	}
	if data["thread"] != "3" {
		t.Errorf("Expected thread '3', got: %v", data["thread"])
	}
	if data["message"] != "test \"quoted\"\nmessage" {
		t.Errorf("Expected escaped message round trip, got: %v", data["message"])
	}
	if _, ok := data["location"]; ok {
		t.Error("location must be omitted when IncludeLocation is false")
	}
}

func TestJSONFormatter_WithLocation(t *testing.T) {
	f := NewJSONFormatter(Config{IncludeLocation: true, Name: "api"})

	entry := &core.Entry{
		Time:    testTime,
		Level:   core.Fatal,
		Message: "test",
		Location: core.Location{
			File: "/path/to/file.go",
			Func: "main.main",
			Line: 123,
		},
	}

	result, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if data["name"] != "api" {
		t.Errorf("Expected name='api', got: %v", data["name"])
	}
	loc, ok := data["location"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected location object in JSON")
	}
	if loc["file"] != "/path/to/file.go" {
		t.Errorf("Expected file='/path/to/file.go', got: %v", loc["file"])
	}
	if loc["func"] != "main.main" {
		t.Errorf("Expected func='main.main', got: %v", loc["func"])
	}
	if loc["line"] != float64(123) {
		t.Errorf("Expected line=123, got: %v", loc["line"])
	}
}

func TestJSONFormatter_ControlCharacters(t *testing.T) {
	f := NewJSONFormatter(Config{})
	entry := &core.Entry{Time: testTime, Level: core.Debug, Message: "a\x01b\tc\\"}
	result, _ := f.Format(entry)

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatalf("Invalid JSON: %v (%s)", err, result)
	}
	if data["message"] != "a\x01b\tc\\" {
		t.Errorf("message did not round trip: %q", data["message"])
	}
}

func TestJSONFormatter_InvalidUTF8(t *testing.T) {
	f := NewJSONFormatter(Config{})
	entry := &core.Entry{Time: testTime, Level: core.Warn1, Message: "bad\xffbyte \xe2\x82 caf\u00e9"}
	result, _ := f.Format(entry)

	if !utf8.Valid(result) {
		t.Fatalf("output is not valid UTF-8: %q", result)
	}
	if !bytes.Contains(result, []byte(`"message":"bad\ufffdbyte \ufffd\ufffd café"`)) {
		t.Errorf("invalid bytes not replaced: %s", result)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(result, &data); err != nil {
		t.Fatal(err)
	}
	if data["message"] != "bad\ufffdbyte \ufffd\ufffd café" {
		t.Errorf("message = %q", data["message"])
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{TimePrecision: 3, IncludeLocation: true})
	entry := &core.Entry{
		Time:     time.Now(),
		Level:    core.Info1,
		Thread:   "1",
		Message:  "test message",
		Location: core.Location{File: "main.go", Func: "main.main", Line: 10},
	}

	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatEntry(entry, &buf)
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{TimePrecision: 3, IncludeLocation: true})
	entry := &core.Entry{
		Time:     time.Now(),
		Level:    core.Info1,
		Thread:   "1",
		Message:  "test message",
		Location: core.Location{File: "main.go", Func: "main.main", Line: 10},
	}

	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatEntry(entry, &buf)
	}
}
