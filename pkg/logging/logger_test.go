package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrefixWriter_CompleteLines(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	if _, err := pw.Write([]byte("one\ntwo\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got := out.String(); got != "> one\n> two\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrefixWriter_PartialLines(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	n, err := pw.Write([]byte("par"))
	if err != nil || n != 3 {
		t.Fatalf("Write = (%d, %v), want (3, nil)", n, err)
	}
	if out.Len() != 0 {
		t.Errorf("partial line written early: %q", out.String())
	}

	pw.Write([]byte("tial\ntail"))
	if got := out.String(); got != "> partial\n" {
		t.Errorf("output = %q", got)
	}

	if err := pw.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if got := out.String(); got != "> partial\n> tail\n" {
		t.Errorf("output after flush = %q", got)
	}
	if err := pw.Flush(); err != nil || out.Len() != len("> partial\n> tail\n") {
		t.Errorf("second flush changed output: %q", out.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		level string
		json  bool
	}{
		{input: "debug", level: "debug", json: false},
		{input: "json:trace", level: "trace", json: true},
		{input: "json", level: "info", json: true},
		{input: "JSON:warn", level: "warn", json: true},
		{input: "", level: "", json: false},
	}

	for _, tt := range tests {
		level, jsonFormat := ParseLevel(tt.input)
		if level != tt.level || jsonFormat != tt.json {
			t.Errorf("ParseLevel(%q) = (%q, %v), want (%q, %v)", tt.input, level, jsonFormat, tt.level, tt.json)
		}
	}
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	if got := GetLogLevel(); got != defaultLevel {
		t.Errorf("GetLogLevel() = %q, want %q", got, defaultLevel)
	}

	t.Setenv(LogLevelEnv, "trace")
	if got := GetLogLevel(); got != "trace" {
		t.Errorf("GetLogLevel() = %q, want trace", got)
	}
}

func TestEnvTrue(t *testing.T) {
	for value, want := range map[string]bool{
		"":      false,
		"1":     true,
		"true":  true,
		"yes":   true,
		"ON":    true,
		"0":     false,
		"nope":  false,
		"false": false,
	} {
		t.Setenv("BOOTLAUNCHER_TEST_FLAG", value)
		if got := EnvTrue("BOOTLAUNCHER_TEST_FLAG"); got != want {
			t.Errorf("EnvTrue(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestNewLogger_Text(t *testing.T) {
	t.Setenv(JSONLogEnv, "")
	var out bytes.Buffer

	logger := NewLogger("bootlauncher", "debug", &out)
	logger.Debug("stage reached", "state", "PINNED")

	line := out.String()
	if !strings.Contains(line, "stage reached") || !strings.Contains(line, "state=PINNED") {
		t.Errorf("unexpected log line: %q", line)
	}
	if !strings.HasPrefix(line, "[GO] ") && !strings.HasPrefix(line, "🐹 ") {
		t.Errorf("log line is missing the prefix: %q", line)
	}

	out.Reset()
	logger.Trace("hidden")
	if out.Len() != 0 {
		t.Errorf("trace logged at debug level: %q", out.String())
	}
}

func TestNewLogger_JSON(t *testing.T) {
	t.Setenv(JSONLogEnv, "1")
	var out bytes.Buffer

	logger := NewLogger("bootlauncher", "info", &out)
	logger.Info("spawned", "pid", 42)

	var entry map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out.String())
	}
	if entry["@message"] != "spawned" {
		t.Errorf("@message = %v", entry["@message"])
	}
	if entry["@module"] != "bootlauncher" {
		t.Errorf("@module = %v", entry["@module"])
	}
}
