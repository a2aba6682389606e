package utils

import (
	"bytes"
	"strings"
	"testing"
)

func captureLog(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	oldWriter, oldLevel, oldFile := LogWriter, GlobalLogLevel, LogFile
	LogWriter, GlobalLogLevel, LogFile = &buf, level, false
	t.Cleanup(func() {
		LogWriter, GlobalLogLevel, LogFile = oldWriter, oldLevel, oldFile
	})
	return &buf
}

func TestParseLogLevel(t *testing.T) {
	expected := map[string]LogLevel{
		"error":  LogLevelError,
		"info":   LogLevelError | LogLevelInfo,
		"NOTICE": LogLevelError | LogLevelInfo | LogLevelNotice,
		"debug":  LogLevelError | LogLevelInfo | LogLevelNotice | LogLevelDebug,
	}
	for name, want := range expected {
		level, err := ParseLogLevel(name)
		if err != nil {
			t.Fatal(err)
		}
		if level != want {
			t.Errorf("%s: expected %b, got %b", name, want, level)
		}
	}

	if _, err := ParseLogLevel("trace"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLogLevels(t *testing.T) {
	buf := captureLog(t, LogLevelError|LogLevelInfo)

	Errorf("Test", "error %d", 1)
	Logf("Test", "info %d", 2)
	Noticef("Test", "notice %d", 3)
	Debugf("Test", "debug %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], " [Test] ERROR error 1") {
		t.Errorf("unexpected line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " [Test] INFO info 2") {
		t.Errorf("unexpected line %q", lines[1])
	}
	if IsLogLevelDebug() {
		t.Error("debug enabled")
	}
}

func TestLogFile(t *testing.T) {
	buf := captureLog(t, LogLevelDebug)
	LogFile = true

	Debugf("Test", "with source")

	if !strings.Contains(buf.String(), " logger_test.go:") {
		t.Fatalf("expected source location, got %q", buf.String())
	}
}

func TestPanicf(t *testing.T) {
	buf := captureLog(t, 0)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.HasSuffix(r.(string), "PANIC value 42") {
			t.Errorf("unexpected panic value %q", r)
		}
		// panics are printed regardless of level
		if !strings.Contains(buf.String(), "PANIC value 42") {
			t.Errorf("panic not logged: %q", buf.String())
		}
	}()
	Panicf("value %d", 42)
}
