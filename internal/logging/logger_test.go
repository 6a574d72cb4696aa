package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
}

func TestLog_ConsoleThresholdAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Console: &buf, ConsoleLevel: LevelInfo})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.now = fixedClock

	l.Debug(ActionSkip, "hidden", nil)
	l.Info(ActionMatch, "window found", map[string]any{
		"window":  42,
		"process": "Notes.exe",
		"err":     errors.New("boom"),
	})

	got := buf.String()
	want := "2026-03-04 05:06:07 INFO [MATCH] window found err=\"boom\" process=\"Notes.exe\" window=42\n"
	if got != want {
		t.Fatalf("unexpected console output:\n got: %q\nwant: %q", got, want)
	}
}

func TestLog_NilLoggerIsNoop(t *testing.T) {
	var l *Logger
	l.Info(ActionApply, "ignored", nil)
	if err := l.Close(); err != nil {
		t.Fatalf("close nil logger: %v", err)
	}
}

func TestLog_FileSinkRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "winplace.log")

	l, err := New(Config{FilePath: path, FileLevel: LevelDebug, MaxSizeMB: 1, MaxFiles: 2})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer l.Close()

	// Force the next write to rotate.
	l.currentSize = 1024 * 1024
	l.Debug(ActionSkip, "after rotation", nil)

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "after rotation") {
		t.Fatalf("expected new entry in fresh log, got %q", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"warn":    LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
