package internal

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestLoggerFiltersByLevel(t *testing.T) {
	l := NewLogger(LogLevelWarn)
	if l.GetLevel() != LogLevelWarn {
		t.Errorf("GetLevel = %d, want %d", l.GetLevel(), LogLevelWarn)
	}

	out := captureOutput(t, func() {
		l.Error("broke: %d", 1)
		l.Warn("careful")
		l.Info("hidden")
		l.Debug("hidden too")
	})

	if !strings.Contains(out, "[ERROR] broke: 1") {
		t.Errorf("missing error line in %q", out)
	}
	if !strings.Contains(out, "[WARN] careful") {
		t.Errorf("missing warn line in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("info/debug leaked through warn level: %q", out)
	}
}

func TestLoggerComponentPrefix(t *testing.T) {
	l := NewLogger(LogLevelInfo).With("Pipeline")

	out := captureOutput(t, func() {
		l.Info("ingested %d rows", 3)
	})
	if !strings.Contains(out, "[INFO] [Pipeline] ingested 3 rows") {
		t.Errorf("missing component prefix in %q", out)
	}
}

func TestNewDefaultLoggerReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	if l := NewDefaultLogger(); l.GetLevel() != LogLevelDebug {
		t.Errorf("GetLevel = %d, want debug", l.GetLevel())
	}

	t.Setenv("LOG_LEVEL", "ERROR")
	if l := NewDefaultLogger(); l.GetLevel() != LogLevelError {
		t.Errorf("GetLevel = %d, want error", l.GetLevel())
	}

	t.Setenv("LOG_LEVEL", "")
	if l := NewDefaultLogger(); l.GetLevel() != LogLevelInfo {
		t.Errorf("GetLevel = %d, want info default", l.GetLevel())
	}
}
