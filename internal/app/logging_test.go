package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	if LogLevelWarn.String() != "WARN" {
		t.Errorf("LogLevelWarn.String() = %q", LogLevelWarn.String())
	}
	if LogLevel(99).String() != "UNKNOWN" {
		t.Errorf("LogLevel(99).String() = %q", LogLevel(99).String())
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "keycalc"})

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("shown %d", 1)
	logger.Error("shown %s", "two")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "[WARN] keycalc: shown 1") {
		t.Errorf("missing warning: %q", out)
	}
	if !strings.Contains(out, "[ERROR] keycalc: shown two") {
		t.Errorf("missing error: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	logger := root.WithComponent("keypad").WithFields(map[string]any{"b": 2, "a": 1})

	logger.Info("drawn")

	if !strings.HasSuffix(buf.String(), "drawn {a=1, b=2, component=keypad}\n") {
		t.Errorf("fields not sorted or missing: %q", buf.String())
	}

	buf.Reset()
	root.Info("plain")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("parent logger gained fields: %q", buf.String())
	}
}

func TestLoggerSetLevelShared(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})
	child := root.WithComponent("app")

	root.SetLevel(LogLevelDebug)
	if !child.Enabled(LogLevelDebug) {
		t.Error("child should follow the root level")
	}
	child.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("discarded")
	NullLogger.WithComponent("x").Info("discarded")
	NullLogger.SetLevel(LogLevelDebug)

	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger should never be enabled")
	}
}
