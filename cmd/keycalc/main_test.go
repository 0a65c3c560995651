package main

import (
	"testing"

	"github.com/dshills/keycalc/internal/app"
)

func TestValidLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"", true},
		{"debug", true},
		{"INFO", true},
		{"warn", true},
		{"warning", true},
		{"Warning", true},
		{"error", true},
		{"trace", false},
		{"verbose", false},
	}

	for _, tt := range tests {
		if got := validLogLevel(tt.level); got != tt.want {
			t.Errorf("validLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestValidLogLevelMatchesParse(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "WARNING"} {
		if !validLogLevel(level) {
			t.Errorf("validLogLevel(%q) = false", level)
		}
		if level != "info" && app.ParseLogLevel(level) == app.LogLevelInfo {
			t.Errorf("ParseLogLevel(%q) fell back to info", level)
		}
	}
}
