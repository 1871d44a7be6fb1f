package app

import (
	"strings"
	"testing"
)

func TestLoggerLevelFilter(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown warn")
	log.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low levels leaked: %q", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("high levels missing: %q", out)
	}
}

func TestLoggerFieldsAndPrefix(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "edlite"})

	log.WithComponent("session").Info("opened %s", "a.txt")

	out := buf.String()
	if !strings.Contains(out, "edlite: opened a.txt") {
		t.Errorf("prefix or message missing: %q", out)
	}
	if !strings.Contains(out, "component=session") {
		t.Errorf("field missing: %q", out)
	}
}

func TestLoggerDisable(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	log.Disable()
	log.Error("never")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"ERROR", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
