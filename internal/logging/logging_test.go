package logging

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected LogLevel
	}{
		{name: "Debug", input: "debug", expected: LevelDebug},
		{name: "Info", input: "info", expected: LevelInfo},
		{name: "Warn", input: "warn", expected: LevelWarn},
		{name: "Warning alias", input: "warning", expected: LevelWarn},
		{name: "Error", input: "error", expected: LevelError},
		{name: "Case insensitive", input: "DEBUG", expected: LevelDebug},
		{name: "Unknown defaults to info", input: "trace", expected: LevelInfo},
		{name: "Empty defaults to info", input: "", expected: LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLogLevelOrdering(t *testing.T) {
	levels := []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError}
	for i := 0; i < len(levels)-1; i++ {
		if levels[i] >= levels[i+1] {
			t.Errorf("log levels should ascend: %v >= %v", levels[i], levels[i+1])
		}
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LogLevel(42), "unknown(42)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

// TestLoggingFunctions verifies the logging functions don't panic.
func TestLoggingFunctions(t *testing.T) {
	Debug("debug %s", "message")
	Info("info %s", "message")
	Warn("warn %s", "message")
	Error("error %s", "message")
}
