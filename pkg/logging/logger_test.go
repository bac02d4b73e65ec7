package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()

	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Failed to unmarshal log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"Info", InfoLevel},
		{" warn ", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"invalid", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDomainFields(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"Node", Node("Alicia"), "node", "Alicia"},
		{"Variant", Variant("weighted"), "variant", "weighted"},
		{"Score", Score(0.5), "score", 0.5},
		{"Reachable", Reachable(4), "reachable", 4},
		{"RunID", RunID("abc"), "run_id", "abc"},
		{"Workers", Workers(8), "workers", 8},
		{"Count", Count(3), "count", 3},
		{"Latency", Latency(2 * time.Second), "latency", "2s"},
		{"Error", Error(errors.New("boom")), "error", "boom"},
		{"ErrorNil", Error(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key || tt.field.Value != tt.value {
				t.Errorf("%s = %+v, want {Key:%s Value:%v}", tt.name, tt.field, tt.key, tt.value)
			}
		})
	}
}

func TestJSONLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("node scored", Node("A"), Score(0.5))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Level != "INFO" {
		t.Errorf("Level = %v, want INFO", entry.Level)
	}
	if entry.Message != "node scored" {
		t.Errorf("Message = %v, want 'node scored'", entry.Message)
	}
	if entry.Fields["node"] != "A" {
		t.Errorf("Fields[node] = %v, want A", entry.Fields["node"])
	}
	if entry.Fields["score"] != 0.5 {
		t.Errorf("Fields[score] = %v, want 0.5", entry.Fields["score"])
	}
	if entry.Time == "" {
		t.Error("Time field is empty")
	}
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != "WARN" || entries[1].Level != "ERROR" {
		t.Errorf("Levels = %s,%s, want WARN,ERROR", entries[0].Level, entries[1].Level)
	}
}

func TestJSONLogger_NoFieldsOmitted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("bare")

	if strings.Contains(buf.String(), "fields") {
		t.Errorf("Expected no fields key, got %s", buf.String())
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(RunID("run-1"), Variant("unweighted"))
	child.Info("ranking completed", Count(8))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	fields := entries[0].Fields
	if fields["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", fields["run_id"])
	}
	if fields["variant"] != "unweighted" {
		t.Errorf("variant = %v, want unweighted", fields["variant"])
	}
	if fields["count"] != float64(8) {
		t.Errorf("count = %v, want 8", fields["count"])
	}
}

func TestJSONLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.SetLevel(ErrorLevel)
	if logger.GetLevel() != ErrorLevel {
		t.Errorf("After SetLevel, level = %v, want ErrorLevel", logger.GetLevel())
	}

	logger.Info("info")
	if buf.Len() != 0 {
		t.Error("Expected no output for Info at ErrorLevel")
	}

	logger.Error("error")
	if buf.Len() == 0 {
		t.Error("Expected output for Error at ErrorLevel")
	}
}

func TestJSONLogger_ConcurrentChildren(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			child := logger.With(Workers(worker))
			for j := 0; j < 25; j++ {
				child.Info("tick")
			}
		}(i)
	}
	wg.Wait()

	// Every line must still be a complete JSON object
	entries := decodeLines(t, &buf)
	if len(entries) != 200 {
		t.Errorf("Expected 200 entries, got %d", len(entries))
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		env      string
		fallback Level
		expected Level
	}{
		{"", InfoLevel, InfoLevel},
		{"", ErrorLevel, ErrorLevel},
		{"debug", InfoLevel, DebugLevel},
		{"WARN", InfoLevel, WarnLevel},
		{"bogus", ErrorLevel, InfoLevel},
	}

	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.env)
		if got := LevelFromEnv(tt.fallback); got != tt.expected {
			t.Errorf("LevelFromEnv(%v) with LOG_LEVEL=%q = %v, want %v", tt.fallback, tt.env, got, tt.expected)
		}
	}
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	timer := StartTimer(logger, "ranking", Variant("weighted"))
	timer.End(Count(10))
	StartTimer(logger, "ranking").EndError(errors.New("cancelled"))

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if _, ok := entries[0].Fields["latency"]; !ok {
		t.Error("Expected latency field on End")
	}
	if entries[0].Fields["count"] != float64(10) {
		t.Errorf("count = %v, want 10", entries[0].Fields["count"])
	}
	if entries[1].Level != "ERROR" || entries[1].Fields["error"] != "cancelled" {
		t.Errorf("EndError entry = %+v", entries[1])
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("ignored")
	if logger.With(Node("A")) == nil {
		t.Error("NopLogger.With returned nil")
	}
	if logger.GetLevel() != InfoLevel {
		t.Errorf("NopLogger level = %v, want InfoLevel", logger.GetLevel())
	}
}
