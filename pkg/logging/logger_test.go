package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func parseEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Log line is not valid JSON: %v (%s)", err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown")
	logger.Warn("also shown")
	logger.Error("error shown")

	entries := parseEntries(t, &buf)
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries (debug filtered), got %d", len(entries))
	}
	if entries[0]["level"] != "INFO" || entries[0]["message"] != "shown" {
		t.Errorf("Unexpected first entry: %v", entries[0])
	}
	if entries[2]["level"] != "ERROR" {
		t.Errorf("Expected ERROR level, got %v", entries[2]["level"])
	}
}

func TestJSONLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("with fields",
		String("lab", "interconnection-lab"),
		Int("count", 3),
		Bool("ok", true),
		Duration("elapsed", 250*time.Millisecond),
		Error(errors.New("boom")),
	)

	entries := parseEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	fields, ok := entries[0]["fields"].(map[string]any)
	if !ok {
		t.Fatalf("Missing fields object: %v", entries[0])
	}
	if fields["lab"] != "interconnection-lab" {
		t.Errorf("Expected lab field, got %v", fields["lab"])
	}
	if fields["count"] != float64(3) {
		t.Errorf("Expected count 3, got %v", fields["count"])
	}
	if fields["error"] != "boom" {
		t.Errorf("Expected error field boom, got %v", fields["error"])
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := NewJSONLogger(&buf, InfoLevel)
	child := base.With(Component("api"), SessionID("sess-1"))

	child.Info("scoped")
	base.Info("unscoped")

	entries := parseEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	fields, _ := entries[0]["fields"].(map[string]any)
	if fields["component"] != "api" || fields["session_id"] != "sess-1" {
		t.Errorf("Child logger missing preset fields: %v", fields)
	}
	if _, ok := entries[1]["fields"]; ok {
		t.Error("Parent logger must not inherit child fields")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"nonsense", InfoLevel},
		{"", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, ErrorLevel)

	logger.Info("filtered")
	logger.SetLevel(DebugLevel)
	logger.Debug("now visible")

	entries := parseEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0]["message"] != "now visible" {
		t.Errorf("Unexpected entry: %v", entries[0])
	}
}
