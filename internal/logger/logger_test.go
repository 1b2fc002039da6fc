package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}
	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	if got := GetRequestID(ctx); got != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", got)
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("Expected empty request_id, got %s", got)
	}
}

func TestFromContextAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "text"}, &buf)

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithCharacterID(ctx, "char-9")
	FromContext(ctx).Info("advancing")

	out := buf.String()
	if !strings.Contains(out, "request_id=req-1") {
		t.Errorf("Expected request_id attribute, got %q", out)
	}
	if !strings.Contains(out, "character_id=char-9") {
		t.Errorf("Expected character_id attribute, got %q", out)
	}
}

func TestConfigLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for in, want := range cases {
		if got := (Config{Level: in}).LogLevel().String(); got != want {
			t.Errorf("LogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
