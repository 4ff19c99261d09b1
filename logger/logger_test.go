package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stderr" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Fatal("expected timestamp enabled by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Level: "loud", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid level")
	}
	cfg = &Config{Level: "debug", Format: "carrier-pigeon"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid format")
	}
	cfg = &Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf)
	log.Info("component executed", Fields(FieldComponent, "adder", FieldVisits, 2))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry[FieldComponent] != "adder" {
		t.Fatalf("expected component field, got %v", entry)
	}
	if entry[FieldVisits] != float64(2) {
		t.Fatalf("expected visits field, got %v", entry)
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf).WithComponent("double")
	log.Error("bad output")

	if !strings.Contains(buf.String(), `"component":"double"`) {
		t.Fatalf("expected component tag, got %q", buf.String())
	}
}

func TestNop_Discards(t *testing.T) {
	// Must not panic and must not write anywhere.
	Nop().Info("ignored", Fields("k", "v"))
}
