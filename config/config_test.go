package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var s Settings
	s.ApplyDefaults()

	if s.Name != "pipeline" {
		t.Errorf("Name = %q, want %q", s.Name, "pipeline")
	}
	if s.MaxLoopsAllowed != 10 {
		t.Errorf("MaxLoopsAllowed = %d, want 10", s.MaxLoopsAllowed)
	}
	if s.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", s.Logging.Level, "info")
	}
}

func TestValidateRejectsNegativeMaxLoops(t *testing.T) {
	s := Settings{Name: "rag", MaxLoopsAllowed: -1}
	s.Logging.ApplyDefaults()

	if err := s.Validate(); err == nil {
		t.Fatal("expected validation error for negative max_loops_allowed")
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	s := Settings{Name: "rag", MaxLoopsAllowed: 1}
	s.Logging.ApplyDefaults()
	s.Logging.Level = "shout"

	err := s.Validate()
	if err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("error %q does not mention logging.level", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `name: indexing
max_loops_allowed: 3
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(LoaderConfig{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "indexing" {
		t.Errorf("Name = %q, want %q", s.Name, "indexing")
	}
	if s.MaxLoopsAllowed != 3 {
		t.Errorf("MaxLoopsAllowed = %d, want 3", s.MaxLoopsAllowed)
	}
	if s.Logging.Level != "debug" || s.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", s.Logging)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("name: indexing\nmax_loops_allowed: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HAYSTACK_MAX_LOOPS_ALLOWED", "7")

	s, err := Load(LoaderConfig{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.MaxLoopsAllowed != 7 {
		t.Errorf("MaxLoopsAllowed = %d, want env override 7", s.MaxLoopsAllowed)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})

	s, err := Load(LoaderConfig{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "pipeline" || s.MaxLoopsAllowed != 10 {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("max_loops_allowed: {broken\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(LoaderConfig{ConfigFile: path}); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
