package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port     int           `env:"TEST_PORT" envDefault:"123"`
	Interval time.Duration `env:"TEST_INTERVAL" envDefault:"100ms"`
	Phrases  []string      `env:"TEST_PHRASES" envSeparator:"|"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("Port = %d, want 123", cfg.Port)
	}
	if cfg.Interval != 100*time.Millisecond {
		t.Fatalf("Interval = %v, want 100ms", cfg.Interval)
	}
}

func TestParseEnvReadsPrefixedNames(t *testing.T) {
	t.Setenv("TEST_PORT", "1")
	t.Setenv("DATALAB_TEST_PORT", "9000")
	t.Setenv("DATALAB_TEST_PHRASES", "a|b c")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("Port = %d, want 9000", cfg.Port)
	}
	if len(cfg.Phrases) != 2 || cfg.Phrases[1] != "b c" {
		t.Fatalf("Phrases = %q, want [a, b c]", cfg.Phrases)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DATALAB_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
