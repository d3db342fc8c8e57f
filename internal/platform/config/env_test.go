package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port  int  `env:"FIZZBEE_MBT_TEST_PORT" envDefault:"123"`
	Limit *int `env:"FIZZBEE_MBT_TEST_LIMIT"`
}

type prefixedConfig struct {
	Counters int `env:"COUNTERS" envDefault:"2"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Limit != nil {
		t.Fatalf("expected unset pointer to stay nil, got %d", *cfg.Limit)
	}
}

func TestParseEnvPointer(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FIZZBEE_MBT_TEST_LIMIT", "7")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit == nil || *cfg.Limit != 7 {
		t.Fatalf("expected limit 7, got %v", cfg.Limit)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FIZZBEE_MBT_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv("FIZZBEE_MBT_TEST_COUNTERS", "5")

	var cfg prefixedConfig
	if err := ParseEnvWithPrefix(&cfg, "FIZZBEE_MBT_TEST_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Counters != 5 {
		t.Fatalf("expected 5 counters, got %d", cfg.Counters)
	}

	t.Setenv("FIZZBEE_MBT_TEST_COUNTERS", "many")
	if err := ParseEnvWithPrefix(&cfg, "FIZZBEE_MBT_TEST_"); err == nil {
		t.Fatal("expected error")
	}
}
