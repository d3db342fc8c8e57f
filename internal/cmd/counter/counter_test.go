package counter

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/exec"
	"testing"

	"github.com/louisbranch/fizzbee-mbt/mbt"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("FIZZBEE_MBT_COUNTERS", "")
	os.Unsetenv("FIZZBEE_MBT_COUNTERS")

	fs := flag.NewFlagSet("counter", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Counters != 2 {
		t.Fatalf("expected 2 counters, got %d", cfg.Counters)
	}
	if cfg.Options.MaxActions != nil || cfg.Options.MaxSeqRuns != nil || cfg.Options.MaxParallelRuns != nil {
		t.Fatalf("expected unset bounds, got %+v", cfg.Options)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("FIZZBEE_MBT_COUNTERS", "5")

	fs := flag.NewFlagSet("counter", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-max-actions", "0", "-max-seq-runs", "7"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Counters != 5 {
		t.Fatalf("expected counters from env, got %d", cfg.Counters)
	}
	if cfg.Options.MaxActions == nil || *cfg.Options.MaxActions != 0 {
		t.Fatalf("expected explicit zero max actions, got %v", cfg.Options.MaxActions)
	}
	if cfg.Options.MaxSeqRuns == nil || *cfg.Options.MaxSeqRuns != 7 {
		t.Fatalf("expected max seq runs 7, got %v", cfg.Options.MaxSeqRuns)
	}
	if cfg.Options.MaxParallelRuns != nil {
		t.Fatalf("expected unset parallel runs, got %d", *cfg.Options.MaxParallelRuns)
	}
}

func TestParseConfigFlagWinsOverEnv(t *testing.T) {
	t.Setenv("FIZZBEE_MBT_COUNTERS", "5")

	fs := flag.NewFlagSet("counter", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-counters", "3"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Counters != 3 {
		t.Fatalf("expected counters from flag, got %d", cfg.Counters)
	}
}

func TestParseConfigRejectsNegativeCounters(t *testing.T) {
	fs := flag.NewFlagSet("counter", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-counters", "-1"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseConfigRejectsNegativeBounds(t *testing.T) {
	fs := flag.NewFlagSet("counter", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-max-actions", "-1"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestExitCode(t *testing.T) {
	exitErr := exec.Command("sh", "-c", "exit 3").Run()
	if exitErr == nil {
		t.Skip("sh is not available")
	}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "engine failure", err: mbt.Wrap(mbt.CodeChildFailed, "engine", exitErr), want: 3},
		{name: "interrupted", err: &mbt.Error{Code: mbt.CodeInterrupted}, want: 130},
		{name: "terminated", err: &mbt.Error{Code: mbt.CodeTerminated}, want: 143},
		{name: "cancelled", err: context.Canceled, want: 130},
		{name: "server exited", err: &mbt.Error{Code: mbt.CodeServerExited}, want: 1},
		{name: "other", err: errors.New("boom"), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
