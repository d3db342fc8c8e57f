//go:build !windows

package counter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/louisbranch/fizzbee-mbt/internal/orchestrator"
)

const fakeEngineEnv = "MBT_COUNTER_FAKE_ENGINE"

func TestMain(m *testing.M) {
	if code := os.Getenv(fakeEngineEnv); code != "" {
		if code == "ok" {
			os.Exit(0)
		}
		os.Exit(5)
	}
	os.Exit(m.Run())
}

func fakeEngine(t *testing.T, mode string) orchestrator.Config {
	t.Helper()
	dir, err := os.MkdirTemp("", "mbt")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	t.Setenv(fakeEngineEnv, mode)
	t.Setenv("FIZZBEE_MBT_OTEL_ENDPOINT", "")
	return orchestrator.Config{BinPath: os.Args[0], SocketPath: filepath.Join(dir, "c.sock")}
}

func TestRunSucceeds(t *testing.T) {
	cfg := fakeEngine(t, "ok")
	if err := Run(context.Background(), Config{Counters: 2}, orchestrator.WithConfig(cfg)); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunPropagatesEngineStatus(t *testing.T) {
	cfg := fakeEngine(t, "fail")
	err := Run(context.Background(), Config{Counters: 1}, orchestrator.WithConfig(cfg))
	if got := ExitCode(err); got != 5 {
		t.Fatalf("expected exit code 5, got %d (%v)", got, err)
	}
}
