// Package runner starts model-based test runs.
//
// A run serves the model over a unix socket, launches the fizzbee exploration
// engine against it and waits for the engine to finish:
//
//	func TestAccounts(t *testing.T) {
//		runner.RunTest(t, newAccountModel(), mbt.TestOptions{MaxActions: mbt.Bound(50)})
//	}
//
// The engine binary is taken from FIZZBEE_MBT_BIN and the socket path from
// FIZZBEE_MBT_SOCKET. MAX_ACTIONS, MAX_SEQ_RUNS and MAX_PARALLEL_RUNS override
// the matching TestOptions; SEQ_SEED and PARALLEL_SEED are forwarded as is.
package runner

import (
	"context"
	"os/exec"
	"testing"

	"github.com/louisbranch/fizzbee-mbt/internal/orchestrator"
	entrypoint "github.com/louisbranch/fizzbee-mbt/internal/platform/cmd"
	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// Option customizes a run.
type Option = orchestrator.Option

// Config locates the engine and the plugin socket.
type Config = orchestrator.Config

var (
	// WithConfig replaces the environment-derived configuration.
	WithConfig = orchestrator.WithConfig
	// WithSignals replaces the SIGINT/SIGTERM subscription.
	WithSignals = orchestrator.WithSignals
	// WithOutput redirects the engine's stdout and stderr.
	WithOutput = orchestrator.WithOutput
)

// Run drives target until the exploration engine exits. It returns nil when
// the engine exits with status 0; otherwise the error carries an mbt.Code
// describing how the run ended.
func Run(ctx context.Context, target mbt.Target, opts mbt.TestOptions, options ...Option) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRunner, func(ctx context.Context) error {
		return orchestrator.Run(ctx, target, opts, options...)
	})
}

// RunTest runs target from a Go test. The test is skipped when the engine
// binary cannot be found and fails when the run fails.
func RunTest(t testing.TB, target mbt.Target, opts mbt.TestOptions, options ...Option) {
	t.Helper()
	cfg, err := orchestrator.LoadConfig()
	if err != nil {
		t.Fatalf("load mbt config: %v", err)
	}
	if _, err := exec.LookPath(cfg.BinPath); err != nil {
		t.Skipf("exploration engine %q not available: %v", cfg.BinPath, err)
	}
	if err := Run(context.Background(), target, opts, append([]Option{WithConfig(cfg)}, options...)...); err != nil {
		t.Fatalf("model based test failed: %v", err)
	}
}

// ExitCode returns the engine's exit status when err reports a failed engine.
func ExitCode(err error) (int, bool) {
	if mbt.CodeOf(err) != mbt.CodeChildFailed {
		return 0, false
	}
	return orchestrator.ExitCode(err)
}
