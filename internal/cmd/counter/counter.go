// Package counter parses counter command flags and runs the bundled counter
// model against the exploration engine.
package counter

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/louisbranch/fizzbee-mbt/internal/examples/counter"
	"github.com/louisbranch/fizzbee-mbt/internal/orchestrator"
	entrypoint "github.com/louisbranch/fizzbee-mbt/internal/platform/cmd"
	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// Config holds counter command configuration.
type Config struct {
	Counters int `env:"FIZZBEE_MBT_COUNTERS" envDefault:"2"`

	Options mbt.TestOptions
}

// ParseConfig parses environment and flags into a Config. Exploration bounds
// are only set when their flag is given.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	var maxActions, maxSeqRuns, maxParallelRuns int
	// Flag defaults are overwritten by the environment before args are parsed.
	fs.IntVar(&cfg.Counters, "counters", 2, "Number of counter roles (env FIZZBEE_MBT_COUNTERS)")
	fs.IntVar(&maxActions, "max-actions", 0, "Maximum actions per run")
	fs.IntVar(&maxSeqRuns, "max-seq-runs", 0, "Maximum sequential runs")
	fs.IntVar(&maxParallelRuns, "max-parallel-runs", 0, "Maximum parallel runs")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-actions":
			cfg.Options.MaxActions = mbt.Bound(maxActions)
		case "max-seq-runs":
			cfg.Options.MaxSeqRuns = mbt.Bound(maxSeqRuns)
		case "max-parallel-runs":
			cfg.Options.MaxParallelRuns = mbt.Bound(maxParallelRuns)
		}
	})
	if cfg.Counters < 0 {
		return Config{}, fmt.Errorf("counters must be non-negative, got %d", cfg.Counters)
	}
	if err := cfg.Options.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run drives the counter model until the exploration engine exits.
func Run(ctx context.Context, cfg Config, options ...orchestrator.Option) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCounter, func(ctx context.Context) error {
		return orchestrator.Run(ctx, counter.New(cfg.Counters), cfg.Options, options...)
	})
}

// ExitCode maps a run error to a process exit status: the engine's own status
// when it failed, 130 after SIGINT, 143 after SIGTERM and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch mbt.CodeOf(err) {
	case mbt.CodeChildFailed:
		if code, ok := orchestrator.ExitCode(err); ok && code > 0 {
			return code
		}
	case mbt.CodeInterrupted:
		return 130
	case mbt.CodeTerminated:
		return 143
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
