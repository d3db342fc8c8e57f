package orchestrator

import (
	"fmt"

	"github.com/louisbranch/fizzbee-mbt/internal/platform/config"
	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// Config locates the exploration engine and carries the environment
// overrides it is launched with. Bound and seed values are forwarded verbatim.
type Config struct {
	BinPath    string `env:"FIZZBEE_MBT_BIN" envDefault:"fizzbee-mbt-runner"`
	SocketPath string `env:"FIZZBEE_MBT_SOCKET" envDefault:"/tmp/fizzbee_mbt.sock"`

	MaxActions      *string `env:"MAX_ACTIONS"`
	MaxSeqRuns      *string `env:"MAX_SEQ_RUNS"`
	MaxParallelRuns *string `env:"MAX_PARALLEL_RUNS"`
	SeqSeed         *string `env:"SEQ_SEED"`
	ParallelSeed    *string `env:"PARALLEL_SEED"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ChildArgs builds the exploration engine command line. The plugin address is
// always first. Bounds come from the environment, then from opts; seeds come
// from the environment only. Flags with no value are omitted.
func (c Config) ChildArgs(opts mbt.TestOptions) []string {
	args := []string{"--plugin-addr=" + c.SocketPath}
	args = appendFlag(args, "max-actions", resolve(c.MaxActions, opts.MaxActions))
	args = appendFlag(args, "max-seq-runs", resolve(c.MaxSeqRuns, opts.MaxSeqRuns))
	args = appendFlag(args, "max-parallel-runs", resolve(c.MaxParallelRuns, opts.MaxParallelRuns))
	args = appendFlag(args, "seq-seed", c.SeqSeed)
	args = appendFlag(args, "parallel-seed", c.ParallelSeed)
	return args
}

func resolve(env *string, option *int) *string {
	if env != nil {
		return env
	}
	if option != nil {
		s := fmt.Sprint(*option)
		return &s
	}
	return nil
}

func appendFlag(args []string, name string, value *string) []string {
	if value == nil {
		return args
	}
	return append(args, fmt.Sprintf("--%s=%s", name, *value))
}
