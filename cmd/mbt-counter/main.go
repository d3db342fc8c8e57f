package main

import (
	"context"
	"flag"
	"log"
	"os"

	countercmd "github.com/louisbranch/fizzbee-mbt/internal/cmd/counter"
	"github.com/louisbranch/fizzbee-mbt/internal/platform/config"
)

func main() {
	cfg, err := countercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[MBT] ")

	// The orchestrator owns SIGINT and SIGTERM so it can stop the engine first.
	if err := countercmd.Run(context.Background(), cfg); err != nil {
		config.ExitWithCode(countercmd.ExitCode(err), "model based test failed: %v", err)
	}
}
