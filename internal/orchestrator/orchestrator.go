// Package orchestrator runs one model-based test: it serves the plugin API on
// a unix socket, launches the exploration engine against it and reports how
// the run ended.
//
// The run ends on the first of: the engine exiting, the server stopping,
// SIGINT, SIGTERM or the caller's context ending. Whatever wins, the engine is
// killed and reaped before Run returns.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/louisbranch/fizzbee-mbt/internal/api/grpc/plugin"
	"github.com/louisbranch/fizzbee-mbt/internal/app/server"
	"github.com/louisbranch/fizzbee-mbt/internal/dispatch"
	platformgrpc "github.com/louisbranch/fizzbee-mbt/internal/platform/grpc"
	"github.com/louisbranch/fizzbee-mbt/internal/platform/timeouts"
	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// listen binds the plugin socket; tests swap it to observe the listener.
var listen = server.Listen

// Option customizes a run.
type Option func(*runOptions)

type runOptions struct {
	config  *Config
	signals <-chan os.Signal
	stdout  io.Writer
	stderr  io.Writer
}

// WithConfig replaces the environment-derived Config.
func WithConfig(cfg Config) Option {
	return func(o *runOptions) {
		o.config = &cfg
	}
}

// WithSignals replaces the process signal subscription. Receiving
// syscall.SIGTERM ends the run as terminated, any other signal as interrupted.
func WithSignals(ch <-chan os.Signal) Option {
	return func(o *runOptions) {
		o.signals = ch
	}
}

// WithOutput redirects the engine's stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *runOptions) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// Run drives target with the exploration engine until the run ends. A nil
// error means the engine exited with status 0.
func Run(ctx context.Context, target mbt.Target, opts mbt.TestOptions, options ...Option) error {
	if target == nil {
		return mbt.Other("target is required")
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := runOptions{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range options {
		opt(&o)
	}
	cfg, err := o.resolveConfig()
	if err != nil {
		return mbt.Wrap(mbt.CodeOther, "load config", err)
	}

	listener, err := listen(cfg.SocketPath)
	if err != nil {
		return mbt.Wrap(mbt.CodeOther, "bind plugin socket", err)
	}
	srv := server.New(listener, plugin.NewService(dispatch.New(target)))

	serveCtx, stopServer := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(serveCtx)
	}()
	serverRunning := true
	defer func() {
		stopServer()
		if serverRunning {
			if err := <-serveDone; err != nil {
				log.Printf("plugin server: %v", err)
			}
		}
		if err := os.Remove(cfg.SocketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("remove socket %s: %v", cfg.SocketPath, err)
		}
	}()

	conn, err := platformgrpc.DialUnix(ctx, cfg.SocketPath, timeouts.GRPCDial, nil)
	if err != nil {
		return mbt.Wrap(mbt.CodeOther, "plugin server did not become healthy", err)
	}
	_ = conn.Close()

	signals := o.signals
	if signals == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(ch)
		signals = ch
	}

	args := cfg.ChildArgs(opts)
	cmd := exec.Command(cfg.BinPath, args...)
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr
	configureChild(cmd)
	if err := cmd.Start(); err != nil {
		return mbt.Wrap(mbt.CodeOther, fmt.Sprintf("start exploration engine %s", cfg.BinPath), err)
	}
	log.Printf("exploration engine started: pid=%d args=%v", cmd.Process.Pid, args)

	childDone := make(chan error, 1)
	go func() {
		childDone <- cmd.Wait()
	}()
	childRunning := true
	defer func() {
		if childRunning {
			killChild(cmd)
			<-childDone
		}
	}()

	select {
	case err := <-serveDone:
		serverRunning = false
		if err != nil {
			return mbt.Wrap(mbt.CodeServerExited, "plugin server failed", err)
		}
		return &mbt.Error{Code: mbt.CodeServerExited, Message: "plugin server stopped before the exploration engine"}

	case err := <-childDone:
		childRunning = false
		if err != nil {
			log.Printf("exploration engine failed: %v", err)
			return mbt.Wrap(mbt.CodeChildFailed, "exploration engine failed", err)
		}
		log.Printf("exploration engine finished")
		return nil

	case sig := <-signals:
		log.Printf("received %v, stopping exploration engine", sig)
		killChild(cmd)
		<-childDone
		childRunning = false
		if sig == syscall.SIGTERM {
			return &mbt.Error{Code: mbt.CodeTerminated, Message: fmt.Sprintf("test terminated by signal %v", sig)}
		}
		return &mbt.Error{Code: mbt.CodeInterrupted, Message: fmt.Sprintf("test interrupted by signal %v", sig)}

	case <-ctx.Done():
		killChild(cmd)
		<-childDone
		childRunning = false
		return fmt.Errorf("run cancelled: %w", ctx.Err())
	}
}

func (o runOptions) resolveConfig() (Config, error) {
	if o.config != nil {
		return *o.config, nil
	}
	return LoadConfig()
}

// ExitCode extracts the engine's exit status from a CodeChildFailed error.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
