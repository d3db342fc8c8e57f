// Package sequence runs independent action sequences concurrently.
//
// Each sequence gets its own goroutine and executes its commands strictly in
// order. Sequences make no ordering promise relative to each other.
package sequence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// ErrTaskFailed marks a sequence goroutine that did not run to completion for
// reasons unrelated to the model, such as a panic.
var ErrTaskFailed = errors.New("sequence task failed")

// Executor runs one action. The dispatcher satisfies it and takes the shared
// lock for the duration of each call.
type Executor interface {
	Execute(ctx context.Context, role mbt.RoleID, action string, args []mbt.Arg) (mbt.Value, error)
}

// Command is one action of a sequence plus its result slots. The slots are
// written once, by the goroutine that runs the owning bundle.
type Command struct {
	Role   mbt.RoleID
	Action string
	Args   []mbt.Arg

	Start    time.Duration
	End      time.Duration
	Return   mbt.Value
	Err      error
	Executed bool
}

// Bundle is an ordered sequence of commands.
type Bundle []Command

// Engine schedules bundles against an Executor.
type Engine struct {
	exec  Executor
	epoch time.Time
}

// NewEngine returns an engine whose timestamps are offsets from now.
func NewEngine(exec Executor) *Engine {
	return NewEngineAt(exec, time.Now())
}

// NewEngineAt returns an engine with an explicit epoch.
func NewEngineAt(exec Executor, epoch time.Time) *Engine {
	return &Engine{exec: exec, epoch: epoch}
}

// Epoch is the instant all recorded offsets are relative to.
func (e *Engine) Epoch() time.Time {
	return e.epoch
}

// Run executes every bundle concurrently and records outcomes in place.
//
// A command failing with anything other than a NotImplemented error stops its
// own bundle; the remaining commands keep Executed == false. Sibling bundles
// are not cancelled. Run returns the first such critical error once every
// bundle has finished.
func (e *Engine) Run(ctx context.Context, bundles []Bundle) error {
	var g errgroup.Group
	for i := range bundles {
		bundle := bundles[i]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = mbt.Wrap(mbt.CodeTaskFailed, fmt.Sprintf("sequence %d", i), fmt.Errorf("%w: %v", ErrTaskFailed, r))
				}
			}()
			return e.runBundle(ctx, bundle)
		})
	}
	return g.Wait()
}

func (e *Engine) runBundle(ctx context.Context, bundle Bundle) error {
	for i := range bundle {
		cmd := &bundle[i]
		cmd.Start = time.Since(e.epoch)
		v, err := e.exec.Execute(ctx, cmd.Role, cmd.Action, cmd.Args)
		cmd.End = time.Since(e.epoch)
		cmd.Return = v
		cmd.Err = err
		cmd.Executed = true
		if err != nil && !mbt.IsNotImplemented(err) {
			return err
		}
	}
	return nil
}
