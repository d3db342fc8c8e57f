// Package dispatch guards a model under test behind one reader/writer lock.
//
// Actions take the shared lock and may run in parallel. Initialization, cleanup
// and role enumeration take the exclusive lock, so no action ever overlaps them.
package dispatch

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/fizzbee-mbt/mbt"
)

const tracerName = "github.com/louisbranch/fizzbee-mbt/internal/dispatch"

// RoleState is the captured state of one role instance.
type RoleState struct {
	Role  mbt.RoleID
	State map[string]mbt.Value
}

// Topology is the role list, optionally with per-role state.
type Topology struct {
	Roles  []mbt.RoleID
	States []RoleState
}

// Dispatcher owns a target behind a single lock.
type Dispatcher struct {
	lock   Locker
	target mbt.Target
	tracer trace.Tracer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLocker replaces the default sync.RWMutex.
func WithLocker(l Locker) Option {
	return func(d *Dispatcher) {
		d.lock = l
	}
}

// New wraps target.
func New(target mbt.Target, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		lock:   newRWLocker(),
		target: target,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init initializes the target and enumerates its roles under one exclusive lock.
// It must be called before any Execute.
func (d *Dispatcher) Init(ctx context.Context, captureState bool) (Topology, error) {
	ctx, span := d.tracer.Start(ctx, "dispatch.Init")
	defer span.End()

	d.lock.Lock()
	defer d.lock.Unlock()

	if err := d.target.Init(ctx); err != nil {
		return Topology{}, record(span, err)
	}
	topo, err := d.topologyLocked(ctx, captureState)
	return topo, record(span, err)
}

// Cleanup tears the target down under the exclusive lock. Nothing is defined
// after Cleanup.
func (d *Dispatcher) Cleanup(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "dispatch.Cleanup")
	defer span.End()

	d.lock.Lock()
	defer d.lock.Unlock()

	return record(span, d.target.Cleanup(ctx))
}

// Execute runs one action under the shared lock.
func (d *Dispatcher) Execute(ctx context.Context, role mbt.RoleID, action string, args []mbt.Arg) (mbt.Value, error) {
	ctx, span := d.tracer.Start(ctx, "dispatch.Execute", trace.WithAttributes(
		attribute.String("mbt.role", role.Name),
		attribute.Int("mbt.role_index", int(role.Index)),
		attribute.String("mbt.action", action),
	))
	defer span.End()

	d.lock.RLock()
	defer d.lock.RUnlock()

	v, err := d.target.Execute(ctx, role, action, args)
	if err != nil && mbt.IsNotImplemented(err) {
		span.SetAttributes(attribute.Bool("mbt.not_implemented", true))
		return v, err
	}
	return v, record(span, err)
}

// Roles enumerates roles. Enumeration may mutate the target, so it takes the
// exclusive lock.
func (d *Dispatcher) Roles(ctx context.Context) ([]mbt.RoleID, error) {
	topo, err := d.Topology(ctx, false)
	if err != nil {
		return nil, err
	}
	return topo.Roles, nil
}

// Topology enumerates roles and, when captureState is set and the target
// implements mbt.StateGetter, their state, under the exclusive lock.
func (d *Dispatcher) Topology(ctx context.Context, captureState bool) (Topology, error) {
	ctx, span := d.tracer.Start(ctx, "dispatch.Topology")
	defer span.End()

	d.lock.Lock()
	defer d.lock.Unlock()

	topo, err := d.topologyLocked(ctx, captureState)
	return topo, record(span, err)
}

func (d *Dispatcher) topologyLocked(ctx context.Context, captureState bool) (Topology, error) {
	roles, err := d.target.Roles(ctx)
	if err != nil {
		return Topology{}, err
	}
	topo := Topology{Roles: roles}
	getter, ok := d.target.(mbt.StateGetter)
	if !captureState || !ok {
		return topo, nil
	}
	for _, id := range roles {
		state, err := getter.RoleState(ctx, id)
		if err != nil {
			return Topology{}, err
		}
		if state != nil {
			topo.States = append(topo.States, RoleState{Role: id, State: state})
		}
	}
	return topo, nil
}

func record(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
