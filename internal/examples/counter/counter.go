// Package counter is a small model used to smoke-test the bridge end to end.
//
// The model has a fixed number of Counter roles. Each counter supports Inc,
// Get and Reset; the model itself supports AddCounter, which grows the role
// set while a run is in progress. Dec is deliberately left unregistered so
// explorations see a NotImplemented answer.
package counter

import (
	"context"
	"sync"

	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// RoleName is the name of the counter role.
const RoleName = "Counter"

// Model is a set of independent counters.
type Model struct {
	*mbt.Router

	initial int

	mu     sync.Mutex
	values map[int32]int64
}

// New returns a model that starts every run with n counters.
func New(n int) *Model {
	m := &Model{
		Router:  mbt.NewRouter(),
		initial: n,
		values:  make(map[int32]int64),
	}
	m.Handle(RoleName, "Inc", m.inc)
	m.Handle(RoleName, "Get", m.get)
	m.Handle(RoleName, "Reset", m.reset)
	m.Handle("", "AddCounter", m.addCounter)
	return m
}

// Init resets the model to its initial counters.
func (m *Model) Init(context.Context) error {
	m.Router.Reset()
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.values)
	for i := 0; i < m.initial; i++ {
		m.values[int32(i)] = 0
		m.AddRole(mbt.RoleID{Name: RoleName, Index: int32(i)})
	}
	return nil
}

// Cleanup drops every counter.
func (m *Model) Cleanup(context.Context) error {
	m.Router.Reset()
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.values)
	return nil
}

// RoleState reports the current value of a counter.
func (m *Model) RoleState(_ context.Context, role mbt.RoleID) (map[string]mbt.Value, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[role.Index]
	if !ok {
		return nil, mbt.Other("counter %s not found", role)
	}
	return map[string]mbt.Value{"value": mbt.Int(v)}, nil
}

func (m *Model) inc(_ context.Context, role mbt.RoleID, args mbt.Args) (mbt.Value, error) {
	by := int64(1)
	if v, ok := args.Get("by"); ok {
		n, ok := v.AsInt()
		if !ok {
			return mbt.Value{}, mbt.Other("argument by must be an int, got %s", v)
		}
		by = n
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[role.Index] += by
	return mbt.Int(m.values[role.Index]), nil
}

func (m *Model) get(_ context.Context, role mbt.RoleID, _ mbt.Args) (mbt.Value, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return mbt.Int(m.values[role.Index]), nil
}

func (m *Model) reset(_ context.Context, role mbt.RoleID, _ mbt.Args) (mbt.Value, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[role.Index] = 0
	return mbt.None(), nil
}

func (m *Model) addCounter(context.Context, mbt.RoleID, mbt.Args) (mbt.Value, error) {
	m.mu.Lock()
	idx := int32(len(m.values))
	m.values[idx] = 0
	m.mu.Unlock()
	m.AddRole(mbt.RoleID{Name: RoleName, Index: idx})
	return mbt.Int(int64(idx)), nil
}
