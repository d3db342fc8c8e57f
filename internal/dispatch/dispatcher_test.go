package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// invariantTarget records lock-discipline violations observed from inside the model.
type invariantTarget struct {
	executing  atomic.Int32
	exclusive  atomic.Int32
	violations atomic.Int32
	peak       atomic.Int32

	executeHook func(ctx context.Context)
	initErr     error
	roles       []mbt.RoleID
}

func (m *invariantTarget) enterExclusive() {
	if m.exclusive.Add(1) != 1 || m.executing.Load() != 0 {
		m.violations.Add(1)
	}
}

func (m *invariantTarget) leaveExclusive() {
	m.exclusive.Add(-1)
}

func (m *invariantTarget) Init(context.Context) error {
	m.enterExclusive()
	defer m.leaveExclusive()
	time.Sleep(time.Millisecond)
	return m.initErr
}

func (m *invariantTarget) Cleanup(context.Context) error {
	m.enterExclusive()
	defer m.leaveExclusive()
	time.Sleep(time.Millisecond)
	return nil
}

func (m *invariantTarget) Roles(context.Context) ([]mbt.RoleID, error) {
	m.enterExclusive()
	defer m.leaveExclusive()
	time.Sleep(time.Millisecond)
	return m.roles, nil
}

func (m *invariantTarget) Execute(ctx context.Context, role mbt.RoleID, action string, args []mbt.Arg) (mbt.Value, error) {
	n := m.executing.Add(1)
	defer m.executing.Add(-1)
	for {
		p := m.peak.Load()
		if n <= p || m.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if m.exclusive.Load() != 0 {
		m.violations.Add(1)
	}
	if m.executeHook != nil {
		m.executeHook(ctx)
	}
	if action == "missing" {
		return mbt.Value{}, mbt.NotImplemented("missing")
	}
	return mbt.Str(role.Name + "." + action), nil
}

type statefulTarget struct {
	invariantTarget
}

func (m *statefulTarget) RoleState(_ context.Context, id mbt.RoleID) (map[string]mbt.Value, error) {
	return map[string]mbt.Value{"index": mbt.Int(int64(id.Index))}, nil
}

func TestConcurrentExecutesDoNotBlockEachOther(t *testing.T) {
	var arrived sync.WaitGroup
	arrived.Add(2)
	target := &invariantTarget{}
	target.executeHook = func(context.Context) {
		arrived.Done()
		done := make(chan struct{})
		go func() {
			arrived.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("executes were serialized")
		}
	}
	d := New(target)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := d.Execute(context.Background(), mbt.RoleID{Name: "Node", Index: int32(i)}, "Ping", nil); err != nil {
				t.Errorf("execute: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if target.peak.Load() < 2 {
		t.Fatalf("expected overlapping executes, peak was %d", target.peak.Load())
	}
}

func TestExclusiveOperationsWaitForExecute(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	target := &invariantTarget{}
	target.executeHook = func(context.Context) {
		close(started)
		<-release
	}
	d := New(target)

	execDone := make(chan struct{})
	go func() {
		defer close(execDone)
		_, _ = d.Execute(context.Background(), mbt.RoleID{Name: "Node"}, "Slow", nil)
	}()
	<-started

	rolesDone := make(chan struct{})
	go func() {
		defer close(rolesDone)
		if _, err := d.Roles(context.Background()); err != nil {
			t.Errorf("roles: %v", err)
		}
	}()

	select {
	case <-rolesDone:
		t.Fatal("roles returned while an action held the shared lock")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-execDone
	select {
	case <-rolesDone:
	case <-time.After(2 * time.Second):
		t.Fatal("roles did not complete after the action finished")
	}
	if target.violations.Load() != 0 {
		t.Fatalf("observed %d lock violations", target.violations.Load())
	}
}

func TestInterleavingExerciser(t *testing.T) {
	target := &invariantTarget{roles: []mbt.RoleID{{Name: "Node"}}}
	d := New(target)
	if _, err := d.Init(context.Background(), false); err != nil {
		t.Fatalf("init: %v", err)
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				switch (w + i) % 5 {
				case 0:
					_, _ = d.Roles(ctx)
				case 1:
					_, _ = d.Init(ctx, false)
				default:
					_, _ = d.Execute(ctx, mbt.RoleID{Name: "Node"}, "Ping", nil)
				}
			}
		}(w)
	}
	wg.Wait()
	if err := d.Cleanup(ctx); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	if target.violations.Load() != 0 {
		t.Fatalf("observed %d lock violations", target.violations.Load())
	}
}

func TestInitReturnsRolesAndStates(t *testing.T) {
	roles := []mbt.RoleID{{Name: "Node", Index: 0}, {Name: "Node", Index: 1}}
	target := &statefulTarget{invariantTarget{roles: roles}}
	d := New(target)

	topo, err := d.Init(context.Background(), true)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if len(topo.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(topo.Roles))
	}
	if len(topo.States) != 2 {
		t.Fatalf("expected 2 states, got %d", len(topo.States))
	}
	if v := topo.States[1].State["index"]; !v.Equal(mbt.Int(1)) {
		t.Fatalf("unexpected state: %s", v)
	}

	topo, err = d.Topology(context.Background(), false)
	if err != nil {
		t.Fatalf("topology: %v", err)
	}
	if len(topo.States) != 0 {
		t.Fatalf("expected no states without capture, got %d", len(topo.States))
	}
}

func TestInitErrorIsReturnedVerbatim(t *testing.T) {
	boom := errors.New("boom")
	d := New(&invariantTarget{initErr: boom})
	if _, err := d.Init(context.Background(), false); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestExecutePassesNotImplementedThrough(t *testing.T) {
	d := New(&invariantTarget{})
	_, err := d.Execute(context.Background(), mbt.RoleID{Name: "Node"}, "missing", nil)
	if !mbt.IsNotImplemented(err) {
		t.Fatalf("expected not implemented, got %v", err)
	}
}

type countingLocker struct {
	sync.RWMutex
	exclusive atomic.Int32
	shared    atomic.Int32
}

func (l *countingLocker) Lock()  { l.exclusive.Add(1); l.RWMutex.Lock() }
func (l *countingLocker) RLock() { l.shared.Add(1); l.RWMutex.RLock() }

func TestLockModes(t *testing.T) {
	lock := &countingLocker{}
	d := New(&invariantTarget{}, WithLocker(lock))
	ctx := context.Background()

	_, _ = d.Init(ctx, false)
	_, _ = d.Execute(ctx, mbt.RoleID{}, "Ping", nil)
	_, _ = d.Roles(ctx)
	_ = d.Cleanup(ctx)

	if got := lock.exclusive.Load(); got != 3 {
		t.Fatalf("expected 3 exclusive acquisitions, got %d", got)
	}
	if got := lock.shared.Load(); got != 1 {
		t.Fatalf("expected 1 shared acquisition, got %d", got)
	}
}
