package mbt

import (
	"cmp"
	"context"
	"fmt"
)

// RoleID identifies one instance of a role. The zero RoleID (empty name, index 0)
// addresses the model itself.
type RoleID struct {
	Name  string
	Index int32
}

// Compare orders role IDs by name, then index.
func (r RoleID) Compare(o RoleID) int {
	if c := cmp.Compare(r.Name, o.Name); c != 0 {
		return c
	}
	return cmp.Compare(r.Index, o.Index)
}

// String returns name#index.
func (r RoleID) String() string {
	return fmt.Sprintf("%s#%d", r.Name, r.Index)
}

// Arg is one named actual parameter to an action call.
type Arg struct {
	Name  string
	Value Value
}

// Args is the argument list passed to an action.
type Args []Arg

// Get returns the value of the first argument named name.
func (a Args) Get(name string) (Value, bool) {
	for _, arg := range a {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return Value{}, false
}

// Model is the lifecycle contract of a system under test.
type Model interface {
	// Init prepares the model before a test run. No action runs concurrently with it.
	Init(ctx context.Context) error
	// Cleanup releases the model after a test run. Nothing is called afterwards.
	Cleanup(ctx context.Context) error
}

// DispatchModel routes action invocations to role instances.
type DispatchModel interface {
	// Execute runs action on role. It may be called concurrently with other
	// Execute calls; implementations guard their own mutable state.
	Execute(ctx context.Context, role RoleID, action string, args []Arg) (Value, error)
	// Roles enumerates the role instances currently managed by the model. It is
	// never called concurrently with Execute.
	Roles(ctx context.Context) ([]RoleID, error)
}

// Target is a model the bridge can drive.
type Target interface {
	Model
	DispatchModel
}

// StateGetter is implemented by targets that can report per-role state. When the
// engine asks for state capture, RoleState is called for every role while no
// action is running.
type StateGetter interface {
	RoleState(ctx context.Context, role RoleID) (map[string]Value, error)
}

// TestOptions bounds a run. Nil fields are left to the exploration engine and can
// be overridden by MAX_SEQ_RUNS, MAX_PARALLEL_RUNS and MAX_ACTIONS.
type TestOptions struct {
	MaxSeqRuns      *int
	MaxParallelRuns *int
	MaxActions      *int
}

// Validate rejects negative bounds.
func (o TestOptions) Validate() error {
	for _, b := range []struct {
		name  string
		value *int
	}{
		{"MaxSeqRuns", o.MaxSeqRuns},
		{"MaxParallelRuns", o.MaxParallelRuns},
		{"MaxActions", o.MaxActions},
	} {
		if b.value != nil && *b.value < 0 {
			return Other("%s must be non-negative, got %d", b.name, *b.value)
		}
	}
	return nil
}

// Bound returns a pointer to n for use in TestOptions.
func Bound(n int) *int {
	return &n
}
