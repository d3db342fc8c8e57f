package mbt

import (
	"context"
	"slices"
	"sync"
)

// ActionFunc implements one action of one role.
type ActionFunc func(ctx context.Context, role RoleID, args Args) (Value, error)

// Router is a table-driven DispatchModel. Actions are registered per role name and
// role instances are registered per RoleID. Unknown actions answer NotImplemented.
//
// Router is safe for concurrent use; Execute only takes a read lock on the table.
type Router struct {
	mu      sync.RWMutex
	actions map[string]map[string]ActionFunc
	roles   map[RoleID]struct{}
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{
		actions: make(map[string]map[string]ActionFunc),
		roles:   make(map[RoleID]struct{}),
	}
}

// Handle registers fn as action of every instance of roleName. An empty roleName
// registers a model-level action.
func (r *Router) Handle(roleName, action string, fn ActionFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byAction, ok := r.actions[roleName]
	if !ok {
		byAction = make(map[string]ActionFunc)
		r.actions[roleName] = byAction
	}
	byAction[action] = fn
}

// AddRole makes a role instance addressable.
func (r *Router) AddRole(id RoleID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[id] = struct{}{}
}

// RemoveRole drops a role instance.
func (r *Router) RemoveRole(id RoleID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.roles, id)
}

// Reset drops every role instance, keeping the action table.
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.roles)
}

// Execute implements DispatchModel.
func (r *Router) Execute(ctx context.Context, role RoleID, action string, args []Arg) (Value, error) {
	r.mu.RLock()
	fn, ok := r.actions[role.Name][action]
	_, known := r.roles[role]
	r.mu.RUnlock()

	if role.Name != "" && !known {
		return Value{}, Other("role %s not found", role)
	}
	if !ok {
		return Value{}, NotImplemented("action %s for role %s is not implemented", action, role.Name)
	}
	return fn(ctx, role, args)
}

// Roles implements DispatchModel. Roles are returned in RoleID order.
func (r *Router) Roles(context.Context) ([]RoleID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]RoleID, 0, len(r.roles))
	for id := range r.roles {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, RoleID.Compare)
	return ids, nil
}
