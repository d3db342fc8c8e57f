package mbt

import (
	"context"
	"testing"
)

func newTestRouter() *Router {
	r := NewRouter()
	r.Handle("Node", "Echo", func(_ context.Context, role RoleID, args Args) (Value, error) {
		v, _ := args.Get("msg")
		return NewList(Str(role.String()), v), nil
	})
	r.Handle("", "Spawn", func(context.Context, RoleID, Args) (Value, error) {
		return Bool(true), nil
	})
	return r
}

func TestRouterDispatchesToRole(t *testing.T) {
	r := newTestRouter()
	r.AddRole(RoleID{Name: "Node", Index: 1})

	got, err := r.Execute(context.Background(), RoleID{Name: "Node", Index: 1}, "Echo", []Arg{{Name: "msg", Value: Str("hi")}})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := NewList(Str("Node#1"), Str("hi")); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestRouterModelLevelAction(t *testing.T) {
	r := newTestRouter()
	got, err := r.Execute(context.Background(), RoleID{}, "Spawn", nil)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !got.Equal(Bool(true)) {
		t.Fatalf("unexpected result %s", got)
	}
}

func TestRouterUnknownActionIsNotImplemented(t *testing.T) {
	r := newTestRouter()
	r.AddRole(RoleID{Name: "Node"})
	_, err := r.Execute(context.Background(), RoleID{Name: "Node"}, "Crash", nil)
	if !IsNotImplemented(err) {
		t.Fatalf("expected not implemented, got %v", err)
	}
}

func TestRouterUnknownRoleFails(t *testing.T) {
	r := newTestRouter()
	_, err := r.Execute(context.Background(), RoleID{Name: "Node", Index: 3}, "Echo", nil)
	if err == nil || IsNotImplemented(err) {
		t.Fatalf("expected a role error, got %v", err)
	}
}

func TestRouterRolesAreSorted(t *testing.T) {
	r := newTestRouter()
	r.AddRole(RoleID{Name: "Node", Index: 2})
	r.AddRole(RoleID{Name: "Client", Index: 0})
	r.AddRole(RoleID{Name: "Node", Index: 0})

	roles, err := r.Roles(context.Background())
	if err != nil {
		t.Fatalf("roles: %v", err)
	}
	want := []RoleID{{"Client", 0}, {"Node", 0}, {"Node", 2}}
	if len(roles) != len(want) {
		t.Fatalf("expected %v, got %v", want, roles)
	}
	for i := range want {
		if roles[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, roles)
		}
	}

	r.RemoveRole(RoleID{Name: "Node", Index: 2})
	r.Reset()
	if roles, _ := r.Roles(context.Background()); len(roles) != 0 {
		t.Fatalf("expected no roles after reset, got %v", roles)
	}
}
