package mbt

import (
	"math"
	"testing"
)

func TestValueOfScalars(t *testing.T) {
	n := 7
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, None()},
		{"int", 3, Int(3)},
		{"int8", int8(-2), Int(-2)},
		{"uint16", uint16(9), Int(9)},
		{"string", "s", Str("s")},
		{"bool", true, Bool(true)},
		{"pointer", &n, Int(7)},
		{"nil pointer", (*int)(nil), None()},
		{"value", Ignore, Ignore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			if err != nil {
				t.Fatalf("value of: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestValueOfCollections(t *testing.T) {
	got, err := ValueOf(map[string][]int{"a": {1, 2}})
	if err != nil {
		t.Fatalf("value of: %v", err)
	}
	want := NewMap(MapEntry{Key: Str("a"), Value: NewList(Int(1), Int(2))})
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	set, err := ValueOf(map[int]struct{}{1: {}, 2: {}})
	if err != nil {
		t.Fatalf("value of set: %v", err)
	}
	if set.Kind() != KindSet || !set.Equal(NewSet(Int(2), Int(1))) {
		t.Fatalf("expected set, got %s", set)
	}

	empty, err := ValueOf([]string(nil))
	if err != nil {
		t.Fatalf("value of nil slice: %v", err)
	}
	if empty.Kind() != KindList || empty.Len() != 0 {
		t.Fatalf("expected empty list, got %s", empty)
	}

	arr, err := ValueOf([2]any{"x", nil})
	if err != nil {
		t.Fatalf("value of array: %v", err)
	}
	if !arr.Equal(NewList(Str("x"), None())) {
		t.Fatalf("unexpected array conversion: %s", arr)
	}
}

func TestValueOfRejectsUnsupported(t *testing.T) {
	if _, err := ValueOf(1.5); err == nil {
		t.Fatal("expected error for float")
	}
	if _, err := ValueOf(uint64(math.MaxUint64)); err == nil {
		t.Fatal("expected overflow error")
	}
	if _, err := ValueOf([]any{1, struct{}{}}); err == nil {
		t.Fatal("expected error for nested struct")
	}
}

func TestMustValueOfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustValueOf(make(chan int))
}

func TestValueOfRejectsCycles(t *testing.T) {
	s := []any{nil}
	s[0] = s
	if _, err := ValueOf(s); CodeOf(err) != CodeOther {
		t.Fatalf("expected a nesting error, got %v", err)
	}

	m := map[string]any{}
	m["self"] = m
	if _, err := ValueOf(m); err == nil {
		t.Fatal("expected a nesting error for a self-referencing map")
	}
}
