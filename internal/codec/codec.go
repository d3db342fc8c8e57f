// Package codec converts between mbt values and their wire messages.
package codec

import (
	"fmt"

	"github.com/louisbranch/fizzbee-mbt/internal/wire"
	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// Encode converts v to its wire form. None encodes as a Value with no kind, Set
// encodes as a list in SortedItems order, and map entries are emitted in
// SortedEntries order, so equal values always encode to the same bytes.
func Encode(v mbt.Value) *wire.Value {
	switch v.Kind() {
	case mbt.KindInt:
		n, _ := v.AsInt()
		return &wire.Value{Kind: &wire.Value_IntValue{IntValue: n}}
	case mbt.KindStr:
		s, _ := v.AsStr()
		return &wire.Value{Kind: &wire.Value_StrValue{StrValue: s}}
	case mbt.KindBool:
		b, _ := v.AsBool()
		return &wire.Value{Kind: &wire.Value_BoolValue{BoolValue: b}}
	case mbt.KindSentinel:
		return &wire.Value{Kind: &wire.Value_SentinelValue{SentinelValue: wire.Sentinel_SENTINEL_IGNORE}}
	case mbt.KindMap:
		sorted := v.SortedEntries()
		entries := make([]*wire.MapEntry, len(sorted))
		for i, e := range sorted {
			entries[i] = &wire.MapEntry{Key: Encode(e.Key), Value: Encode(e.Value)}
		}
		return &wire.Value{Kind: &wire.Value_MapValue{MapValue: &wire.MapValue{Entries: entries}}}
	case mbt.KindList, mbt.KindSet:
		return &wire.Value{Kind: &wire.Value_ListValue{ListValue: &wire.ListValue{Items: encodeItems(v.SortedItems())}}}
	}
	return &wire.Value{}
}

func encodeItems(items []mbt.Value) []*wire.Value {
	out := make([]*wire.Value, len(items))
	for i, item := range items {
		out[i] = Encode(item)
	}
	return out
}

// Decode converts a wire value back. A nil value or one with no kind decodes to
// None. Kinds this codec never reconstructs, such as sets, fail with a
// NotImplemented error.
func Decode(in *wire.Value) (mbt.Value, error) {
	switch k := in.GetKind().(type) {
	case nil:
		return mbt.None(), nil
	case *wire.Value_StrValue:
		return mbt.Str(k.StrValue), nil
	case *wire.Value_IntValue:
		return mbt.Int(k.IntValue), nil
	case *wire.Value_BoolValue:
		return mbt.Bool(k.BoolValue), nil
	case *wire.Value_SentinelValue:
		if k.SentinelValue != wire.Sentinel_SENTINEL_IGNORE {
			return mbt.Value{}, mbt.NotImplemented("unsupported sentinel %d", k.SentinelValue)
		}
		return mbt.Ignore, nil
	case *wire.Value_MapValue:
		entries := make([]mbt.MapEntry, 0, len(k.MapValue.GetEntries()))
		for i, e := range k.MapValue.GetEntries() {
			if e.GetKey() == nil {
				return mbt.Value{}, mbt.Other("map entry %d: key is missing", i)
			}
			if e.GetValue() == nil {
				return mbt.Value{}, mbt.Other("map entry %d: value is missing", i)
			}
			key, err := Decode(e.GetKey())
			if err != nil {
				return mbt.Value{}, err
			}
			val, err := Decode(e.GetValue())
			if err != nil {
				return mbt.Value{}, err
			}
			entries = append(entries, mbt.MapEntry{Key: key, Value: val})
		}
		return mbt.NewMap(entries...), nil
	case *wire.Value_ListValue:
		items := make([]mbt.Value, len(k.ListValue.GetItems()))
		for i, item := range k.ListValue.GetItems() {
			v, err := Decode(item)
			if err != nil {
				return mbt.Value{}, err
			}
			items[i] = v
		}
		return mbt.NewList(items...), nil
	}
	return mbt.Value{}, mbt.NotImplemented("unsupported wire value kind %T", in.GetKind())
}

// DecodeArgs converts wire arguments. Every argument must carry a value.
func DecodeArgs(in []*wire.Arg) ([]mbt.Arg, error) {
	args := make([]mbt.Arg, 0, len(in))
	for _, a := range in {
		if a.GetValue() == nil {
			return nil, mbt.Other("value is missing for argument %q", a.GetName())
		}
		v, err := Decode(a.GetValue())
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", a.GetName(), err)
		}
		args = append(args, mbt.Arg{Name: a.GetName(), Value: v})
	}
	return args, nil
}

// EncodeArgs converts arguments to their wire form.
func EncodeArgs(args []mbt.Arg) []*wire.Arg {
	out := make([]*wire.Arg, len(args))
	for i, a := range args {
		out[i] = &wire.Arg{Name: a.Name, Value: Encode(a.Value)}
	}
	return out
}

// RoleFromRef converts a role reference. A nil reference is the zero RoleID.
func RoleFromRef(ref *wire.RoleRef) mbt.RoleID {
	return mbt.RoleID{Name: ref.GetRoleName(), Index: ref.GetRoleId()}
}

// RoleToRef converts a RoleID to its wire reference.
func RoleToRef(id mbt.RoleID) *wire.RoleRef {
	return &wire.RoleRef{RoleName: id.Name, RoleId: id.Index}
}

// RolesToRefs converts a role list.
func RolesToRefs(ids []mbt.RoleID) []*wire.RoleRef {
	refs := make([]*wire.RoleRef, len(ids))
	for i, id := range ids {
		refs[i] = RoleToRef(id)
	}
	return refs
}

// EncodeState converts a role state map.
func EncodeState(id mbt.RoleID, state map[string]mbt.Value) *wire.RoleState {
	out := &wire.RoleState{
		Role:  RoleToRef(id),
		State: make(map[string]*wire.Value, len(state)),
	}
	for k, v := range state {
		out.State[k] = Encode(v)
	}
	return out
}
