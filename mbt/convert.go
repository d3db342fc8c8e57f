package mbt

import (
	"fmt"
	"math"
	"reflect"
)

// ValueOf converts a native Go value into a Value.
//
// Supported inputs are nil, Value, signed and unsigned integers, strings, bools,
// slices and arrays (as List), maps (as Map), and pointers or interfaces wrapping
// any of these. A map[T]struct{} becomes a Set. Unsigned integers that overflow
// int64 are rejected, as are inputs nested deeper than 256 levels, which
// includes self-referencing slices and maps.
func ValueOf(x any) (Value, error) {
	if x == nil {
		return Value{}, nil
	}
	if v, ok := x.(Value); ok {
		return v, nil
	}
	return valueOfReflect(reflect.ValueOf(x), 0)
}

// MustValueOf is ValueOf for inputs known to be convertible. It panics otherwise.
func MustValueOf(x any) Value {
	v, err := ValueOf(x)
	if err != nil {
		panic(err)
	}
	return v
}

// maxDepth bounds how deep ValueOf follows pointers and containers, so
// self-referencing inputs fail instead of exhausting the stack.
const maxDepth = 256

var (
	valueType    = reflect.TypeOf(Value{})
	emptyStructT = reflect.TypeOf(struct{}{})
)

func valueOfReflect(rv reflect.Value, depth int) (Value, error) {
	if !rv.IsValid() {
		return Value{}, nil
	}
	if depth > maxDepth {
		return Value{}, Other("value nesting exceeds %d levels", maxDepth)
	}
	if rv.Type() == valueType {
		return rv.Interface().(Value), nil
	}
	switch rv.Kind() {
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, Other("unsigned value %d overflows Int", u)
		}
		return Int(int64(u)), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}, nil
		}
		return valueOfReflect(rv.Elem(), depth+1)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return NewList(), nil
		}
		items := make([]Value, rv.Len())
		for i := range items {
			item, err := valueOfReflect(rv.Index(i), depth+1)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = item
		}
		return NewList(items...), nil
	case reflect.Map:
		if rv.Type().Elem() == emptyStructT {
			items := make([]Value, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				item, err := valueOfReflect(iter.Key(), depth+1)
				if err != nil {
					return Value{}, fmt.Errorf("set item: %w", err)
				}
				items = append(items, item)
			}
			return NewSet(items...), nil
		}
		entries := make([]MapEntry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, err := valueOfReflect(iter.Key(), depth+1)
			if err != nil {
				return Value{}, fmt.Errorf("map key: %w", err)
			}
			val, err := valueOfReflect(iter.Value(), depth+1)
			if err != nil {
				return Value{}, fmt.Errorf("map value %s: %w", key, err)
			}
			entries = append(entries, MapEntry{Key: key, Value: val})
		}
		return NewMap(entries...), nil
	}
	return Value{}, Other("unsupported type %s", rv.Type())
}
