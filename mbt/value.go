package mbt

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindStr
	KindBool
	KindMap
	KindList
	KindSet
	KindSentinel
)

var kindNames = [...]string{
	KindNone:     "None",
	KindInt:      "Int",
	KindStr:      "Str",
	KindBool:     "Bool",
	KindMap:      "Map",
	KindList:     "List",
	KindSet:      "Set",
	KindSentinel: "Sentinel",
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinel is a marker value used for partial state matching.
type Sentinel uint8

const (
	// SentinelIgnore marks a field that is skipped during comparison.
	SentinelIgnore Sentinel = iota
)

// String returns the sentinel name.
func (s Sentinel) String() string {
	if s == SentinelIgnore {
		return "Ignore"
	}
	return "Sentinel(" + strconv.Itoa(int(s)) + ")"
}

// Value is the recursively structured value exchanged with the exploration engine.
// The zero Value is None. Values are immutable once constructed.
type Value struct {
	kind     Kind
	num      int64
	str      string
	flag     bool
	sentinel Sentinel
	entries  []MapEntry
	items    []Value
}

// MapEntry is one key/value pair of a Map value.
type MapEntry struct {
	Key   Value
	Value Value
}

// Ignore is the IGNORE sentinel value.
var Ignore = Value{kind: KindSentinel, sentinel: SentinelIgnore}

// None returns the None value.
func None() Value { return Value{} }

// Int returns an Int value.
func Int(v int64) Value { return Value{kind: KindInt, num: v} }

// Str returns a Str value.
func Str(v string) Value { return Value{kind: KindStr, str: v} }

// Bool returns a Bool value.
func Bool(v bool) Value { return Value{kind: KindBool, flag: v} }

// SentinelValue returns a Sentinel value.
func SentinelValue(s Sentinel) Value { return Value{kind: KindSentinel, sentinel: s} }

// NewList returns a List holding items in order.
func NewList(items ...Value) Value {
	return Value{kind: KindList, items: slices.Clone(items)}
}

// NewMap returns a Map built from entries. When two entries carry structurally
// equal keys the later one wins, keeping the position of the first.
func NewMap(entries ...MapEntry) Value {
	idx := newValueIndex(len(entries))
	out := make([]MapEntry, 0, len(entries))
	for _, e := range entries {
		if i, ok := idx.find(e.Key, func(i int) Value { return out[i].Key }); ok {
			out[i].Value = e.Value
			continue
		}
		idx.add(e.Key, len(out))
		out = append(out, e)
	}
	return Value{kind: KindMap, entries: out}
}

// NewSet returns a Set holding the distinct items.
func NewSet(items ...Value) Value {
	idx := newValueIndex(len(items))
	out := make([]Value, 0, len(items))
	for _, v := range items {
		if _, ok := idx.find(v, func(i int) Value { return out[i] }); ok {
			continue
		}
		idx.add(v, len(out))
		out = append(out, v)
	}
	return Value{kind: KindSet, items: out}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is None.
func (v Value) IsNone() bool { return v.kind == KindNone }

// AsInt returns the integer if v is an Int.
func (v Value) AsInt() (int64, bool) { return v.num, v.kind == KindInt }

// AsStr returns the string if v is a Str.
func (v Value) AsStr() (string, bool) { return v.str, v.kind == KindStr }

// AsBool returns the boolean if v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.flag, v.kind == KindBool }

// AsSentinel returns the sentinel if v is a Sentinel.
func (v Value) AsSentinel() (Sentinel, bool) { return v.sentinel, v.kind == KindSentinel }

// Entries returns a copy of the map entries in insertion order, or nil if v is not a Map.
func (v Value) Entries() []MapEntry {
	if v.kind != KindMap {
		return nil
	}
	return slices.Clone(v.entries)
}

// Items returns a copy of the elements of a List or Set, or nil otherwise.
func (v Value) Items() []Value {
	if v.kind != KindList && v.kind != KindSet {
		return nil
	}
	return slices.Clone(v.items)
}

// Len returns the number of elements of a Map, List or Set.
func (v Value) Len() int {
	if v.kind == KindMap {
		return len(v.entries)
	}
	return len(v.items)
}

// Lookup returns the value stored under key if v is a Map.
func (v Value) Lookup(key Value) (Value, bool) {
	for _, e := range v.entries {
		if e.Key.Equal(key) {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Contains reports whether a Set or List holds item.
func (v Value) Contains(item Value) bool {
	return slices.ContainsFunc(v.items, item.Equal)
}

// SortedEntries returns the map entries ordered by the debug representation of
// their keys. Two equal maps always yield the same order.
func (v Value) SortedEntries() []MapEntry {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, len(v.entries))
	order := make([]int, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.Key.String()
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return strings.Compare(keys[a], keys[b])
	})
	out := make([]MapEntry, len(order))
	for i, j := range order {
		out[i] = v.entries[j]
	}
	return out
}

// SortedItems returns the elements of a List or Set. Set elements are ordered
// by their debug representation, so two equal sets always yield the same
// order; List elements keep their order.
func (v Value) SortedItems() []Value {
	switch v.kind {
	case KindList:
		return slices.Clone(v.items)
	case KindSet:
		keys := make([]string, len(v.items))
		order := make([]int, len(v.items))
		for i, item := range v.items {
			keys[i] = item.String()
			order[i] = i
		}
		slices.SortStableFunc(order, func(a, b int) int {
			return strings.Compare(keys[a], keys[b])
		})
		out := make([]Value, len(order))
		for i, j := range order {
			out[i] = v.items[j]
		}
		return out
	}
	return nil
}

// Equal reports structural equality. Map and Set comparison ignores order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindInt:
		return v.num == o.num
	case KindStr:
		return v.str == o.str
	case KindBool:
		return v.flag == o.flag
	case KindSentinel:
		return v.sentinel == o.sentinel
	case KindList:
		return slices.EqualFunc(v.items, o.items, Value.Equal)
	case KindSet:
		if len(v.items) != len(o.items) {
			return false
		}
		for _, item := range v.items {
			if !o.Contains(item) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.entries) != len(o.entries) {
			return false
		}
		for _, e := range v.entries {
			other, ok := o.Lookup(e.Key)
			if !ok || !other.Equal(e.Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash returns a shallow hash. Only Int, Str, Bool and Sentinel contribute their
// payload; Map, List, Set and None hash to a constant per kind, so composite values
// remain valid keys but share a bucket.
func (v Value) Hash() uint64 {
	var buf [9]byte
	buf[0] = byte(v.kind)
	switch v.kind {
	case KindInt:
		binary.LittleEndian.PutUint64(buf[1:], uint64(v.num))
		return xxhash.Sum64(buf[:])
	case KindBool:
		if v.flag {
			buf[1] = 1
		}
		return xxhash.Sum64(buf[:2])
	case KindSentinel:
		buf[1] = byte(v.sentinel)
		return xxhash.Sum64(buf[:2])
	case KindStr:
		d := xxhash.New()
		_, _ = d.Write(buf[:1])
		_, _ = d.WriteString(v.str)
		return d.Sum64()
	}
	return xxhash.Sum64(buf[:1])
}

// String returns the debug representation, e.g. Map({Str("a"): Int(1)}).
func (v Value) String() string {
	var sb strings.Builder
	v.writeDebug(&sb)
	return sb.String()
}

func (v Value) writeDebug(sb *strings.Builder) {
	switch v.kind {
	case KindNone:
		sb.WriteString("None")
	case KindInt:
		sb.WriteString("Int(")
		sb.WriteString(strconv.FormatInt(v.num, 10))
		sb.WriteByte(')')
	case KindStr:
		sb.WriteString("Str(")
		sb.WriteString(strconv.Quote(v.str))
		sb.WriteByte(')')
	case KindBool:
		sb.WriteString("Bool(")
		sb.WriteString(strconv.FormatBool(v.flag))
		sb.WriteByte(')')
	case KindSentinel:
		sb.WriteString("Sentinel(")
		sb.WriteString(v.sentinel.String())
		sb.WriteByte(')')
	case KindList, KindSet:
		sb.WriteString(v.kind.String())
		sb.WriteString("([")
		for i, item := range v.SortedItems() {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.writeDebug(sb)
		}
		sb.WriteString("])")
	case KindMap:
		sb.WriteString("Map({")
		for i, e := range v.SortedEntries() {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.Key.writeDebug(sb)
			sb.WriteString(": ")
			e.Value.writeDebug(sb)
		}
		sb.WriteString("})")
	default:
		fmt.Fprintf(sb, "%s(?)", v.kind)
	}
}

// valueIndex buckets positions by Value.Hash for deduplication.
type valueIndex map[uint64][]int

func newValueIndex(n int) valueIndex {
	return make(valueIndex, n)
}

func (idx valueIndex) find(v Value, at func(int) Value) (int, bool) {
	for _, i := range idx[v.Hash()] {
		if at(i).Equal(v) {
			return i, true
		}
	}
	return 0, false
}

func (idx valueIndex) add(v Value, i int) {
	h := v.Hash()
	idx[h] = append(idx[h], i)
}
