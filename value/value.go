// Copyright (c) 2024 Mythos Authors

// Package value defines the MYTHOS-CAN value algebra: a closed set of
// eight self-describing variants, each carrying a one-byte type tag at
// the wire level. A Value is a plain, freely-copyable struct with a Kind
// discriminator and per-kind payload fields — the same shape
// micheline.Prim uses for Michelson's own closed primitive set, rather
// than an interface-based sum type, so that zero values, equality, and
// struct literals all stay cheap and obvious.
package value

// Kind identifies which of the eight MYTHOS-CAN variants a Value holds.
// Kind values are NOT wire tag bytes: Bool uses two distinct tags,
// 0x01/0x02, for a single Kind, so every Kind after Bool is numbered one
// below its tag. The codec maps each Kind to its Tag* constant below.
type Kind byte

const (
	KindNull Kind = iota
	KindBool
	KindUVarint
	KindIVarint
	KindBytes
	KindText
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindUVarint:
		return "uvarint"
	case KindIVarint:
		return "ivarint"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Wire tag bytes, per spec §3.1.
const (
	TagNull      byte = 0x00
	TagBoolFalse byte = 0x01
	TagBoolTrue  byte = 0x02
	TagUVarint   byte = 0x03
	TagIVarint   byte = 0x04
	TagBytes     byte = 0x05
	TagText      byte = 0x06
	TagList      byte = 0x07
	TagMap       byte = 0x08
)

// Pair is a single (key, value) entry of a Map. Keys may be any Value;
// canonical ordering is defined on the wire bytes of the key, not on any
// semantic ordering of Kind.
type Pair struct {
	Key Value
	Val Value
}

// Value is one of the eight MYTHOS-CAN variants. Only the fields relevant
// to Kind are meaningful; the rest are left at their zero value.
type Value struct {
	Kind    Kind
	Bool    bool
	UVarint uint64
	IVarint int64
	Bytes   []byte
	Text    string
	List    []Value
	Map     []Pair
}

// Null is the singleton Null value.
var Null = Value{Kind: KindNull}

// NewBool builds a Bool value.
func NewBool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NewUVarint builds a UVarint value.
func NewUVarint(n uint64) Value { return Value{Kind: KindUVarint, UVarint: n} }

// NewIVarint builds an IVarint value.
func NewIVarint(n int64) Value { return Value{Kind: KindIVarint, IVarint: n} }

// NewBytes builds a Bytes value. The slice is kept by reference.
func NewBytes(b []byte) Value { return Value{Kind: KindBytes, Bytes: b} }

// NewText builds a Text value.
func NewText(s string) Value { return Value{Kind: KindText, Text: s} }

// NewList builds a List value. The slice is kept by reference.
func NewList(items ...Value) Value { return Value{Kind: KindList, List: items} }

// NewMap builds a Map value from unordered pairs; canonical ordering is
// established by the encoder, not here.
func NewMap(pairs ...Pair) Value { return Value{Kind: KindMap, Map: pairs} }

// Field is a convenience constructor for a Pair keyed by a small field
// number, the shape every MYTHOS record (Hash, AgentID, Receipt, ...)
// uses for its map keys.
func Field(n uint64, v Value) Pair { return Pair{Key: NewUVarint(n), Val: v} }

// Equal reports whether two Values are structurally identical. This is a
// semantic equality check used by tests and callers comparing decoded
// values; canonical byte equality (the stronger, wire-level notion used
// by the codec) is computed by re-encoding both sides.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindUVarint:
		return v.UVarint == o.UVarint
	case KindIVarint:
		return v.IVarint == o.IVarint
	case KindBytes:
		return bytesEqual(v.Bytes, o.Bytes)
	case KindText:
		return v.Text == o.Text
	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.Map) != len(o.Map) {
			return false
		}
		for i := range v.Map {
			if !v.Map[i].Key.Equal(o.Map[i].Key) || !v.Map[i].Val.Equal(o.Map[i].Val) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Get returns the value of the first pair in a Map whose key is the
// UVarint field number n, following the "fields are addressed by a small
// integer key" convention every MYTHOS record uses.
func (v Value) Get(n uint64) (Value, bool) {
	if v.Kind != KindMap {
		return Value{}, false
	}
	for _, p := range v.Map {
		if p.Key.Kind == KindUVarint && p.Key.UVarint == n {
			return p.Val, true
		}
	}
	return Value{}, false
}
