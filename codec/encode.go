// Copyright (c) 2024 Mythos Authors

// Package codec implements the MYTHOS-CAN canonical encoder and strict
// decoder over the value algebra in package value. Encoding is a pure
// function from a value.Value to bytes. It fails when a Map's keys
// collide once encoded (ErrDuplicateMapKey), when the value nests deeper
// than Options.MaxDepth (ErrMaxDepthExceeded), or when a Value's Kind is
// not one of the eight variants (*UnknownTagError).
package codec

import (
	"bytes"

	"golang.org/x/exp/slices"

	"mythos.dev/can/value"
	"mythos.dev/can/varint"
)

// Encode returns the canonical MYTHOS-CAN encoding of v, using
// DefaultOptions for the nesting-depth bound.
func Encode(v value.Value) ([]byte, error) {
	return EncodeWithOptions(v, DefaultOptions())
}

// EncodeWithOptions returns the canonical encoding of v, rejecting values
// that nest deeper than opts.MaxDepth.
func EncodeWithOptions(v value.Value, opts Options) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encodeValue(buf, v, opts, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v value.Value, opts Options, depth int) error {
	if depth > opts.MaxDepth {
		return ErrMaxDepthExceeded
	}

	switch v.Kind {
	case value.KindNull:
		buf.WriteByte(value.TagNull)

	case value.KindBool:
		if v.Bool {
			buf.WriteByte(value.TagBoolTrue)
		} else {
			buf.WriteByte(value.TagBoolFalse)
		}

	case value.KindUVarint:
		buf.WriteByte(value.TagUVarint)
		varint.EncodeUvarint(buf, v.UVarint)

	case value.KindIVarint:
		buf.WriteByte(value.TagIVarint)
		varint.EncodeIvarint(buf, v.IVarint)

	case value.KindBytes:
		buf.WriteByte(value.TagBytes)
		varint.EncodeUvarint(buf, uint64(len(v.Bytes)))
		buf.Write(v.Bytes)

	case value.KindText:
		buf.WriteByte(value.TagText)
		text := []byte(v.Text)
		varint.EncodeUvarint(buf, uint64(len(text)))
		buf.Write(text)

	case value.KindList:
		buf.WriteByte(value.TagList)
		varint.EncodeUvarint(buf, uint64(len(v.List)))
		for _, item := range v.List {
			if err := encodeValue(buf, item, opts, depth+1); err != nil {
				return err
			}
		}

	case value.KindMap:
		return encodeMap(buf, v.Map, opts, depth)

	default:
		return &UnknownTagError{Tag: byte(v.Kind)}
	}
	return nil
}

// mapEntry pairs a key's pre-encoded canonical bytes with its value, so
// the sort step never has to re-derive or re-compare semantic keys — only
// the wire bytes, which is the only notion of order the spec defines.
type mapEntry struct {
	keyBytes []byte
	val      value.Value
}

// encodeMap is the one place canonical map ordering is established:
// encode every key once, sort the resulting (keyBytes, value) pairs by
// unsigned byte order, reject adjacent duplicates, then emit tag, count,
// and the sorted pairs. Sorting on pre-encoded bytes (rather than on the
// value.Value keys themselves) means the comparison is total even across
// mixed key kinds, and the encode-each-key-once step avoids the quadratic
// blowup of re-encoding during comparisons.
func encodeMap(buf *bytes.Buffer, pairs []value.Pair, opts Options, depth int) error {
	entries := make([]mapEntry, len(pairs))
	for i, p := range pairs {
		kbuf := bytes.NewBuffer(nil)
		if err := encodeValue(kbuf, p.Key, opts, depth+1); err != nil {
			return err
		}
		entries[i] = mapEntry{keyBytes: kbuf.Bytes(), val: p.Val}
	}

	slices.SortFunc(entries, func(a, b mapEntry) int {
		return bytes.Compare(a.keyBytes, b.keyBytes)
	})

	for i := 1; i < len(entries); i++ {
		if bytes.Equal(entries[i].keyBytes, entries[i-1].keyBytes) {
			return ErrDuplicateMapKey
		}
	}

	buf.WriteByte(value.TagMap)
	varint.EncodeUvarint(buf, uint64(len(entries)))
	for _, e := range entries {
		buf.Write(e.keyBytes)
		if err := encodeValue(buf, e.val, opts, depth+1); err != nil {
			return err
		}
	}
	return nil
}
