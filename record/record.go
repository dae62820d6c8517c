// Copyright (c) 2024 Mythos Authors

// Package record centralizes the one pattern every self-referential
// identifier in MYTHOS-CAN shares: canonically encode a record's fields
// with one or more of those fields excluded, because the excluded field
// is either the identifier being computed (receipt_id, dataset_def_id)
// or a signature over an identifier that must not feed back into it.
package record

import (
	"mythos.dev/can/codec"
	"mythos.dev/can/value"
)

// ExcludeFields returns a copy of a Map value with every pair whose key
// is a UVarint or IVarint matching one of excluded removed. Field keys
// are matched defensively across both UVarint and IVarint encodings,
// since a hand-built record is not guaranteed to have used the same
// varint kind for its field keys as the canonical encoder would choose.
func ExcludeFields(v value.Value, excluded ...uint64) (value.Value, error) {
	if v.Kind != value.KindMap {
		return value.Value{}, &NotAMapError{Kind: v.Kind}
	}
	kept := make([]value.Pair, 0, len(v.Map))
	for _, p := range v.Map {
		if isExcludedKey(p.Key, excluded) {
			continue
		}
		kept = append(kept, p)
	}
	return value.Value{Kind: value.KindMap, Map: kept}, nil
}

func isExcludedKey(key value.Value, excluded []uint64) bool {
	var n uint64
	switch key.Kind {
	case value.KindUVarint:
		n = key.UVarint
	case value.KindIVarint:
		if key.IVarint < 0 {
			return false
		}
		n = uint64(key.IVarint)
	default:
		return false
	}
	for _, e := range excluded {
		if n == e {
			return true
		}
	}
	return false
}

// HasField reports whether a Map value has a pair whose key is a UVarint
// or IVarint equal to n. Used to detect a caller forgetting to set the
// field an ID computation is about to strip — a missing id field is a
// drift signal, not a valid "field was optional" case.
func HasField(v value.Value, n uint64) bool {
	if v.Kind != value.KindMap {
		return false
	}
	for _, p := range v.Map {
		if isExcludedKey(p.Key, []uint64{n}) {
			return true
		}
	}
	return false
}

// CanonicalBytesExcluding encodes v's canonical bytes after removing the
// named fields. This is the shared core of ComputeReceiptID and
// ComputeDatasetDefID: both are SHA-256 of canonical_bytes(record minus
// its own id field, and for Receipt, minus its signature too).
func CanonicalBytesExcluding(v value.Value, excluded ...uint64) ([]byte, error) {
	stripped, err := ExcludeFields(v, excluded...)
	if err != nil {
		return nil, err
	}
	return codec.Encode(stripped)
}
