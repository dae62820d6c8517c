// Copyright (c) 2024 Mythos Authors

// Package dataset computes dataset_def_id, the content identifier of a
// dataset definition record (RFC-MYTHOS-0003). The id recipe is a
// variant of the receipt_id pattern in package hash: exclude the id
// field itself, canonicalize, SHA-256.
package dataset

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"

	"mythos.dev/can/hash"
	"mythos.dev/can/record"
	"mythos.dev/can/value"
)

// fieldDatasetDefID is the field number a DatasetDef's own id occupies.
// Unlike Receipt, a DatasetDef is defined generically as a Map rather
// than a fixed Go struct, so there is no field to statically omit — the
// exclusion happens at computation time instead.
const fieldDatasetDefID uint64 = 1

// Def wraps the Map value of a dataset definition. Datasets vary widely
// in shape across tools, so unlike Receipt this is not a fixed struct:
// callers build def.Value however their schema requires and pass the
// result here.
type Def struct {
	Value value.Value
}

// ComputeDatasetDefID computes dataset_def_id = SHA-256(canonical_bytes
// (def minus field 1)). It first checks that field 1 is actually present
// (matching either a UVarint or IVarint key, since a hand-built record
// is not guaranteed to have used the canonical key encoding) as a drift
// check: a DatasetDef missing its own id field entirely is a caller bug,
// not something this function should silently tolerate.
func ComputeDatasetDefID(def Def) (hash.Hash, error) {
	if !record.HasField(def.Value, fieldDatasetDefID) {
		return hash.Hash{}, &record.MissingFieldError{Field: fieldDatasetDefID}
	}
	b, err := record.CanonicalBytesExcluding(def.Value, fieldDatasetDefID)
	if err != nil {
		return hash.Hash{}, err
	}
	return hash.SHA256(b), nil
}

// Describe renders a best-effort JSON preview of a dataset definition
// for logs and CLI output, keyed by field number. It is never used for
// identifier computation, which always goes through the canonical
// binary encoding instead.
func Describe(def Def) string {
	fields := make(map[string]interface{}, len(def.Value.Map))
	for _, p := range def.Value.Map {
		if p.Key.Kind != value.KindUVarint {
			continue
		}
		fields[strconv.FormatUint(p.Key.UVarint, 10)] = describeValue(p.Val)
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// FieldSummary looks up a single field's rendered value out of a
// Describe'd definition by gjson path (e.g. "3" for field 3). Returns ""
// if absent.
func FieldSummary(def Def, path string) string {
	return gjson.Get(Describe(def), path).String()
}

func describeValue(v value.Value) interface{} {
	switch v.Kind {
	case value.KindNull:
		return nil
	case value.KindBool:
		return v.Bool
	case value.KindUVarint:
		return v.UVarint
	case value.KindIVarint:
		return v.IVarint
	case value.KindText:
		return v.Text
	case value.KindBytes:
		return strconv.Itoa(len(v.Bytes)) + " bytes"
	case value.KindList:
		return "list(" + strconv.Itoa(len(v.List)) + ")"
	case value.KindMap:
		return "map(" + strconv.Itoa(len(v.Map)) + ")"
	default:
		return "?"
	}
}
