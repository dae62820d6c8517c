// Copyright (c) 2024 Mythos Authors

// Package merkle implements the structural validator for MerkleListLeaf
// nodes (RFC-MYTHOS-0004): a fixed-shape outer header plus a nested,
// independently-decoded payload holding an ordered list of Hash structs.
// Validation is pure decode-and-check; it never touches storage, and it
// never reorders the list it validates, since list order is part of a
// MerkleListLeaf's content identity.
package merkle

import (
	"github.com/pkg/errors"

	"mythos.dev/can/codec"
	"mythos.dev/can/hash"
	"mythos.dev/can/value"
)

// Node kinds a MerkleNode header's field 2 may carry. v0.2 only defines
// leaves structurally; internal nodes are a wire reservation for a
// future revision and are intentionally not validated here.
const (
	KindMerkleListLeaf     uint64 = 1
	KindMerkleListInternal uint64 = 2
)

// Version is the only MerkleNode header version v0.2 accepts.
const Version uint64 = 1

// FANOUT bounds how many entries a MerkleListLeaf's value list may hold.
const FANOUT = 1024

// NodeHeader is the fixed three-field outer wrapper every Merkle node
// carries: version, kind, and an opaque payload whose shape depends on
// kind.
type NodeHeader struct {
	Version uint64
	Kind    uint64
	Payload []byte
}

// ListLeaf is a MerkleListLeaf's decoded payload: an ordered list of
// content hashes. Order is significant — permuting Values changes the
// node's content identifier even though the set of hashes is unchanged.
type ListLeaf struct {
	Values []hash.Hash
}

// ParseNode decodes a MerkleNode's outer header out of an already
// decoded Value, checking version eagerly and kind tolerantly (callers
// branch on Kind themselves; only ValidateListLeaf commits to a kind).
func ParseNode(v value.Value) (NodeHeader, error) {
	if v.Kind != value.KindMap {
		return NodeHeader{}, &InvalidStructureError{Reason: "merkle node is not a map"}
	}

	versionField, ok := v.Get(1)
	if !ok || versionField.Kind != value.KindUVarint {
		return NodeHeader{}, &InvalidStructureError{Reason: "missing version field"}
	}
	if versionField.UVarint != Version {
		return NodeHeader{}, &InvalidVersionError{Version: versionField.UVarint}
	}

	kindField, ok := v.Get(2)
	if !ok || kindField.Kind != value.KindUVarint {
		return NodeHeader{}, &InvalidStructureError{Reason: "missing kind field"}
	}

	payloadField, ok := v.Get(3)
	if !ok || payloadField.Kind != value.KindBytes {
		return NodeHeader{}, &InvalidStructureError{Reason: "missing payload field"}
	}

	return NodeHeader{
		Version: versionField.UVarint,
		Kind:    kindField.UVarint,
		Payload: payloadField.Bytes,
	}, nil
}

// ValidateListLeaf decodes and validates a MerkleListLeaf payload:
// Map{1: List of Hash}, 1..FANOUT entries, each hash alg=1 and 32 bytes.
// The payload is decoded strictly — a MerkleListLeaf is itself a
// complete, independently content-addressed structure, so trailing
// bytes after it are as much a structural defect as a missing field.
func ValidateListLeaf(payload []byte) (ListLeaf, error) {
	decoded, err := codec.DecodeStrict(payload)
	if err != nil {
		return ListLeaf{}, errors.Wrap(err, "merkle: payload decode failed")
	}

	if decoded.Kind != value.KindMap {
		return ListLeaf{}, &InvalidStructureError{Reason: "MerkleListLeaf must be a map"}
	}

	valuesField, ok := decoded.Get(1)
	if !ok || valuesField.Kind != value.KindList {
		return ListLeaf{}, &InvalidStructureError{Reason: "missing values field"}
	}

	if len(valuesField.List) == 0 || len(valuesField.List) > FANOUT {
		return ListLeaf{}, &InvalidListLengthError{Length: len(valuesField.List)}
	}

	values := make([]hash.Hash, len(valuesField.List))
	for i, item := range valuesField.List {
		h, err := parseHashValue(item)
		if err != nil {
			return ListLeaf{}, errors.Wrapf(err, "values[%d]", i)
		}
		values[i] = h
	}

	return ListLeaf{Values: values}, nil
}

// BuildListLeafNode canonically encodes a MerkleListLeaf payload and
// wraps it in a MerkleNode header, ready to be content-addressed with
// hash.CID. It is the encode-side mirror of ParseNode+ValidateListLeaf.
func BuildListLeafNode(leaf ListLeaf) (value.Value, error) {
	items := make([]value.Value, len(leaf.Values))
	for i, h := range leaf.Values {
		items[i] = h.Value()
	}
	payload, err := codec.Encode(value.NewMap(value.Field(1, value.NewList(items...))))
	if err != nil {
		return value.Value{}, err
	}
	return value.NewMap(
		value.Field(1, value.NewUVarint(Version)),
		value.Field(2, value.NewUVarint(KindMerkleListLeaf)),
		value.Field(3, value.NewBytes(payload)),
	), nil
}

// NodeID computes the content identifier of an already-built MerkleNode
// value: SHA-256 of its canonical encoding, per the generic CID rule
// every record in the system shares.
func NodeID(node value.Value) (hash.Hash, error) {
	return hash.CID(node)
}

func parseHashValue(v value.Value) (hash.Hash, error) {
	h, err := hash.FromValue(v)
	if err != nil {
		return hash.Hash{}, &InvalidStructureError{Reason: err.Error()}
	}
	if h.Alg != hash.AlgSHA256 {
		return hash.Hash{}, &InvalidHashAlgError{Alg: uint64(h.Alg)}
	}
	if len(h.Bytes) != hash.Size {
		return hash.Hash{}, &InvalidHashLengthError{Length: len(h.Bytes)}
	}
	return h, nil
}
