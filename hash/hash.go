// Copyright (c) 2024 Mythos Authors

// Package hash implements the MYTHOS-CAN self-describing hash struct and
// the SHA-256 content-identifier function every record ID in the system
// is built on. It does not talk to storage or transport; it only turns
// canonical bytes into digests and digests into the Hash struct records
// carry on the wire.
package hash

import (
	"crypto/sha256"

	"mythos.dev/can/codec"
	"mythos.dev/can/value"
)

// Alg identifies a hash algorithm by the numeric ID carried in a Hash
// struct's field 1. v0.2 of the wire format defines exactly one.
type Alg uint64

// AlgSHA256 is the only hash algorithm MYTHOS-CAN currently defines.
const AlgSHA256 Alg = 1

// Size is the digest length, in bytes, of AlgSHA256.
const Size = sha256.Size

// Hash is the self-describing digest every content identifier in the
// system is expressed as: an algorithm tag plus the raw digest bytes.
// Field 1 is alg, field 2 is bytes, matching the wire layout used
// throughout the record layer (tool_id, request_hash, evidence entries,
// and the merkle/blob node hash lists).
type Hash struct {
	Alg   Alg
	Bytes []byte
}

// SHA256 hashes data and wraps the digest as a Hash with AlgSHA256.
func SHA256(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash{Alg: AlgSHA256, Bytes: sum[:]}
}

// Sum returns the raw 32-byte SHA-256 digest of data, without the Hash
// wrapper, for callers that only need the digest itself (for example to
// feed into ComputeIdempotencyID).
func Sum(data []byte) [Size]byte {
	return sha256.Sum256(data)
}

// Equal reports whether h and o carry the same algorithm and digest.
func (h Hash) Equal(o Hash) bool {
	if h.Alg != o.Alg || len(h.Bytes) != len(o.Bytes) {
		return false
	}
	for i := range h.Bytes {
		if h.Bytes[i] != o.Bytes[i] {
			return false
		}
	}
	return true
}

// Value renders h as the canonical Map{1: alg, 2: bytes} the wire format
// expects wherever a Hash struct is embedded.
func (h Hash) Value() value.Value {
	return value.NewMap(
		value.Field(1, value.NewUVarint(uint64(h.Alg))),
		value.Field(2, value.NewBytes(h.Bytes)),
	)
}

// FromValue reads a Hash back out of its canonical Map encoding. It does
// not itself validate alg or length; callers that need the merkle/blob
// structural guarantees should go through the validators in package
// merkle or blob, which call this and then check alg and length.
func FromValue(v value.Value) (Hash, error) {
	if v.Kind != value.KindMap {
		return Hash{}, &MalformedHashError{Reason: "hash is not a map"}
	}
	algField, ok := v.Get(1)
	if !ok || algField.Kind != value.KindUVarint {
		return Hash{}, &MalformedHashError{Reason: "hash field 1 (alg) missing or not a uvarint"}
	}
	bytesField, ok := v.Get(2)
	if !ok || bytesField.Kind != value.KindBytes {
		return Hash{}, &MalformedHashError{Reason: "hash field 2 (bytes) missing or not bytes"}
	}
	return Hash{Alg: Alg(algField.UVarint), Bytes: bytesField.Bytes}, nil
}

// CID computes the generic content identifier of a value: its canonical
// MYTHOS-CAN encoding, SHA-256'd, wrapped as a Hash. This is the building
// block every record-specific ID recipe (receipt, dataset def, codebook)
// is a variation of.
func CID(v value.Value) (Hash, error) {
	b, err := codec.Encode(v)
	if err != nil {
		return Hash{}, err
	}
	return SHA256(b), nil
}

// MustCID is CID for callers that have already established the value
// encodes cleanly — test fixtures and example code. It panics on error.
func MustCID(v value.Value) Hash {
	h, err := CID(v)
	if err != nil {
		panic(err)
	}
	return h
}
