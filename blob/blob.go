// Copyright (c) 2024 Mythos Authors

// Package blob implements the structural validator for ChunkLeaf nodes
// (RFC-MYTHOS-0004's chunked-blob variant): a fixed-shape outer header
// plus a nested payload describing how a large object was split into
// fixed-size, independently hashed chunks.
package blob

import (
	"crypto/sha256"

	"github.com/pkg/errors"

	"mythos.dev/can/codec"
	"mythos.dev/can/hash"
	"mythos.dev/can/value"
)

// KindChunkLeaf is the only ChunkedBlobNode kind this package validates.
const KindChunkLeaf uint64 = 3

// Version is the only ChunkedBlobNode header version v0.2 accepts.
const Version uint64 = 1

// NodeHeader is the fixed three-field outer wrapper every chunked-blob
// node carries.
type NodeHeader struct {
	Version uint64
	Kind    uint64
	Payload []byte
}

// ChunkDesc describes one chunk of a chunked blob: its content hash and
// its length in bytes.
type ChunkDesc struct {
	Hash hash.Hash
	Len  uint64
}

// ChunkLeaf is a ChunkLeaf's decoded payload: the chunk size used to
// split the original object, the ordered list of chunk descriptors, and
// the object's total size. Validation deliberately does not check that
// total_size equals the sum of chunk lengths or that chunk_size bounds
// every entry but the last — see the open question recorded in
// DESIGN.md.
type ChunkLeaf struct {
	ChunkSize uint64
	Chunks    []ChunkDesc
	TotalSize uint64
}

// ParseNode decodes a ChunkedBlobNode's outer header out of an already
// decoded Value.
func ParseNode(v value.Value) (NodeHeader, error) {
	if v.Kind != value.KindMap {
		return NodeHeader{}, &InvalidStructureError{Reason: "chunked blob node is not a map"}
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

// ValidateChunkLeaf decodes and validates a ChunkLeaf payload:
// Map{1: chunk_size, 2: list of ChunkDesc, 3: total_size}, each
// ChunkDesc being Map{1: Hash(alg=1, 32 bytes), 2: len}.
func ValidateChunkLeaf(payload []byte) (ChunkLeaf, error) {
	decoded, err := codec.DecodeStrict(payload)
	if err != nil {
		return ChunkLeaf{}, errors.Wrap(err, "blob: payload decode failed")
	}

	if decoded.Kind != value.KindMap {
		return ChunkLeaf{}, &InvalidStructureError{Reason: "ChunkLeaf must be a map"}
	}

	chunkSizeField, ok := decoded.Get(1)
	if !ok || chunkSizeField.Kind != value.KindUVarint {
		return ChunkLeaf{}, &InvalidStructureError{Reason: "missing chunk_size field"}
	}

	chunksField, ok := decoded.Get(2)
	if !ok || chunksField.Kind != value.KindList {
		return ChunkLeaf{}, &InvalidStructureError{Reason: "missing chunks field"}
	}

	totalSizeField, ok := decoded.Get(3)
	if !ok || totalSizeField.Kind != value.KindUVarint {
		return ChunkLeaf{}, &InvalidStructureError{Reason: "missing total_size field"}
	}

	chunks := make([]ChunkDesc, len(chunksField.List))
	for i, item := range chunksField.List {
		desc, err := parseChunkDesc(item)
		if err != nil {
			return ChunkLeaf{}, errors.Wrapf(err, "chunks[%d]", i)
		}
		chunks[i] = desc
	}

	return ChunkLeaf{
		ChunkSize: chunkSizeField.UVarint,
		Chunks:    chunks,
		TotalSize: totalSizeField.UVarint,
	}, nil
}

func parseChunkDesc(v value.Value) (ChunkDesc, error) {
	if v.Kind != value.KindMap {
		return ChunkDesc{}, &InvalidStructureError{Reason: "ChunkDesc must be a map"}
	}

	hashField, ok := v.Get(1)
	if !ok {
		return ChunkDesc{}, &InvalidStructureError{Reason: "ChunkDesc missing hash field"}
	}
	h, err := hash.FromValue(hashField)
	if err != nil {
		return ChunkDesc{}, &InvalidStructureError{Reason: err.Error()}
	}
	if h.Alg != hash.AlgSHA256 {
		return ChunkDesc{}, &InvalidStructureError{Reason: "chunk hash algorithm must be 1 (SHA-256)"}
	}
	if len(h.Bytes) != hash.Size {
		return ChunkDesc{}, &InvalidHashLengthError{Length: len(h.Bytes)}
	}

	lenField, ok := v.Get(2)
	if !ok || lenField.Kind != value.KindUVarint {
		return ChunkDesc{}, &InvalidStructureError{Reason: "ChunkDesc missing len field"}
	}

	return ChunkDesc{Hash: h, Len: lenField.UVarint}, nil
}

// ComputeChunkHashes splits data into chunkSize-byte slices (the last
// possibly shorter) and SHA-256's each in order, for recomputing and
// cross-checking a ChunkLeaf's chunk hashes against the original object.
func ComputeChunkHashes(data []byte, chunkSize uint64) []hash.Hash {
	if chunkSize == 0 {
		return nil
	}
	var hashes []hash.Hash
	for pos := 0; pos < len(data); {
		end := pos + int(chunkSize)
		if end > len(data) {
			end = len(data)
		}
		sum := sha256.Sum256(data[pos:end])
		hashes = append(hashes, hash.Hash{Alg: hash.AlgSHA256, Bytes: sum[:]})
		pos = end
	}
	return hashes
}

// BuildChunkLeafNode canonically encodes a ChunkLeaf payload and wraps
// it in a ChunkedBlobNode header.
func BuildChunkLeafNode(leaf ChunkLeaf) (value.Value, error) {
	items := make([]value.Value, len(leaf.Chunks))
	for i, c := range leaf.Chunks {
		items[i] = value.NewMap(
			value.Field(1, c.Hash.Value()),
			value.Field(2, value.NewUVarint(c.Len)),
		)
	}
	payload, err := codec.Encode(value.NewMap(
		value.Field(1, value.NewUVarint(leaf.ChunkSize)),
		value.Field(2, value.NewList(items...)),
		value.Field(3, value.NewUVarint(leaf.TotalSize)),
	))
	if err != nil {
		return value.Value{}, err
	}
	return value.NewMap(
		value.Field(1, value.NewUVarint(Version)),
		value.Field(2, value.NewUVarint(KindChunkLeaf)),
		value.Field(3, value.NewBytes(payload)),
	), nil
}

// NodeID computes the content identifier of an already-built
// ChunkedBlobNode value: SHA-256 of its canonical encoding.
func NodeID(node value.Value) (hash.Hash, error) {
	return hash.CID(node)
}
