// Copyright (c) 2024 Mythos Authors

// Command mythoscan-vectors demonstrates the encode/decode and
// identifier-computation paths against a handful of hand-built fixtures.
// It is a worked example, not a conformance-test runner: it prints each
// fixture's canonical bytes and, where applicable, its content
// identifier, and exits non-zero if any fixture fails to round-trip.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/iancoleman/strcase"

	"mythos.dev/can/codec"
	"mythos.dev/can/hash"
	"mythos.dev/can/merkle"
	"mythos.dev/can/value"
)

type fixture struct {
	name string
	v    value.Value
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fixtures := []fixture{
		{"null value", value.Null},
		{"uvarint three hundred", value.NewUVarint(300)},
		{"text hello", value.NewText("hello")},
		{"map canonical order", value.NewMap(
			value.Pair{Key: value.NewText("b"), Val: value.NewUVarint(2)},
			value.Pair{Key: value.NewText("a"), Val: value.NewUVarint(1)},
		)},
	}

	for _, f := range fixtures {
		if err := printFixture(f); err != nil {
			return fmt.Errorf("fixture %s: %w", strcase.ToSnake(f.name), err)
		}
	}

	return printMerkleFixture()
}

func printFixture(f fixture) error {
	enc, err := codec.Encode(f.v)
	if err != nil {
		return err
	}
	dec, err := codec.DecodeStrict(enc)
	if err != nil {
		return err
	}
	if !dec.Equal(f.v) {
		return fmt.Errorf("round-trip mismatch")
	}
	fmt.Printf("%-24s %s\n", strcase.ToSnake(f.name), hex.EncodeToString(enc))
	return nil
}

func printMerkleFixture() error {
	leaf := merkle.ListLeaf{Values: []hash.Hash{
		hash.SHA256([]byte("chunk-a")),
		hash.SHA256([]byte("chunk-b")),
	}}
	node, err := merkle.BuildListLeafNode(leaf)
	if err != nil {
		return err
	}
	id, err := merkle.NodeID(node)
	if err != nil {
		return err
	}
	fmt.Printf("%-24s %s\n", "merkle_list_leaf_cid", hex.EncodeToString(id.Bytes))
	return nil
}
