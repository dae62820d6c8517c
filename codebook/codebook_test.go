package codebook

import "testing"

func TestIDDeterministic(t *testing.T) {
	entries := []byte("entry-one\x00entry-two")
	a := ID(entries)
	b := ID(entries)
	if !a.Equal(b) {
		t.Fatal("ID is not deterministic")
	}
}

func TestIDSensitiveToContent(t *testing.T) {
	a := ID([]byte("entries-a"))
	b := ID([]byte("entries-b"))
	if a.Equal(b) {
		t.Fatal("ID must differ for different entries blobs")
	}
}

func TestCacheHitsAvoidRecompute(t *testing.T) {
	c, err := NewCache(4)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	first := c.ID("book", []byte("entries"))
	// A hit under the same key returns the stored digest without hashing
	// the new bytes, so changed entries still yield the first ID.
	second := c.ID("book", []byte("changed entries"))
	if !first.Equal(second) {
		t.Fatal("cache hit should return the stored ID without rehashing")
	}
}
