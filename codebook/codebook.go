// Copyright (c) 2024 Mythos Authors

// Package codebook computes the content identifier of a codebook
// entries blob: a flat SHA-256 over whatever canonical bytes the caller
// already has in hand, with the hashicorp/golang-lru cache to avoid
// rehashing the same entries blob on every lookup in a long-running
// host process.
package codebook

import (
	lru "github.com/hashicorp/golang-lru"

	"mythos.dev/can/hash"
)

// DefaultCacheSize is a suggested size to pass to NewCache: how many
// distinct entries-blob digests a Cache remembers before evicting the
// least recently used.
const DefaultCacheSize = 256

// Cache memoizes ID by a caller-supplied string key (not by the entries'
// content), so repeated calls under the same key skip rehashing. It is
// safe for concurrent use; golang-lru.Cache guards its own state.
type Cache struct {
	lru *lru.Cache
}

// NewCache builds a Cache holding up to size entries.
func NewCache(size int) (*Cache, error) {
	l, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// ID computes codebook_id = SHA-256(entries), the generic CID rule
// applied directly to an already-serialized entries blob.
func ID(entries []byte) hash.Hash {
	return hash.SHA256(entries)
}

// ID looks up or computes ID(entries), keyed by a caller-supplied string
// key (typically the codebook's name or path) rather than by content, so
// a cache hit costs a map lookup instead of rehashing entries.
func (c *Cache) ID(key string, entries []byte) hash.Hash {
	if v, ok := c.lru.Get(key); ok {
		return v.(hash.Hash)
	}
	h := ID(entries)
	c.lru.Add(key, h)
	return h
}
