package hash

// ComputeIdempotencyID computes
// SHA-256(tool_id_digest || idempotency_key), a raw byte concatenation
// rather than a canonical Map encoding — the one ID recipe in the system
// that does not go through the codec. toolIDDigest must be the 32-byte
// SHA-256 digest from the tool's Hash struct, not the Hash struct itself.
func ComputeIdempotencyID(toolIDDigest [Size]byte, idempotencyKey []byte) Hash {
	data := make([]byte, 0, Size+len(idempotencyKey))
	data = append(data, toolIDDigest[:]...)
	data = append(data, idempotencyKey...)
	return SHA256(data)
}
