package varint

import "errors"

// ErrVarintOverflow is returned when a uvarint consumes more than MaxBytes
// bytes, or when the accumulated bit shift would exceed 63 before the
// terminating byte is read.
var ErrVarintOverflow = errors.New("varint: overflow")
