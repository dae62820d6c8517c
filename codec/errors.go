package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conditions that carry no extra context.
var (
	// ErrUnexpectedEOF is returned when the input is exhausted mid-value.
	ErrUnexpectedEOF = errors.New("codec: unexpected end of input")

	// ErrInvalidUTF8 is returned when a Text payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("codec: text payload is not valid UTF-8")

	// ErrDuplicateMapKey is returned when two map keys share identical
	// canonical encodings, whether detected while sorting pairs to encode
	// or while walking an already-sorted buffer to decode.
	ErrDuplicateMapKey = errors.New("codec: duplicate map key")

	// ErrNonCanonicalMapOrder is returned when a decoded map key compares
	// less than its predecessor under unsigned byte order.
	ErrNonCanonicalMapOrder = errors.New("codec: map keys not in canonical order")

	// ErrMaxDepthExceeded is returned when a value nests deeper than an
	// Options.MaxDepth budget allows. The exact bound is a deployment
	// choice (see Options), not part of the on-wire contract.
	ErrMaxDepthExceeded = errors.New("codec: maximum nesting depth exceeded")
)

// UnknownTagError is returned when a tag byte outside 0x00..0x08 is read
// at a value boundary.
type UnknownTagError struct {
	Tag byte
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("codec: unknown type tag 0x%02x", e.Tag)
}

// TrailingBytesError is returned by strict decode when the buffer still
// holds bytes after a complete value has been read.
type TrailingBytesError struct {
	Remaining int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("codec: %d trailing byte(s) after value", e.Remaining)
}

// VarintOverflowError wraps the varint package's overflow condition. It
// carries no position information. It unwraps to varint.ErrVarintOverflow
// via errors.Is.
type VarintOverflowError struct {
	err error
}

func (e *VarintOverflowError) Error() string { return e.err.Error() }
func (e *VarintOverflowError) Unwrap() error { return e.err }
