// Copyright (c) 2024 Mythos Authors

// Package varint implements the MYTHOS-CAN variable-length integer
// encoding: LEB128 for unsigned 64-bit integers, and zigzag + LEB128 for
// signed 64-bit integers. Every function here is a pure transform between
// an integer and its little-endian, 7-bit-per-byte wire form; none of them
// know about tags, values, or maps — that lives one layer up in package
// value/codec.
package varint

import (
	"bytes"
	"io"
)

// MaxBytes is the longest a well-formed uvarint may be: ceil(64/7) = 10
// bytes, the tenth carrying only a single payload bit.
const MaxBytes = 10

// EncodeUvarint appends the LEB128 encoding of n to buf.
//
// Each byte carries 7 bits of payload in its low bits; the high bit (0x80)
// is set on every byte except the last. Zero encodes to the single byte
// 0x00. The encoder never emits a long-form (redundant continuation byte)
// encoding.
func EncodeUvarint(buf *bytes.Buffer, n uint64) {
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if n == 0 {
			return
		}
	}
}

// AppendUvarint is the allocation-free counterpart of EncodeUvarint for
// callers building a []byte directly instead of through a bytes.Buffer.
func AppendUvarint(dst []byte, n uint64) []byte {
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if n == 0 {
			return dst
		}
	}
}

// DecodeUvarint reads a LEB128-encoded unsigned integer from buf.
//
// It fails with ErrVarintOverflow if more than MaxBytes bytes are consumed
// or if the accumulated shift would exceed 63 before the terminating byte,
// and with io.ErrUnexpectedEOF if the buffer runs out mid-varint. Redundant
// long-form encodings (extra trailing 0x80 groups contributing no bits) are
// accepted, per the spec's decision to tolerate non-canonical input on
// read while never producing it on write.
func DecodeUvarint(buf *bytes.Buffer) (uint64, error) {
	var result uint64
	var shift uint

	for i := 0; ; i++ {
		b, err := buf.ReadByte()
		if err != nil {
			return 0, io.ErrUnexpectedEOF
		}
		if i >= MaxBytes || shift >= 64 {
			return 0, ErrVarintOverflow
		}
		result |= uint64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			return result, nil
		}
	}
}

// ZigzagEncode maps a signed 64-bit integer onto the unsigned range so
// that small-magnitude values (positive or negative) stay short under
// LEB128: 0->0, -1->1, 1->2, -2->3, ... The transform is total over i64;
// in particular MinInt64 maps to MaxUint64 and round-trips exactly.
func ZigzagEncode(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

// ZigzagDecode inverts ZigzagEncode.
func ZigzagDecode(zz uint64) int64 {
	return int64(zz>>1) ^ -int64(zz&1)
}

// EncodeIvarint appends the zigzag + LEB128 encoding of n to buf.
func EncodeIvarint(buf *bytes.Buffer, n int64) {
	EncodeUvarint(buf, ZigzagEncode(n))
}

// DecodeIvarint reads a zigzag + LEB128-encoded signed integer from buf.
func DecodeIvarint(buf *bytes.Buffer) (int64, error) {
	zz, err := DecodeUvarint(buf)
	if err != nil {
		return 0, err
	}
	return ZigzagDecode(zz), nil
}
