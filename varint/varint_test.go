package varint

import (
	"bytes"
	"io"
	"math"
	"testing"
)

type uvarintCase struct {
	name string
	n    uint64
	enc  []byte
}

var uvarintCases = []uvarintCase{
	{"zero", 0, []byte{0x00}},
	{"one", 1, []byte{0x01}},
	{"127", 127, []byte{0x7f}},
	{"128", 128, []byte{0x80, 0x01}},
	{"300", 300, []byte{0xac, 0x02}},
	{"maxuint64", math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
}

func TestEncodeUvarint(t *testing.T) {
	for _, c := range uvarintCases {
		buf := bytes.NewBuffer(nil)
		EncodeUvarint(buf, c.n)
		if !bytes.Equal(buf.Bytes(), c.enc) {
			t.Errorf("%s: got % x, want % x", c.name, buf.Bytes(), c.enc)
		}
	}
}

func TestDecodeUvarint(t *testing.T) {
	for _, c := range uvarintCases {
		buf := bytes.NewBuffer(c.enc)
		got, err := DecodeUvarint(buf)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if got != c.n {
			t.Errorf("%s: got %d, want %d", c.name, got, c.n)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: %d trailing bytes", c.name, buf.Len())
		}
	}
}

func TestDecodeUvarintEOF(t *testing.T) {
	cases := [][]byte{
		{},
		{0x80},
		{0x80, 0x80, 0x80},
	}
	for _, c := range cases {
		_, err := DecodeUvarint(bytes.NewBuffer(c))
		if err != io.ErrUnexpectedEOF {
			t.Errorf("% x: got %v, want io.ErrUnexpectedEOF", c, err)
		}
	}
}

func TestDecodeUvarintOverflow(t *testing.T) {
	// 11 bytes (10 with the continuation bit set, then a terminator): too
	// long regardless of payload.
	buf := bytes.NewBuffer([]byte{
		0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01,
	})
	_, err := DecodeUvarint(buf)
	if err != ErrVarintOverflow {
		t.Fatalf("got %v, want ErrVarintOverflow", err)
	}
}

func TestDecodeUvarintLongForm(t *testing.T) {
	// Redundant continuation byte contributing zero bits: tolerated on
	// decode even though the encoder never produces it.
	buf := bytes.NewBuffer([]byte{0x80, 0x00})
	got, err := DecodeUvarint(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestZigzagRoundtrip(t *testing.T) {
	cases := []int64{0, -1, 1, -2, 2, -64, 64, math.MinInt64, math.MaxInt64}
	for _, v := range cases {
		zz := ZigzagEncode(v)
		got := ZigzagDecode(zz)
		if got != v {
			t.Errorf("roundtrip(%d): got %d", v, got)
		}
	}
}

func TestZigzagMapping(t *testing.T) {
	cases := []struct {
		n  int64
		zz uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}
	for _, c := range cases {
		if got := ZigzagEncode(c.n); got != c.zz {
			t.Errorf("zigzag(%d): got %d, want %d", c.n, got, c.zz)
		}
	}
}

func TestZigzagMinInt64IsMaxUint64(t *testing.T) {
	if got := ZigzagEncode(math.MinInt64); got != math.MaxUint64 {
		t.Fatalf("zigzag(MinInt64) = %d, want MaxUint64", got)
	}
}

func TestIvarintRoundtrip(t *testing.T) {
	for _, v := range []int64{0, -1, 1, -2, 2, math.MinInt64, math.MaxInt64} {
		buf := bytes.NewBuffer(nil)
		EncodeIvarint(buf, v)
		got, err := DecodeIvarint(buf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != v {
			t.Errorf("roundtrip(%d): got %d", v, got)
		}
	}
}
