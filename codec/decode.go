package codec

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"mythos.dev/can/value"
	"mythos.dev/can/varint"
)

// DecodeStrict decodes exactly one Value from data and fails with
// *TrailingBytesError if any bytes remain afterward. This is the mode
// used for anything touching identity: stored artifacts, test vectors,
// identifier inputs.
func DecodeStrict(data []byte) (value.Value, error) {
	return DecodeStrictWithOptions(data, DefaultOptions())
}

// DecodeStrictWithOptions is DecodeStrict with an explicit nesting-depth
// budget.
func DecodeStrictWithOptions(data []byte, opts Options) (value.Value, error) {
	buf := bytes.NewBuffer(data)
	v, err := decodeValue(buf, opts, 0)
	if err != nil {
		return value.Value{}, err
	}
	if buf.Len() > 0 {
		logger.Debugf("codec: strict decode found %d trailing byte(s)", buf.Len())
		return value.Value{}, &TrailingBytesError{Remaining: buf.Len()}
	}
	return v, nil
}

// DecodeLenient decodes the first Value from data and ignores any
// trailing bytes. It exists solely for embedded use where a Value is a
// prefix of a larger framing, and must never be used for identifier
// inputs.
func DecodeLenient(data []byte) (value.Value, error) {
	return DecodeLenientWithOptions(data, DefaultOptions())
}

// DecodeLenientWithOptions is DecodeLenient with an explicit nesting-depth
// budget.
func DecodeLenientWithOptions(data []byte, opts Options) (value.Value, error) {
	buf := bytes.NewBuffer(data)
	return decodeValue(buf, opts, 0)
}

func decodeValue(buf *bytes.Buffer, opts Options, depth int) (value.Value, error) {
	if depth > opts.MaxDepth {
		return value.Value{}, ErrMaxDepthExceeded
	}

	tag, err := buf.ReadByte()
	if err != nil {
		return value.Value{}, ErrUnexpectedEOF
	}

	switch tag {
	case value.TagNull:
		return value.Null, nil

	case value.TagBoolFalse:
		return value.NewBool(false), nil

	case value.TagBoolTrue:
		return value.NewBool(true), nil

	case value.TagUVarint:
		n, err := varint.DecodeUvarint(buf)
		if err != nil {
			return value.Value{}, wrapVarintErr(err)
		}
		return value.NewUVarint(n), nil

	case value.TagIVarint:
		n, err := varint.DecodeIvarint(buf)
		if err != nil {
			return value.Value{}, wrapVarintErr(err)
		}
		return value.NewIVarint(n), nil

	case value.TagBytes:
		b, err := readLengthPrefixed(buf)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewBytes(b), nil

	case value.TagText:
		b, err := readLengthPrefixed(buf)
		if err != nil {
			return value.Value{}, err
		}
		if !utf8.Valid(b) {
			return value.Value{}, ErrInvalidUTF8
		}
		return value.NewText(string(b)), nil

	case value.TagList:
		count, err := varint.DecodeUvarint(buf)
		if err != nil {
			return value.Value{}, wrapVarintErr(err)
		}
		items := make([]value.Value, 0, count)
		for i := uint64(0); i < count; i++ {
			item, err := decodeValue(buf, opts, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, item)
		}
		return value.Value{Kind: value.KindList, List: items}, nil

	case value.TagMap:
		return decodeMap(buf, opts, depth)

	default:
		return value.Value{}, &UnknownTagError{Tag: tag}
	}
}

// decodeMap reads a Map's pairs and enforces canonical ordering as it
// goes: each key is decoded, then re-encoded to recover its canonical
// bytes, and compared against the previous key's bytes under unsigned
// byte order. Ascending is the only accepted transition; equal is a
// duplicate key, descending is a non-canonical ordering. Both reject the
// whole decode, matching §4.3.
func decodeMap(buf *bytes.Buffer, opts Options, depth int) (value.Value, error) {
	count, err := varint.DecodeUvarint(buf)
	if err != nil {
		return value.Value{}, wrapVarintErr(err)
	}

	pairs := make([]value.Pair, 0, count)
	var lastKeyBytes []byte

	for i := uint64(0); i < count; i++ {
		key, err := decodeValue(buf, opts, depth+1)
		if err != nil {
			return value.Value{}, err
		}

		keyBytes, err := EncodeWithOptions(key, opts)
		if err != nil {
			return value.Value{}, err
		}

		if lastKeyBytes != nil {
			switch bytes.Compare(keyBytes, lastKeyBytes) {
			case 0:
				return value.Value{}, ErrDuplicateMapKey
			case -1:
				logger.Debugf("codec: map key out of order at pair %d", i)
				return value.Value{}, ErrNonCanonicalMapOrder
			}
		}

		val, err := decodeValue(buf, opts, depth+1)
		if err != nil {
			return value.Value{}, err
		}

		pairs = append(pairs, value.Pair{Key: key, Val: val})
		lastKeyBytes = keyBytes
	}

	return value.Value{Kind: value.KindMap, Map: pairs}, nil
}

func readLengthPrefixed(buf *bytes.Buffer) ([]byte, error) {
	n, err := varint.DecodeUvarint(buf)
	if err != nil {
		return nil, wrapVarintErr(err)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(buf, b); err != nil {
		return nil, ErrUnexpectedEOF
	}
	return b, nil
}

func wrapVarintErr(err error) error {
	if errors.Is(err, varint.ErrVarintOverflow) {
		return &VarintOverflowError{err: err}
	}
	return ErrUnexpectedEOF
}
