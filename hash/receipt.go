package hash

import (
	"github.com/pkg/errors"

	"mythos.dev/can/record"
	"mythos.dev/can/value"
)

// fieldReceiptID and fieldSignature are the two Receipt fields every ID
// computation must exclude: the identifier being computed, and a
// signature that (by construction) can only be produced after the
// identifier exists.
const (
	fieldReceiptID = 1
	fieldSignature = 11
)

// Receipt mirrors the record layer's Receipt (RFC-MYTHOS-0001 Appendix
// A.9), holding only the fields that feed receipt_id computation. The
// receipt_id field itself and the signature are deliberately absent from
// this struct: there is no field to forget to exclude, because there is
// nowhere to put it.
type Receipt struct {
	ToolID         Hash
	RequestHash    Hash
	ResponseHash   Hash
	IdempotencyKey []byte
	Signer         AgentID
	TimeObservedUS int64
	Status         uint16
	Evidence       []Hash  // optional: nil means absent, not empty
	Notes          *string // optional: nil means absent
}

// Value renders a Receipt as the canonical Map of fields 2 through 10,
// matching the wire layout receipt_id is computed over. Fields 9 and 10
// are emitted only when present, preserving the absent-vs-empty
// distinction the wire format requires.
func (r Receipt) Value() value.Value {
	pairs := []value.Pair{
		value.Field(2, r.ToolID.Value()),
		value.Field(3, r.RequestHash.Value()),
		value.Field(4, r.ResponseHash.Value()),
		value.Field(5, value.NewBytes(r.IdempotencyKey)),
		value.Field(6, r.Signer.Value()),
		value.Field(7, value.NewIVarint(r.TimeObservedUS)),
		value.Field(8, value.NewUVarint(uint64(r.Status))),
	}
	if r.Evidence != nil {
		items := make([]value.Value, len(r.Evidence))
		for i, h := range r.Evidence {
			items[i] = h.Value()
		}
		pairs = append(pairs, value.Field(9, value.NewList(items...)))
	}
	if r.Notes != nil {
		pairs = append(pairs, value.Field(10, value.NewText(*r.Notes)))
	}
	return value.NewMap(pairs...)
}

// CanonicalEncodeReceiptForID returns the canonical bytes receipt_id is
// SHA-256'd from. It is exposed separately from ComputeReceiptID so
// callers needing to log or compare the pre-image can do so without
// hashing it.
func CanonicalEncodeReceiptForID(r Receipt) ([]byte, error) {
	b, err := record.CanonicalBytesExcluding(r.Value(), fieldReceiptID, fieldSignature)
	if err != nil {
		return nil, errors.Wrap(err, "hash: encoding receipt for id")
	}
	return b, nil
}

// ComputeReceiptID computes receipt_id = SHA-256(canonical_bytes(receipt
// minus fields 1 and 11)).
func ComputeReceiptID(r Receipt) (Hash, error) {
	b, err := CanonicalEncodeReceiptForID(r)
	if err != nil {
		return Hash{}, err
	}
	return SHA256(b), nil
}
