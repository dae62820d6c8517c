package hash

import (
	"encoding/hex"
	"testing"
)

func mustHexHash(t *testing.T, s string) Hash {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return Hash{Alg: AlgSHA256, Bytes: b}
}

func TestComputeReceiptIDKnownVector(t *testing.T) {
	hint := "ctvp"
	r := Receipt{
		ToolID:         mustHexHash(t, "d5762d1026d1cfab5015b4821a0aa1f8d3ae1dea85084b3122ea63a7a4244458"),
		RequestHash:    mustHexHash(t, "758d61f26a44448384e5c4468a0dcb7a2abe456067b0f7b505bc28b9411fe931"),
		ResponseHash:   mustHexHash(t, "9795c5ff8937f23526ccb207a5684c1fc94a7854e19c021b39d944e51f5baef2"),
		IdempotencyKey: mustBytes(t, "6964656d3a303031"),
		Signer: AgentID{
			Scheme: SchemeEd25519,
			Key:    mustBytes(t, "8a88e3dd7409f195fd52db2d3cba5d72ca6709bf1d94121bf3748801b40f6f5c"),
			Hint:   &hint,
		},
		TimeObservedUS: 1700000000000000,
		Status:         200,
	}

	id, err := ComputeReceiptID(r)
	if err != nil {
		t.Fatalf("ComputeReceiptID: %v", err)
	}

	want := "0edba8b8f9547e0977cec96eb37d0e117e0c2718e7d69737ef17e8f1d9ce32cd"
	if hex.EncodeToString(id.Bytes) != want {
		t.Fatalf("ComputeReceiptID = %x, want %s", id.Bytes, want)
	}
}

func mustBytes(t *testing.T, hexStr string) []byte {
	t.Helper()
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		t.Fatalf("decode %q: %v", hexStr, err)
	}
	return b
}

// TestAgentIDHintRoundtrip locks in the optional hint field: forgetting
// to emit or read it back changes receipt_id silently.
func TestAgentIDHintRoundtrip(t *testing.T) {
	hint := "test"
	agent := AgentID{Scheme: 1, Key: []byte{0xAA, 0xAA}, Hint: &hint}
	v := agent.Value()
	if len(v.Map) != 3 {
		t.Fatalf("expected 3 fields with hint present, got %d", len(v.Map))
	}

	got, err := AgentIDFromValue(v)
	if err != nil {
		t.Fatalf("AgentIDFromValue: %v", err)
	}
	if got.Hint == nil || *got.Hint != hint {
		t.Fatalf("hint did not roundtrip: %+v", got)
	}
}

func TestAgentIDWithoutHintOmitsField(t *testing.T) {
	agent := AgentID{Scheme: 1, Key: []byte{0x01}}
	v := agent.Value()
	if len(v.Map) != 2 {
		t.Fatalf("expected 2 fields without hint, got %d", len(v.Map))
	}
}

func baseReceipt() Receipt {
	return Receipt{
		ToolID:         SHA256([]byte("tool")),
		RequestHash:    SHA256([]byte("req")),
		ResponseHash:   SHA256([]byte("resp")),
		IdempotencyKey: []byte("key"),
		Signer:         AgentID{Scheme: SchemeEd25519, Key: []byte{0x01, 0x02}},
		TimeObservedUS: 1,
		Status:         200,
	}
}

// TestReceiptIDEvidenceAbsentVsEmpty covers property 9's absent-vs-empty
// distinction: a nil Evidence slice and a non-nil empty one must hash
// differently, since one omits field 9 from the wire entirely and the
// other emits an empty list.
func TestReceiptIDEvidenceAbsentVsEmpty(t *testing.T) {
	absent := baseReceipt()
	absent.Evidence = nil

	empty := baseReceipt()
	empty.Evidence = []Hash{}

	idAbsent, err := ComputeReceiptID(absent)
	if err != nil {
		t.Fatalf("ComputeReceiptID: %v", err)
	}
	idEmpty, err := ComputeReceiptID(empty)
	if err != nil {
		t.Fatalf("ComputeReceiptID: %v", err)
	}
	if idAbsent.Equal(idEmpty) {
		t.Fatal("evidence absent and evidence present-but-empty must produce different receipt_ids")
	}
}

// TestReceiptIDNotesAbsentVsEmpty is the same distinction for notes.
func TestReceiptIDNotesAbsentVsEmpty(t *testing.T) {
	absent := baseReceipt()
	absent.Notes = nil

	empty := ""
	withEmpty := baseReceipt()
	withEmpty.Notes = &empty

	idAbsent, err := ComputeReceiptID(absent)
	if err != nil {
		t.Fatalf("ComputeReceiptID: %v", err)
	}
	idEmpty, err := ComputeReceiptID(withEmpty)
	if err != nil {
		t.Fatalf("ComputeReceiptID: %v", err)
	}
	if idAbsent.Equal(idEmpty) {
		t.Fatal("notes absent and notes present-but-empty must produce different receipt_ids")
	}
}

// TestReceiptIDEvidenceOrderMatters covers property 9's reordering case.
func TestReceiptIDEvidenceOrderMatters(t *testing.T) {
	a := baseReceipt()
	a.Evidence = []Hash{SHA256([]byte("one")), SHA256([]byte("two"))}

	b := baseReceipt()
	b.Evidence = []Hash{SHA256([]byte("two")), SHA256([]byte("one"))}

	idA, err := ComputeReceiptID(a)
	if err != nil {
		t.Fatalf("ComputeReceiptID: %v", err)
	}
	idB, err := ComputeReceiptID(b)
	if err != nil {
		t.Fatalf("ComputeReceiptID: %v", err)
	}
	if idA.Equal(idB) {
		t.Fatal("reordering the evidence list must change receipt_id")
	}
}

// TestReceiptIDIgnoresReceiptIDAndSignature covers property 9's core
// claim directly: two receipts that would only differ in fields 1/11 —
// which this struct has no way to even represent — hash identically
// when every other field matches.
func TestReceiptIDIgnoresReceiptIDAndSignature(t *testing.T) {
	a := baseReceipt()
	b := baseReceipt()
	idA, err := ComputeReceiptID(a)
	if err != nil {
		t.Fatalf("ComputeReceiptID: %v", err)
	}
	idB, err := ComputeReceiptID(b)
	if err != nil {
		t.Fatalf("ComputeReceiptID: %v", err)
	}
	if !idA.Equal(idB) {
		t.Fatal("identical receipts (modulo the unrepresentable id/signature fields) must hash identically")
	}
}

func TestReceiptIDExcludesIDAndSignatureFields(t *testing.T) {
	r := Receipt{
		ToolID:         SHA256([]byte("tool")),
		RequestHash:    SHA256([]byte("req")),
		ResponseHash:   SHA256([]byte("resp")),
		IdempotencyKey: []byte("key"),
		Signer:         AgentID{Scheme: SchemeEd25519, Key: []byte{0x01, 0x02}},
		TimeObservedUS: 1,
		Status:         200,
	}
	v := r.Value()
	if _, ok := v.Get(1); ok {
		t.Fatal("Receipt.Value must never contain field 1 (receipt_id)")
	}
	if _, ok := v.Get(11); ok {
		t.Fatal("Receipt.Value must never contain field 11 (signature)")
	}
}
