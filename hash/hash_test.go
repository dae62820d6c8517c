package hash

import (
	"encoding/hex"
	"testing"

	"mythos.dev/can/value"
)

func TestSHA256KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", []byte{}, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"hello", []byte("hello"), "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Sum(c.data)
			if hex.EncodeToString(got[:]) != c.want {
				t.Fatalf("sha256(%q) = %x, want %s", c.data, got, c.want)
			}
		})
	}
}

func TestHashValueRoundtrip(t *testing.T) {
	h := SHA256([]byte("payload"))
	v := h.Value()

	got, err := FromValue(v)
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	if !got.Equal(h) {
		t.Fatalf("roundtrip mismatch: got %+v, want %+v", got, h)
	}
}

func TestFromValueRejectsWrongShape(t *testing.T) {
	_, err := FromValue(value.NewUVarint(1))
	if err == nil {
		t.Fatal("expected error for non-map value")
	}

	missingField := value.NewMap(value.Field(1, value.NewUVarint(1)))
	if _, err := FromValue(missingField); err == nil {
		t.Fatal("expected error for missing bytes field")
	}
}

func TestCIDDeterministic(t *testing.T) {
	v := value.NewMap(
		value.Field(1, value.NewText("a")),
		value.Field(2, value.NewUVarint(42)),
	)
	a, err := CID(v)
	if err != nil {
		t.Fatalf("CID: %v", err)
	}
	b, err := CID(v)
	if err != nil {
		t.Fatalf("CID: %v", err)
	}
	if !a.Equal(b) {
		t.Fatal("CID is not deterministic")
	}
}

func TestMustCIDPanicsOnDuplicateKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCID to panic on duplicate map key")
		}
	}()
	dup := value.NewMap(
		value.Field(1, value.NewText("a")),
		value.Field(1, value.NewText("b")),
	)
	MustCID(dup)
}
