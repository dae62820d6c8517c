package value

import "testing"

func TestEqualBasics(t *testing.T) {
	if !Null.Equal(Value{Kind: KindNull}) {
		t.Fatal("Null should equal zero-value Null")
	}
	if NewUVarint(5).Equal(NewUVarint(6)) {
		t.Fatal("5 should not equal 6")
	}
	if !NewBytes([]byte{1, 2}).Equal(NewBytes([]byte{1, 2})) {
		t.Fatal("equal byte slices should compare equal")
	}
	if NewBytes([]byte{1, 2}).Equal(NewBytes([]byte{1, 2, 3})) {
		t.Fatal("different length byte slices should not compare equal")
	}
}

func TestEqualNested(t *testing.T) {
	a := NewMap(Field(1, NewText("a")), Field(2, NewUVarint(2)))
	b := NewMap(Field(1, NewText("a")), Field(2, NewUVarint(2)))
	if !a.Equal(b) {
		t.Fatal("structurally identical maps should be equal")
	}
	c := NewMap(Field(2, NewUVarint(2)), Field(1, NewText("a")))
	if a.Equal(c) {
		t.Fatal("pair order is part of Equal's semantic identity; only the encoder canonicalizes")
	}
}

func TestGet(t *testing.T) {
	m := NewMap(Field(1, NewUVarint(1)), Field(2, NewText("hi")))
	v, ok := m.Get(2)
	if !ok || v.Text != "hi" {
		t.Fatalf("Get(2) = %v, %v", v, ok)
	}
	if _, ok := m.Get(99); ok {
		t.Fatal("Get(99) should not find a field")
	}
}
