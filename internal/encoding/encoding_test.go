package encoding

import (
	"bytes"
	"testing"
)

func TestResolveDefaultsToUTF8(t *testing.T) {
	c, err := Resolve("")
	if err != nil {
		t.Fatalf("resolve empty name: %v", err)
	}
	if c.Name() != "UTF-8" {
		t.Fatalf("expected UTF-8, got %s", c.Name())
	}
}

func TestResolveUnknownEncoding(t *testing.T) {
	if _, err := Resolve("NOT-A-CHARSET"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestRoundTripLatin1(t *testing.T) {
	c, err := Resolve("ISO-8859-1")
	if err != nil {
		t.Fatalf("resolve latin-1: %v", err)
	}

	raw := []byte{'c', 0xE9, 'd'} // "céd" in latin-1
	text, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if text != "céd" {
		t.Fatalf("expected céd, got %q", text)
	}

	back, err := c.Encode(text)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(back, raw) {
		t.Fatalf("round trip mismatch: %v != %v", back, raw)
	}
}

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	c := Default()
	if _, err := c.Decode([]byte{0xFF, 0xFE, 0xFD}); err == nil {
		t.Fatal("expected invalid UTF-8 to be rejected")
	}
}
