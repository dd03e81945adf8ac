package cipherio

import (
	"bytes"
	"testing"
)

func roundTrip(t *testing.T, data []byte, key Key) {
	t.Helper()

	var enc bytes.Buffer
	if err := Transform(bytes.NewReader(data), &enc, key, Encrypt); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	var dec bytes.Buffer
	if err := Transform(bytes.NewReader(enc.Bytes()), &dec, key, Decrypt); err != nil {
		t.Fatalf("decrypt: %v", err)
	}

	if !bytes.Equal(dec.Bytes(), data) {
		t.Fatalf("round trip mismatch: got %x, want %x", dec.Bytes(), data)
	}
}

func TestL1Identity(t *testing.T) {
	data := []byte("ABCDE")
	key := Key{X: []byte{0x00}}

	var enc bytes.Buffer
	if err := Transform(bytes.NewReader(data), &enc, key, Encrypt); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if !bytes.Equal(enc.Bytes(), data) {
		t.Fatalf("x=00 should be the identity, got %x want %x", enc.Bytes(), data)
	}
	roundTrip(t, data, key)
}

func TestL1XOR(t *testing.T) {
	data := []byte{0x41, 0x42, 0x43, 0x44, 0x45}
	key := Key{X: []byte{0xff}}
	want := []byte{0xbe, 0xbd, 0xbc, 0xbb, 0xba}

	var enc bytes.Buffer
	if err := Transform(bytes.NewReader(data), &enc, key, Encrypt); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("got %x, want %x", enc.Bytes(), want)
	}
	roundTrip(t, data, key)
}

func TestL2Add(t *testing.T) {
	data := []byte{0x00, 0x01, 0xff}
	key := Key{X: []byte{0x00}, A: []byte{0x01}}
	want := []byte{0x01, 0x02, 0x00}

	var enc bytes.Buffer
	if err := Transform(bytes.NewReader(data), &enc, key, Encrypt); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if !bytes.Equal(enc.Bytes(), want) {
		t.Fatalf("got %x, want %x", enc.Bytes(), want)
	}
	roundTrip(t, data, key)
}

func TestRoundTripWithFullKey(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 17)
	key := Key{
		X: []byte{0xde, 0xad, 0xbe, 0xef},
		A: []byte{0x01, 0x00, 0x7f, 0x10},
		M: []uint16{0, 123, 40319, 65535},
	}
	roundTrip(t, data, key)
}

func TestFastPathMatchesGeneralPath(t *testing.T) {
	data := bytes.Repeat([]byte{0, 1, 2, 3, 250, 251, 252, 253, 254, 255}, 30)
	key := Key{X: []byte{0xde, 0xad, 0xbe, 0xef}}

	fast := xorPureFastPath(data, key.Pad(4).X, 4)
	general := substitutionPath(data, key.Pad(4), 4, Encrypt)

	if !bytes.Equal(fast, general) {
		t.Fatalf("fast path diverges from general path")
	}
}

func TestEmptyKeyIsIdentity(t *testing.T) {
	data := []byte("no key at all")
	var enc bytes.Buffer
	if err := Transform(bytes.NewReader(data), &enc, Key{}, Encrypt); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if !bytes.Equal(enc.Bytes(), data) {
		t.Fatalf("empty key should pass data through unchanged")
	}
}
