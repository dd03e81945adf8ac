// Package hexkey decodes the CLI's hex wire form of key streams: X and A
// are one hex byte per position, M is one big-endian 16-bit value (2 hex
// bytes) per position.
package hexkey

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// DecodeBytes decodes a case-insensitive, even-length hex string into a
// byte stream (the wire form used for X and A).
func DecodeBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decode hex %q", s)
	}
	return b, nil
}

// DecodeWords decodes a hex string into a stream of big-endian uint16
// values (the wire form used for M), two hex bytes per word.
func DecodeWords(s string) ([]uint16, error) {
	raw, err := DecodeBytes(s)
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, errors.Errorf("hex %q decodes to an odd number of bytes, want pairs", s)
	}

	words := make([]uint16, len(raw)/2)
	for i := range words {
		words[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}
	return words, nil
}

// EncodeBytes renders a byte stream back to lowercase hex, for diagnostics
// output (the "Best key: ... x = <hex>" report line).
func EncodeBytes(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeWords renders a uint16 stream back to big-endian hex.
func EncodeWords(words []uint16) string {
	raw := make([]byte, 2*len(words))
	for i, w := range words {
		raw[2*i] = byte(w >> 8)
		raw[2*i+1] = byte(w)
	}
	return hex.EncodeToString(raw)
}
