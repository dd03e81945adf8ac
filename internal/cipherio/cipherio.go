// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package cipherio applies a position-keyed byte substitution to a stream,
// implementing DummyCrypt's encrypt/decrypt transform.
package cipherio

import (
	"io"

	"github.com/pkg/errors"
	"github.com/templexxx/xorsimd"

	"github.com/dummycrypt/subbuster/internal/subtable"
)

// Mode selects which direction Transform runs.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

// Key holds the three parallel key streams of spec.md's data model: X and A
// are one byte per position, M is one uint16 (already decoded from its
// 2-byte big-endian wire form) per position.
type Key struct {
	X []byte
	A []byte
	M []uint16
}

// Length returns max(len(X), len(A), len(M)), the logical key length l used
// to pick a position's sub-key via index mod l.
func (k Key) Length() int {
	l := len(k.X)
	if len(k.A) > l {
		l = len(k.A)
	}
	if len(k.M) > l {
		l = len(k.M)
	}
	return l
}

// Pad returns a copy of k with X and A zero-padded to l and M zero-padded to
// l entries (each entry defaulting to 0, the identity permutation).
func (k Key) Pad(l int) Key {
	padded := Key{
		X: make([]byte, l),
		A: make([]byte, l),
		M: make([]uint16, l),
	}
	copy(padded.X, k.X)
	copy(padded.A, k.A)
	copy(padded.M, k.M)
	return padded
}

// isPureXOR reports whether every A and M entry is zero, meaning the key
// reduces to the level-1 degenerate substitution at every position.
func (k Key) isPureXOR() bool {
	for _, a := range k.A {
		if a != 0 {
			return false
		}
	}
	for _, m := range k.M {
		if m != 0 {
			return false
		}
	}
	return true
}

// Transform reads all of r, applies the position-keyed substitution (or its
// inverse, for Decrypt) and writes the result to w.
func Transform(r io.Reader, w io.Writer, key Key, mode Mode) error {
	l := key.Length()
	if l == 0 {
		_, err := io.Copy(w, r)
		return errors.Wrap(err, "copy empty-key stream")
	}
	key = key.Pad(l)

	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read input stream")
	}

	var out []byte
	if key.isPureXOR() {
		out = xorPureFastPath(data, key.X, l)
	} else {
		out = substitutionPath(data, key, l, mode)
	}

	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "write output stream")
	}
	return nil
}

// substitutionPath builds one substitution table per key position and
// applies sub[j mod l][data[j]] to every byte; for Decrypt the tables are
// inverted first, per spec.md §4.3.
func substitutionPath(data []byte, key Key, l int, mode Mode) []byte {
	tables := make([]subtable.Table, l)
	for i := 0; i < l; i++ {
		sub := subtable.Build(key.X[i], key.A[i], key.M[i])
		if mode == Decrypt {
			sub = subtable.Invert(sub)
		}
		tables[i] = sub
	}

	out := make([]byte, len(data))
	for j, b := range data {
		out[j] = tables[j%l][b]
	}
	return out
}

// xorPureFastPath encrypts/decrypts via templexxx/xorsimd instead of a
// per-position lookup table: XOR is its own inverse, so encrypt and decrypt
// are the same operation. It must produce output byte-identical to
// substitutionPath for the same all-zero-A/M key.
func xorPureFastPath(data []byte, x []byte, l int) []byte {
	pattern := make([]byte, len(data))
	for j := range pattern {
		pattern[j] = x[j%l]
	}
	out := make([]byte, len(data))
	xorsimd.Bytes(out, data, pattern)
	return out
}
