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

// Package subtable builds and inverts the 256-entry byte substitution
// bijections that DummyCrypt and SubBuster both operate on.
package subtable

import "github.com/dummycrypt/subbuster/internal/permcodec"

// Table is a 256-entry byte->byte bijection: every output value appears
// exactly once.
type Table [256]byte

// Build constructs the full level-3 substitution for position key (x, a, m):
// b = ((i ^ x) + a) mod 256, then bit k of the output reads from bit p[k] of
// b, where p = permcodec.Decode(m) (p names, per destination bit, which
// source bit it reads from).
func Build(x, a byte, m uint16) Table {
	p := permcodec.Decode(m)

	var sub Table
	for i := 0; i < 256; i++ {
		b := byte(int(byte(i)^x) + int(a))
		var out byte
		for k := 0; k < 8; k++ {
			bit := (b >> p[k]) & 1
			out |= bit << uint(k)
		}
		sub[i] = out
	}
	return sub
}

// BuildXOR constructs the level-1 degenerate substitution sub[i] = i ^ x.
func BuildXOR(x byte) Table {
	var sub Table
	for i := 0; i < 256; i++ {
		sub[i] = byte(i) ^ x
	}
	return sub
}

// BuildXORAdd constructs the level-2 degenerate substitution
// sub[i] = (i ^ x) + a, additions wrapping modulo 256.
func BuildXORAdd(x, a byte) Table {
	var sub Table
	for i := 0; i < 256; i++ {
		sub[i] = byte(int(byte(i)^x) + int(a))
	}
	return sub
}

// Invert returns inv such that inv[sub[i]] == i for every i. sub is
// bijective by construction, so inv is always well-defined.
func Invert(sub Table) Table {
	var inv Table
	for i, v := range sub {
		inv[v] = byte(i)
	}
	return inv
}
