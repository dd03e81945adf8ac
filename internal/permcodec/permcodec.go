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

// Package permcodec encodes and decodes the 15-bit permutation index shared
// by the cipher and the analyzer: a 16-bit integer m selects one of the 8!
// bijections of an 8-bit value via the factorial-number-system.
package permcodec

// bases holds the mixed-radix factorial bases used by Decode: bases[i] is
// the modulus for permutation slot i, bases[i+1] the divisor that turns the
// remainder into a rank among the still-unused source bits.
var bases = [8]int{40320, 5040, 720, 120, 24, 6, 2, 1}

// Decode turns m into a permutation p of {0..7}: p[i] names which source
// bit index a bit-routing consumer should read for destination bit i.
//
// m is implicitly reduced modulo 40320 by the first radix step, so every
// uint16 (including values >= 40320) decodes to one of the 40320 possible
// permutations. The decrement-and-scan walk below is a direct transliteration
// of the reference decoder; a Lehmer-code rewrite must reproduce it bit for
// bit across all 65536 inputs before replacing it.
func Decode(m uint16) [8]byte {
	var p [8]byte
	var used [8]bool

	for i := 0; i < 8; i++ {
		base := bases[i]
		next := 1
		if i+1 < len(bases) {
			next = bases[i+1]
		}
		r := (int(m)%base)/next + 1

		for j := 0; j < 8; j++ {
			if used[j] {
				continue
			}
			r--
			if r == 0 {
				p[i] = byte(j)
				used[j] = true
				break
			}
		}
	}
	return p
}

// Encode is the inverse of Decode: given a permutation p, it returns the
// smallest m in [0, 40320) for which Decode(m) == p. It exists so callers
// (and tests) can round-trip a permutation back to its canonical index; the
// cipher and analyzer never need it since they only ever consume m.
func Encode(p [8]byte) uint16 {
	var used [8]bool
	var m int

	for i := 0; i < 8; i++ {
		next := 1
		if i+1 < len(bases) {
			next = bases[i+1]
		}

		rank := 0
		for j := 0; j < int(p[i]); j++ {
			if !used[j] {
				rank++
			}
		}
		used[p[i]] = true
		m += rank * next
	}
	return uint16(m)
}
