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

// Package cost implements the two scoring functions the breakers minimize:
// plain unigram variance, and its Hamming-weight-invariant projection used
// to prune the level-3 search.
package cost

import (
	"math/bits"
	"sort"

	"github.com/dummycrypt/subbuster/internal/freq"
	"github.com/dummycrypt/subbuster/internal/subtable"
)

// UnigramVariance measures the mismatch between sample distribution u1 and
// ciphertext residue distribution u2 viewed through substitution s:
// sum_i (u1[i] - u2[s[i]])^2. The correct s drives this toward zero.
func UnigramVariance(u1, u2 freq.Unigram, s subtable.Table) float64 {
	var sum float64
	for i := 0; i < 256; i++ {
		d := u1[i] - u2[s[i]]
		sum += d * d
	}
	return sum
}

// weight returns the Hamming weight (population count) of a byte.
func weight(b byte) int {
	return bits.OnesCount8(b)
}

type weightedProb struct {
	weight int
	prob   float64
}

func sortedByWeight(ws []weightedProb) []weightedProb {
	out := make([]weightedProb, len(ws))
	copy(out, ws)
	sort.Slice(out, func(i, j int) bool {
		if out[i].weight != out[j].weight {
			return out[i].weight < out[j].weight
		}
		return out[i].prob < out[j].prob
	})
	return out
}

// HammingVariance is the weight-invariant projection used for level-3
// pruning: bit-permutations preserve Hamming weight, so once both
// distributions are marginalized by weight and sorted, (x, a) can be scored
// independently of m.
func HammingVariance(u1, u2 freq.Unigram, s subtable.Table) float64 {
	lhs := make([]weightedProb, 256)
	rhs := make([]weightedProb, 256)
	for i := 0; i < 256; i++ {
		lhs[i] = weightedProb{weight: weight(s[i]), prob: u1[i]}
		rhs[i] = weightedProb{weight: weight(byte(i)), prob: u2[i]}
	}

	lhs = sortedByWeight(lhs)
	rhs = sortedByWeight(rhs)

	var sum float64
	for i := 0; i < 256; i++ {
		d := lhs[i].prob - rhs[i].prob
		sum += d * d
	}
	return sum
}
