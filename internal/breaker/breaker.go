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

package breaker

import (
	"math"

	"github.com/dummycrypt/subbuster/internal/cipherio"
)

// sentinel is the "no candidate improved" starting score for a residue
// guess; if it survives a whole level-3 residue search untouched, that
// residue never found an acceptable candidate and the break aborts.
const sentinel = 1.0

// AbortScore is returned by a breaker when pruning eliminated every
// candidate at some residue.
const AbortScore = 0.0

// assemble combines per-residue guesses into a full key and the
// spec-defined aggregate score: 1 - (sum of sqrt(min residue variance)) / l.
func assemble(l int, guesses []residueGuess) (cipherio.Key, float64) {
	key := cipherio.Key{
		X: make([]byte, l),
		A: make([]byte, l),
		M: make([]uint16, l),
	}

	var sum float64
	for i, g := range guesses {
		key.X[i] = g.x
		key.A[i] = g.a
		key.M[i] = g.m
		sum += math.Sqrt(g.variance)
	}

	score := 1 - sum/float64(l)
	return key, score
}
