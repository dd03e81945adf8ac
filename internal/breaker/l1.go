package breaker

import (
	"math"

	"github.com/dummycrypt/subbuster/internal/cipherio"
	"github.com/dummycrypt/subbuster/internal/cost"
	"github.com/dummycrypt/subbuster/internal/freq"
	"github.com/dummycrypt/subbuster/internal/subtable"
)

// RunL1 recovers an xor-only key of length l: for each residue, exhaustively
// tries all 256 values of x and keeps the one minimizing unigram variance
// against the sample. Sequential, per spec.md §4.7 — L1 is cheap enough
// that the worker pool's goroutine overhead isn't worth paying.
func RunL1(ciphertext, sample []byte, l int) (cipherio.Key, float64) {
	sampleU := freq.Estimate(sample)

	guesses := make([]residueGuess, l)
	for p := 0; p < l; p++ {
		residueU := freq.Estimate(freq.Residue(ciphertext, p, l))

		best := residueGuess{residue: p, variance: math.Inf(1)}
		for x := 0; x < 256; x++ {
			sub := subtable.BuildXOR(byte(x))
			v := cost.UnigramVariance(sampleU, residueU, sub)
			if v < best.variance {
				best = residueGuess{residue: p, x: byte(x), variance: v}
			}
		}
		guesses[p] = best
	}

	return assemble(l, guesses)
}
