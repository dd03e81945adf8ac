package breaker

import (
	"math"

	"github.com/dummycrypt/subbuster/internal/cipherio"
	"github.com/dummycrypt/subbuster/internal/cost"
	"github.com/dummycrypt/subbuster/internal/freq"
	"github.com/dummycrypt/subbuster/internal/subtable"
)

// RunL2 recovers an xor-add key of length l: per residue, exhaustively
// searches all 65536 (x, a) pairs for the one minimizing unigram variance.
// One goroutine per residue, per spec.md §4.7/§4.8.
func RunL2(ciphertext, sample []byte, l int) (cipherio.Key, float64) {
	sampleU := freq.Estimate(sample)

	guesses := runPool(l, func(p int) residueGuess {
		residueU := freq.Estimate(freq.Residue(ciphertext, p, l))

		best := residueGuess{residue: p, variance: math.Inf(1)}
		for x := 0; x < 256; x++ {
			for a := 0; a < 256; a++ {
				sub := subtable.BuildXORAdd(byte(x), byte(a))
				v := cost.UnigramVariance(sampleU, residueU, sub)
				if v < best.variance {
					best = residueGuess{residue: p, x: byte(x), a: byte(a), variance: v}
				}
			}
		}
		return best
	})

	return assemble(l, guesses)
}
