package breaker

import (
	"sort"

	"github.com/dummycrypt/subbuster/internal/cipherio"
	"github.com/dummycrypt/subbuster/internal/cost"
	"github.com/dummycrypt/subbuster/internal/freq"
	"github.com/dummycrypt/subbuster/internal/subtable"
)

// DefaultShortlistSize and DefaultHammingThreshold are the level-3 pruning
// heuristics from spec.md §9: how many (x, a) candidates survive the cheap
// Hamming-weight-variance pass, and the absolute cutoff above which a
// candidate is never worth the 40320-wide m search.
const (
	DefaultShortlistSize    = 40
	DefaultHammingThreshold = 0.01
)

// L3Params externalizes the level-3 pruning magic numbers per spec.md §9's
// explicit request that they be parameters rather than hard-coded.
type L3Params struct {
	ShortlistSize    int
	HammingThreshold float64
}

// DefaultL3Params returns the heuristic values spec.md documents.
func DefaultL3Params() L3Params {
	return L3Params{ShortlistSize: DefaultShortlistSize, HammingThreshold: DefaultHammingThreshold}
}

type xaCandidate struct {
	x, a    byte
	hamming float64
}

// RunL3 recovers a full (x, a, m) key of length l. Per residue (one
// goroutine each): enumerate all 65536 (x, a) pairs scored by the cheap
// Hamming-weight variance, shortlist the best ShortlistSize, then for each
// shortlisted candidate in ascending order search all 40320 m values with
// the full unigram variance — stopping the shortlist walk as soon as a
// candidate's Hamming variance can no longer beat the best full variance
// found, or crosses HammingThreshold. If a residue never improves past the
// sentinel, the whole break aborts and returns score 0.
func RunL3(ciphertext, sample []byte, l int, params L3Params) (cipherio.Key, float64) {
	sampleU := freq.Estimate(sample)

	guesses := runPool(l, func(p int) residueGuess {
		residueU := freq.Estimate(freq.Residue(ciphertext, p, l))
		return bestForResidue(p, sampleU, residueU, params)
	})

	for _, g := range guesses {
		if g.variance >= sentinel {
			return cipherio.Key{}, AbortScore
		}
	}
	return assemble(l, guesses)
}

func bestForResidue(p int, sampleU, residueU freq.Unigram, params L3Params) residueGuess {
	candidates := make([]xaCandidate, 0, 65536)
	for x := 0; x < 256; x++ {
		for a := 0; a < 256; a++ {
			sub := subtable.BuildXORAdd(byte(x), byte(a))
			h := cost.HammingVariance(sampleU, residueU, sub)
			candidates = append(candidates, xaCandidate{x: byte(x), a: byte(a), hamming: h})
		}
	}
	// stable: tied candidates keep (x, a) enumeration order, as in RunL1/RunL2
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].hamming < candidates[j].hamming })

	shortlistSize := params.ShortlistSize
	if shortlistSize > len(candidates) {
		shortlistSize = len(candidates)
	}
	shortlist := candidates[:shortlistSize]

	best := residueGuess{residue: p, variance: sentinel}
	for _, c := range shortlist {
		if c.hamming > best.variance || c.hamming > params.HammingThreshold {
			break
		}
		for m := 0; m < 40320; m++ {
			sub := subtable.Build(c.x, c.a, uint16(m))
			v := cost.UnigramVariance(sampleU, residueU, sub)
			if v < best.variance {
				best = residueGuess{residue: p, x: c.x, a: c.a, m: uint16(m), variance: v}
			}
		}
	}
	return best
}
