// Package keylen estimates the most likely key length of a ciphertext from
// the non-uniformity of its per-residue unigram distributions.
package keylen

import (
	"math"
	"sort"

	"github.com/dummycrypt/subbuster/internal/freq"
)

// Candidate is a scored key-length guess.
type Candidate struct {
	Length int
	Score  float64
}

const uniform = 1.0 / 256.0

// Estimate scores every candidate length in 1..upperBound and returns them
// sorted by descending score (best guess first). For each residue p of a
// candidate length l, it sums the squared L2 distance of the residue
// unigram from the uniform distribution, takes the square root of that
// per-residue sum, and accumulates it across residues; the accumulated
// total is then divided by l^1.1 as a length penalty — the true length
// scores well because its residues are genuinely non-uniform, while
// multiples of the true length are penalized by the larger denominator.
func Estimate(ciphertext []byte, upperBound int) []Candidate {
	candidates := make([]Candidate, 0, upperBound)
	for l := 1; l <= upperBound; l++ {
		var accumulated float64
		for p := 0; p < l; p++ {
			residue := freq.Residue(ciphertext, p, l)
			if len(residue) == 0 {
				continue
			}
			u := freq.Estimate(residue)
			var residueSumSq float64
			for _, f := range u {
				d := f - uniform
				residueSumSq += d * d
			}
			accumulated += math.Sqrt(residueSumSq)
		}
		score := accumulated / math.Pow(float64(l), 1.1)
		candidates = append(candidates, Candidate{Length: l, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
