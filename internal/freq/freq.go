// Package freq provides the unigram estimators both the key-length
// estimator and the breakers build their cost functions on top of.
package freq

// Unigram is a 256-entry empirical byte distribution; entries sum to 1 for
// non-empty input.
type Unigram [256]float64

// Estimate computes the reference/residue unigram of data: occurrence
// counts divided by the total byte count.
func Estimate(data []byte) Unigram {
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	var u Unigram
	total := float64(len(data))
	if total == 0 {
		return u
	}
	for i, c := range counts {
		u[i] = float64(c) / total
	}
	return u
}

// Residue extracts the sub-stream of data at positions p, p+l, p+2l, ... —
// the bytes that residue class p mod l collects.
func Residue(data []byte, p, l int) []byte {
	if l <= 0 {
		return nil
	}
	n := 0
	for j := p; j < len(data); j += l {
		n++
	}
	out := make([]byte, 0, n)
	for j := p; j < len(data); j += l {
		out = append(out, data[j])
	}
	return out
}
