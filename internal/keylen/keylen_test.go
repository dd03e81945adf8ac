package keylen

import (
	"math/rand"
	"testing"

	"github.com/dummycrypt/subbuster/internal/subtable"
)

// englishLikeSample generates deterministic pseudo-English byte frequencies:
// a skewed distribution over lowercase letters and space, heavily weighted
// toward common letters, so per-residue unigrams are visibly non-uniform.
func englishLikeSample(n int, seed int64) []byte {
	letters := []byte(" etaoinshrdlcumwfgypbvkjxqz")
	weights := make([]int, len(letters))
	for i := range weights {
		weights[i] = len(letters) - i
	}
	total := 0
	for _, w := range weights {
		total += w
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	for i := range out {
		r := rng.Intn(total)
		for j, w := range weights {
			if r < w {
				out[i] = letters[j]
				break
			}
			r -= w
		}
	}
	return out
}

func encryptWithXORKey(data []byte, x []byte) []byte {
	l := len(x)
	out := make([]byte, len(data))
	tables := make([]subtable.Table, l)
	for i := range tables {
		tables[i] = subtable.BuildXOR(x[i])
	}
	for j, b := range data {
		out[j] = tables[j%l][b]
	}
	return out
}

func TestEstimateRecoversTrueLength(t *testing.T) {
	plain := englishLikeSample(4096, 42)
	cipher := encryptWithXORKey(plain, []byte{0xde, 0xad, 0xbe, 0xef})

	candidates := Estimate(cipher, 10)
	if len(candidates) != 10 {
		t.Fatalf("got %d candidates, want 10", len(candidates))
	}

	top3 := candidates[:3]
	found := false
	for _, c := range top3 {
		if c.Length == 4 || c.Length%4 == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected length 4 or a multiple of it in top 3, got %+v", top3)
	}
}

func TestEstimateSortedDescending(t *testing.T) {
	plain := englishLikeSample(2048, 7)
	cipher := encryptWithXORKey(plain, []byte{0x11, 0x22, 0x33})
	candidates := Estimate(cipher, 8)
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score > candidates[i-1].Score {
			t.Fatalf("candidates not sorted descending at index %d: %+v", i, candidates)
		}
	}
}
