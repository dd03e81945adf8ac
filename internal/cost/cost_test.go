package cost

import (
	"math/bits"
	"testing"

	"github.com/dummycrypt/subbuster/internal/freq"
	"github.com/dummycrypt/subbuster/internal/subtable"
)

func TestUnigramVarianceNonNegativeAndZeroAtMatch(t *testing.T) {
	u := freq.Estimate([]byte("hello world, this is a sample sentence"))
	identity := subtable.BuildXOR(0)

	if v := UnigramVariance(u, u, identity); v != 0 {
		t.Fatalf("UnigramVariance(u,u,identity) = %f, want 0", v)
	}

	other := subtable.BuildXOR(0x42)
	if v := UnigramVariance(u, u, other); v < 0 {
		t.Fatalf("UnigramVariance must be non-negative, got %f", v)
	}
}

func TestHammingVarianceInvariantUnderBitPermutation(t *testing.T) {
	u1 := freq.Estimate([]byte("the quick brown fox jumps over the lazy dog, again and again"))
	u2 := freq.Estimate([]byte{1, 2, 3, 4, 5, 6, 250, 251, 252, 253, 0, 0, 0, 7, 9})

	base := subtable.Build(0x12, 0x34, 0)
	permuted := subtable.Build(0x12, 0x34, 40319) // bit-reversal permutation

	got := HammingVariance(u1, u2, base)
	want := HammingVariance(u1, u2, permuted)
	if got != want {
		t.Fatalf("HammingVariance not invariant under bit permutation: %f != %f", got, want)
	}
}

func TestWeightMatchesPopcount(t *testing.T) {
	for b := 0; b < 256; b++ {
		if got, want := weight(byte(b)), bits.OnesCount8(byte(b)); got != want {
			t.Fatalf("weight(%d) = %d, want %d", b, got, want)
		}
	}
}
