package freq

import "testing"

func TestEstimateSumsToOne(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	u := Estimate(data)
	var sum float64
	for _, p := range u {
		sum += p
	}
	if sum < 0.999999 || sum > 1.000001 {
		t.Fatalf("unigram sums to %f, want ~1", sum)
	}
}

func TestEstimateEmpty(t *testing.T) {
	u := Estimate(nil)
	for i, p := range u {
		if p != 0 {
			t.Fatalf("empty input: u[%d] = %f, want 0", i, p)
		}
	}
}

func TestResidue(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := Residue(data, 1, 3)
	want := []byte{1, 4, 7}
	if string(got) != string(want) {
		t.Fatalf("Residue(data,1,3) = %v, want %v", got, want)
	}
}
