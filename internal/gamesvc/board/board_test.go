package board

import (
	"strings"
	"testing"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		b := Generate()
		if len(b) != Size {
			t.Fatalf("Generate() length = %d, want %d", len(b), Size)
		}
		for _, c := range b {
			if !strings.ContainsRune(Letters, c) {
				t.Fatalf("Generate() produced %q, not in letter pool", c)
			}
		}
	}
}

func TestGenerateBoardsDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		seen[Generate()] = true
	}
	if len(seen) < 2 {
		t.Errorf("5 generated boards yielded %d distinct strings", len(seen))
	}
}

func TestGenerateDistribution(t *testing.T) {
	const boards = 10000
	draws := boards * Size

	// pool weight per letter
	weights := map[byte]int{}
	for i := 0; i < len(Letters); i++ {
		weights[Letters[i]]++
	}

	counts := map[byte]int{}
	for i := 0; i < boards; i++ {
		b := Generate()
		for j := 0; j < len(b); j++ {
			counts[b[j]]++
		}
	}

	for c := byte('a'); c <= 'z'; c++ {
		expected := float64(draws) * float64(weights[c]) / float64(len(Letters))
		got := float64(counts[c])
		if got < expected*0.7 || got > expected*1.3 {
			t.Errorf("letter %q drawn %v times, expected around %v", c, got, expected)
		}
	}
}
