package scoring

import (
	"errors"
	"strings"
	"testing"
)

func TestScoreWord(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"a", 1},       // 1 + bonus 0
		{"at", 2},      // 1+1 + bonus 0
		{"cat", 6},     // 3+1+1 + bonus 1
		{"quiz", 22},   // 10+1+1+10 + bonus 1
		{"jazz", 30},   // 8+1+10+10 + bonus 1
		{"hello", 10},  // 4+1+1+1+1 + bonus 2
		{"oxygen", 20}, // 1+8+4+2+1+1 + bonus 3
		{"quickly", 30},
		{"absolute", 21}, // letters sum 10 + bonus 11
		{strings.Repeat("a", 16), 27},
	}

	for _, tc := range cases {
		got, err := ScoreWord(tc.word)
		if err != nil {
			t.Errorf("ScoreWord(%q) returned error: %v", tc.word, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ScoreWord(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestScoreWordLengthBonusPlateau(t *testing.T) {
	// from 8 letters on the bonus stays flat at 11
	for n := 8; n <= 16; n++ {
		word := strings.Repeat("a", n)
		got, err := ScoreWord(word)
		if err != nil {
			t.Fatalf("ScoreWord(%q) returned error: %v", word, err)
		}
		if want := n + 11; got != want {
			t.Errorf("ScoreWord(len %d) = %d, want %d", n, got, want)
		}
	}
}

func TestScoreWordMatchesTables(t *testing.T) {
	// the exported function must equal bonus + per letter sum
	words := []string{"ox", "tree", "zebra", "crystal", "question"}
	bonus := map[int]int{1: 0, 2: 0, 3: 1, 4: 1, 5: 2, 6: 3, 7: 5, 8: 11}

	for _, w := range words {
		sum := bonus[len(w)]
		for i := 0; i < len(w); i++ {
			sum += letterScores[w[i]]
		}
		got, err := ScoreWord(w)
		if err != nil {
			t.Fatalf("ScoreWord(%q) returned error: %v", w, err)
		}
		if got != sum {
			t.Errorf("ScoreWord(%q) = %d, want %d", w, got, sum)
		}
	}
}

func TestScoreWordInvalid(t *testing.T) {
	invalid := []string{
		"",
		strings.Repeat("a", 17),
		"CAT",
		"don't",
		"über",
		"word1",
	}

	for _, w := range invalid {
		if _, err := ScoreWord(w); !errors.Is(err, ErrInvalidWord) {
			t.Errorf("ScoreWord(%q) error = %v, want ErrInvalidWord", w, err)
		}
	}
}
