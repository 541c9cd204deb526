package service

import (
	"fmt"
	"strings"

	"github.com/wordrush/boggle-services/internal/gamesvc/scoring"
	"github.com/wordrush/boggle-services/internal/gamesvc/words"
)

// WordCheck is the outcome of a word submission: whether the candidate is a
// dictionary word, and its score when it is.
type WordCheck struct {
	IsWord bool `json:"isWord"`
	Score  int  `json:"score,omitempty"`
}

// CheckWord validates a candidate against the dictionary and scores it.
// The candidate is trimmed and lowercased first. Candidates that are empty,
// longer than a board can produce, or not purely a-z are ErrInvalidInput.
func CheckWord(candidate string) (*WordCheck, error) {
	word := strings.ToLower(strings.TrimSpace(candidate))
	if len(word) == 0 || len(word) > scoring.MaxWordLen {
		return nil, fmt.Errorf("%w: word must be 1 to %d letters", ErrInvalidInput, scoring.MaxWordLen)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return nil, fmt.Errorf("%w: word must only contain letters a-z", ErrInvalidInput)
		}
	}

	if !words.IsWord(word) {
		return &WordCheck{IsWord: false}, nil
	}

	score, err := scoring.ScoreWord(word)
	if err != nil {
		return nil, err
	}
	return &WordCheck{IsWord: true, Score: score}, nil
}
