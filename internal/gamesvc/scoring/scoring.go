package scoring

import (
	"errors"
	"fmt"
)

// MaxWordLen is the longest word a 16 tile board can produce.
const MaxWordLen = 16

var ErrInvalidWord = errors.New("invalid word")

// letterScores assigns a point value to every lowercase letter.
var letterScores = map[byte]int{
	'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1, 'f': 4, 'g': 2, 'h': 4,
	'i': 1, 'j': 8, 'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1, 'p': 3,
	'q': 10, 'r': 1, 's': 1, 't': 1, 'u': 1, 'v': 4, 'w': 4, 'x': 8,
	'y': 4, 'z': 10,
}

// lengthScores is the bonus keyed by word length, flat from 8 up.
var lengthScores = map[int]int{
	1: 0, 2: 0, 3: 1, 4: 1, 5: 2, 6: 3, 7: 5,
	8: 11, 9: 11, 10: 11, 11: 11, 12: 11, 13: 11, 14: 11, 15: 11, 16: 11,
}

// ScoreWord returns the point value of a played word: the sum of its letter
// values plus a bonus for its length. The word must be 1 to 16 lowercase
// letters a-z; anything else is ErrInvalidWord.
func ScoreWord(word string) (int, error) {
	if len(word) == 0 || len(word) > MaxWordLen {
		return 0, fmt.Errorf("%w: length %d", ErrInvalidWord, len(word))
	}

	score := lengthScores[len(word)]
	for i := 0; i < len(word); i++ {
		v, ok := letterScores[word[i]]
		if !ok {
			return 0, fmt.Errorf("%w: character %q", ErrInvalidWord, word[i])
		}
		score += v
	}
	return score, nil
}
