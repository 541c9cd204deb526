package board

import (
	"crypto/rand"
	"math/big"
)

// Letters is the weighted pool board characters are drawn from. Vowels and
// common consonants appear more than once so boards lean toward playable
// letter frequencies.
const Letters = "aabcdeeefghiijklmnoopqrstuuvwxyz"

// Size is the number of characters in a board string (4x4 grid).
const Size = 16

// Generate returns a random board string. Every position is an independent
// draw from the weighted pool, repeats allowed. Both players of a challenge
// receive the same string, so this is the only shared state of a match.
func Generate() string {
	max := big.NewInt(int64(len(Letters)))
	buf := make([]byte, Size)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// the platform random source is gone, nothing sane to do
			panic(err)
		}
		buf[i] = Letters[n.Int64()]
	}
	return string(buf)
}
