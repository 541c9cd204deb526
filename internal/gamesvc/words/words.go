// Package words holds the dictionary every scored submission is checked
// against. The list is embedded so the service runs with no external files;
// WORDS_FILE overrides it with one word per line.
//
// Lookups are lowercase: candidates are trimmed and lowercased before the
// set is consulted, so "QUIZ" and "quiz" are the same word.
package words

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed dictionary.txt
var embedded string

var (
	initOnce sync.Once
	set      map[string]struct{}
	initErr  error
)

// Init loads the dictionary exactly once. Safe to call from every service
// start path; later calls return the first outcome.
func Init() error {
	initOnce.Do(func() {
		var r io.Reader = strings.NewReader(embedded)

		if path := os.Getenv("WORDS_FILE"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				initErr = err
				return
			}
			defer f.Close()
			r = f
		}

		s := make(map[string]struct{})
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			w := strings.ToLower(strings.TrimSpace(sc.Text()))
			if w == "" || strings.HasPrefix(w, "#") {
				continue
			}
			s[w] = struct{}{}
		}
		if err := sc.Err(); err != nil {
			initErr = err
			return
		}
		set = s
	})
	return initErr
}

// IsWord reports whether the candidate is in the dictionary.
func IsWord(candidate string) bool {
	w := strings.ToLower(strings.TrimSpace(candidate))
	_, ok := set[w]
	return ok
}

// Count returns the number of loaded words.
func Count() int {
	return len(set)
}
