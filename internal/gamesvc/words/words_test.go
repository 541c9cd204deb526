package words

import "testing"

func TestIsWord(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	if Count() == 0 {
		t.Fatal("dictionary is empty after Init()")
	}

	cases := []struct {
		candidate string
		want      bool
	}{
		{"cat", true},
		{"quiz", true},
		{"QUIZ", true},  // lookups are case-insensitive
		{" cat ", true}, // surrounding whitespace is trimmed
		{"zzzzzz", false},
		{"", false},
		{"notawordxq", false},
	}

	for _, tc := range cases {
		if got := IsWord(tc.candidate); got != tc.want {
			t.Errorf("IsWord(%q) = %v, want %v", tc.candidate, got, tc.want)
		}
	}
}
