package wordcount

import (
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"spaces only", "   \n\t ", 0},
		{"simple", "today was a good day", 5},
		{"punctuation tokens ignored", "well - I guess ... fine", 4},
		{"newlines and tabs", "one\ntwo\tthree  four", 4},
		{"ideographic space", "alpha　beta", 2},
		{"zero width joiner does not split", "co​ffee time", 2},
		{"digits count", "ran 5 km", 3},
		{"fullwidth folds", "ｈｅｌｌｏ world", 2},
		{"invalid utf8 dropped", "ok \xff\xfe fine", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Count(tc.in); got != tc.want {
				t.Fatalf("Count(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestCount_Boundary80(t *testing.T) {
	t.Parallel()

	text := strings.TrimSpace(strings.Repeat("word ", 80))
	if got := Count(text); got != 80 {
		t.Fatalf("Count = %d, want 80", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	in := "ｆｕｌｌ‍width"
	once := Normalize(in)
	if twice := Normalize(once); twice != once {
		t.Fatalf("Normalize not idempotent: %q vs %q", once, twice)
	}
}
