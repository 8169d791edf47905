// Package wordcount counts words in reflection text
// Text is NFKC normalized and stripped of format characters before splitting on unicode
// whitespace; a token counts as a word when it holds at least one letter or digit
package wordcount

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // zero width joiners and friends
		)
	},
}

// Normalize applies the counting pipeline without splitting
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return ns
}

// Count returns the number of words in s
func Count(s string) int {
	n := 0
	for _, tok := range strings.FieldsFunc(Normalize(s), unicode.IsSpace) {
		if hasWordRune(tok) {
			n++
		}
	}
	return n
}

func hasWordRune(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
