// Package keywords provides lexical keyword extraction and set matching.
package keywords

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-optimizer/internal/vocabulary"
)

// minKeywordRunes is the shortest token kept as a keyword
const minKeywordRunes = 3

// Set is a set of normalized lowercase keywords
type Set map[string]struct{}

// Tokenize lowercases text and splits it into word tokens. Letters and digits
// form words; "+" and "#" are kept so that "c++" and "c#" survive. Everything
// else is treated as a separator. No filtering is applied.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// isKeyword reports whether a token survives stop-word and length filtering
func isKeyword(token string) bool {
	return len([]rune(token)) >= minKeywordRunes && !vocabulary.IsStopWord(token)
}

// Extract returns the deduplicated keyword set of text. Empty input yields an empty set.
func Extract(text string) Set {
	set := make(Set)
	for _, token := range Tokenize(text) {
		if isKeyword(token) {
			set[token] = struct{}{}
		}
	}
	return set
}

// Frequencies counts keyword occurrences in text, using the same filtering as Extract
func Frequencies(text string) map[string]int {
	counts := make(map[string]int)
	for _, token := range Tokenize(text) {
		if isKeyword(token) {
			counts[token]++
		}
	}
	return counts
}

// Contains reports whether kw is in the set
func (s Set) Contains(kw string) bool {
	_, ok := s[kw]
	return ok
}

// Len returns the number of keywords
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the keywords in ascending order
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for kw := range s {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// String returns the canonical text form: sorted keywords joined by single spaces.
// Extract(s.String()) yields a set equal to s.
func (s Set) String() string {
	return strings.Join(s.Sorted(), " ")
}

// Intersect returns keywords present in both sets
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for kw := range s {
		if other.Contains(kw) {
			out[kw] = struct{}{}
		}
	}
	return out
}

// Difference returns keywords in s that are not in other
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for kw := range s {
		if !other.Contains(kw) {
			out[kw] = struct{}{}
		}
	}
	return out
}

// Union returns keywords present in either set
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for kw := range s {
		out[kw] = struct{}{}
	}
	for kw := range other {
		out[kw] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same keywords
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for kw := range s {
		if !other.Contains(kw) {
			return false
		}
	}
	return true
}
