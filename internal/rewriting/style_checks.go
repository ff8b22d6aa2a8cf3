package rewriting

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/vocabulary"
)

// verbSuffixes are endings that make an unknown first word plausibly a verb
var verbSuffixes = []string{"ified", "ized", "ated", "ing", "ed"}

// startsWithActionVerb checks if text starts with a strong action verb
func startsWithActionVerb(text string) bool {
	// Get first word
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return false
	}

	firstWord := strings.TrimRight(words[0], ".,!?;:")

	// Check if it's in our strong verb list
	if vocabulary.IsStrongVerb(firstWord) {
		return true
	}

	// Verb-like endings count if the stem is long enough to be a real word
	for _, suffix := range verbSuffixes {
		if strings.HasSuffix(firstWord, suffix) && len(firstWord) > len(suffix)+2 {
			return true
		}
	}

	return false
}

// lowerFirst lowercases the first letter of text unless the first word looks
// like an acronym or proper noun ("AWS", "GraphQL", "iOS").
func lowerFirst(text string) string {
	if text == "" {
		return text
	}
	first := strings.Fields(text)[0]
	upper := 0
	for _, r := range first {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if upper > 1 || (upper == 1 && !unicode.IsUpper([]rune(first)[0])) {
		return text
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToLower(r)) + text[size:]
}
