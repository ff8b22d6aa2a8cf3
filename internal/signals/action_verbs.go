// Package signals provides the action-verb strength and quantification detectors.
package signals

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/textutil"
	"github.com/jonathan/resume-optimizer/internal/vocabulary"
)

const (
	// leadingWordWindow is how many words at the start of a line are inspected for a verb
	leadingWordWindow = 5
	// noVerbsScore is returned when no strong or weak verb was found anywhere
	noVerbsScore = 20.0
)

// ActionVerbAnalysis is the result of scanning text for leading verbs
type ActionVerbAnalysis struct {
	StrongVerbs []string `json:"strong_verbs"`
	WeakVerbs   []string `json:"weak_verbs"`
	StrongCount int      `json:"strong_count"`
	WeakCount   int      `json:"weak_count"`
}

// Score returns strong / (strong + weak) * 100, or 20 when nothing was found
func (a ActionVerbAnalysis) Score() float64 {
	total := a.StrongCount + a.WeakCount
	if total == 0 {
		return noVerbsScore
	}
	return 100 * float64(a.StrongCount) / float64(total)
}

// AnalyzeActionVerbs splits text into bullet lines and classifies each line's opening.
// Each line contributes at most one strong verb and at most one weak phrase.
func AnalyzeActionVerbs(text string) ActionVerbAnalysis {
	var result ActionVerbAnalysis
	for _, line := range textutil.SplitLines(text) {
		words := LeadingWords(line, leadingWordWindow)
		if len(words) == 0 {
			continue
		}
		if verb := firstStrongVerb(words); verb != "" {
			result.StrongVerbs = append(result.StrongVerbs, verb)
			result.StrongCount++
		}
		if phrase := MatchWeakOpener(words); phrase != "" {
			result.WeakVerbs = append(result.WeakVerbs, phrase)
			result.WeakCount++
		}
	}
	return result
}

// LeadingWords returns up to n lowercase words from the start of a line,
// with any bullet marker removed and surrounding punctuation trimmed.
func LeadingWords(line string, n int) []string {
	_, rest := textutil.StripBullet(line)
	var words []string
	for _, field := range strings.Fields(strings.ToLower(rest)) {
		word := strings.Trim(field, ".,!?;:()[]\"'")
		if word == "" {
			continue
		}
		words = append(words, word)
		if len(words) == n {
			break
		}
	}
	return words
}

// MatchWeakOpener returns the weak phrase that the given leading words start with, or "".
// Multi-word phrases are tried before single words.
func MatchWeakOpener(words []string) string {
	opening := strings.Join(words, " ")
	for _, phrase := range vocabulary.WeakPhrases() {
		if opening == phrase || strings.HasPrefix(opening, phrase+" ") {
			return phrase
		}
	}
	return ""
}

// firstStrongVerb returns the first word in the window that is a strong verb
func firstStrongVerb(words []string) string {
	for _, word := range words {
		if vocabulary.IsStrongVerb(word) {
			return word
		}
	}
	return ""
}
