// Package rewriting provides rule-based rewriting of weak bullet points into strong action statements.
package rewriting

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/random"
	"github.com/jonathan/resume-optimizer/internal/signals"
	"github.com/jonathan/resume-optimizer/internal/textutil"
	"github.com/jonathan/resume-optimizer/internal/vocabulary"
)

// noChangesReason is reported when a bullet is left untouched
const noChangesReason = "No changes needed"

// Result holds the outcome of rewriting one bullet
type Result struct {
	Original  string `json:"original"`
	Rewritten string `json:"rewritten"`
	Changed   bool   `json:"changed"`
	Reason    string `json:"reason"`
}

// Rewriter swaps weak openers for context-selected strong verbs
type Rewriter struct {
	rng      random.Source
	families []vocabulary.ContextFamily
	general  []string
}

// NewRewriter creates a Rewriter drawing verbs from rng. A nil rng uses the process source.
func NewRewriter(rng random.Source) *Rewriter {
	if rng == nil {
		rng = random.Default()
	}
	return &Rewriter{
		rng:      rng,
		families: vocabulary.ContextFamilies(),
		general:  vocabulary.GeneralVerbs(),
	}
}

// Rewrite rewrites a single bullet. Any leading bullet marker is preserved.
// context is optional text (typically the posting) used for verb selection.
func (r *Rewriter) Rewrite(bullet, context string) Result {
	result := Result{Original: bullet, Rewritten: bullet, Reason: noChangesReason}

	marker, rest := textutil.StripBullet(bullet)
	text := strings.TrimSpace(rest)
	if text == "" {
		return result
	}

	var reasons []string

	if phrase := signals.MatchWeakOpener(signals.LeadingWords(text, 5)); phrase != "" {
		verb := random.Pick(r.rng, r.CandidateVerbs(text, context))
		if strings.Contains(phrase, " ") {
			text = replaceLeadingPhrase(text, phrase, verb)
			reasons = append(reasons, fmt.Sprintf("Replaced weak phrase '%s' with '%s'", phrase, verb))
		} else {
			text = replaceFirstWord(text, verb)
			reasons = append(reasons, fmt.Sprintf("Replaced weak verb '%s' with '%s'", phrase, verb))
		}
	}

	if !startsWithActionVerb(text) {
		verb := random.Pick(r.rng, r.CandidateVerbs(text, context))
		text = verb + " " + lowerFirst(text)
		reasons = append(reasons, fmt.Sprintf("Added strong action verb '%s'", verb))
	}

	if len(reasons) == 0 {
		return result
	}

	result.Rewritten = marker + text
	result.Changed = result.Rewritten != bullet
	result.Reason = strings.Join(reasons, "; ")
	return result
}

// CandidateVerbs returns the verbs a rewrite may choose from: the verbs of the
// first context family with a keyword hit, else the general-purpose list.
func (r *Rewriter) CandidateVerbs(bullet, context string) []string {
	tokens := keywords.Tokenize(bullet + " " + context)
	for _, family := range r.families {
		if familyMatches(family, tokens) {
			return family.Verbs
		}
	}
	return r.general
}

// familyMatches reports whether any token starts with one of the family keywords
func familyMatches(family vocabulary.ContextFamily, tokens []string) bool {
	for _, kw := range family.Keywords {
		for _, token := range tokens {
			if strings.HasPrefix(token, kw) {
				return true
			}
		}
	}
	return false
}

// replaceLeadingPhrase swaps a multi-word weak phrase at the start of text for verb
func replaceLeadingPhrase(text, phrase, verb string) string {
	parts := strings.Fields(phrase)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	re := regexp.MustCompile(`(?i)^` + strings.Join(parts, `[\s[:punct:]]+`) + `\b[\s:,-]*`)
	rest := re.ReplaceAllString(text, "")
	if rest == text {
		return replaceFirstWord(text, verb)
	}
	if rest == "" {
		return verb
	}
	return verb + " " + rest
}

// replaceFirstWord swaps the first whitespace-delimited word of text for verb
func replaceFirstWord(text, verb string) string {
	idx := strings.IndexFunc(text, func(r rune) bool { return r == ' ' || r == '\t' })
	if idx < 0 {
		return verb
	}
	return verb + text[idx:]
}
