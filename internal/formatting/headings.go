package formatting

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/vocabulary"
)

// headingRegex matches a whole line holding a known heading, optionally prefixed
// by a bullet or markdown marker and optionally followed by a colon.
var headingRegex = buildHeadingRegex()

func buildHeadingRegex() *regexp.Regexp {
	synonyms := vocabulary.HeadingSynonyms()
	alternation := make([]string, len(synonyms))
	for i, s := range synonyms {
		alternation[i] = strings.ReplaceAll(regexp.QuoteMeta(s), " ", `[ \t]+`)
	}
	return regexp.MustCompile(`(?im)^[ \t]*(?:[#•●▪►*\-]+[ \t]*)?(` + strings.Join(alternation, "|") + `)[ \t]*:?[ \t]*$`)
}

// headingMatch is one heading line found in text
type headingMatch struct {
	start, end int
	line       string
	canonical  string
}

// findHeadings returns every heading line in text
func findHeadings(text string) []headingMatch {
	var matches []headingMatch
	for _, loc := range headingRegex.FindAllStringSubmatchIndex(text, -1) {
		name := strings.Join(strings.Fields(strings.ToLower(text[loc[2]:loc[3]])), " ")
		canonical, ok := vocabulary.CanonicalHeading(name)
		if !ok {
			continue
		}
		matches = append(matches, headingMatch{start: loc[0], end: loc[1], line: text[loc[0]:loc[1]], canonical: canonical})
	}
	return matches
}

// isCanonicalLine reports whether a heading line is already in "Canonical:" form
func (m headingMatch) isCanonicalLine() bool {
	return m.line == m.canonical+":"
}

// StandardizeHeadings rewrites known section headings to "\n{Canonical}:".
// Lines already in canonical form are left alone.
func StandardizeHeadings(text string) PassResult {
	log := newChangeLog()
	matches := findHeadings(text)

	// apply right-to-left so earlier offsets stay valid
	sort.Slice(matches, func(i, j int) bool { return matches[i].start > matches[j].start })

	result := text
	for _, m := range matches {
		if m.isCanonicalLine() {
			continue
		}
		replacement := "\n" + m.canonical + ":"
		result = result[:m.start] + replacement + result[m.end:]
		log.add(ChangeHeading, strings.TrimSpace(m.line), m.canonical+":", 1)
	}

	return PassResult{Original: text, Result: result, Changes: reverse(log.list())}
}

// reverse restores text order for changes collected right-to-left
func reverse[T any](items []T) []T {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}
