package signals

import (
	"regexp"
	"sort"

	"github.com/jonathan/resume-optimizer/internal/textutil"
)

// Quantification types
const (
	QuantPercentage = "percentage"
	QuantDollar     = "dollar"
	QuantNumber     = "number"
	QuantRange      = "range"
	QuantMultiplier = "multiplier"
	QuantDuration   = "duration"
)

// minScoredLineLength excludes short noise lines from the quantification score
const minScoredLineLength = 10

// Quantification is one numeric signal found in text
type Quantification struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Position int    `json:"position"`
}

type quantPattern struct {
	kind  string
	regex *regexp.Regexp
}

// quantPatterns are the specific families. Bare numbers are matched separately.
var quantPatterns = []quantPattern{
	{kind: QuantPercentage, regex: regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?(?:%|percent\b)`)},
	{kind: QuantDollar, regex: regexp.MustCompile(`(?i)[$€£]\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:k|m|mm|b|bn|thousand|million|billion)\b)?`)},
	{kind: QuantRange, regex: regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?(?:-|–|to)\s?\d+(?:\.\d+)?\b`)},
	{kind: QuantMultiplier, regex: regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?x\b`)},
	{kind: QuantDuration, regex: regexp.MustCompile(`(?i)\b\d+\+?\s?(?:years?|yrs?|months?|weeks?|days?|hours?|hrs?|minutes?|mins?)\b`)},
}

// bareNumberRegex matches plain and scaled numbers such as "500", "1,200" or "10k"
var bareNumberRegex = regexp.MustCompile(`(?i)\b\d[\d,]*(?:\.\d+)?(?:\s?(?:k|m|b|thousand|million|billion)\b)?\+?`)

// DetectQuantifications returns every quantification in text ordered by start offset.
// A bare number is reported only when no other family already covers it.
func DetectQuantifications(text string) []Quantification {
	var found []Quantification
	var covered [][]int

	for _, p := range quantPatterns {
		for _, loc := range p.regex.FindAllStringIndex(text, -1) {
			found = append(found, Quantification{Type: p.kind, Value: text[loc[0]:loc[1]], Position: loc[0]})
			covered = append(covered, loc)
		}
	}

	for _, loc := range bareNumberRegex.FindAllStringIndex(text, -1) {
		if overlapsAny(loc, covered) {
			continue
		}
		found = append(found, Quantification{Type: QuantNumber, Value: text[loc[0]:loc[1]], Position: loc[0]})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Position < found[j].Position
	})
	return found
}

// HasQuantification reports whether text contains any quantification
func HasQuantification(text string) bool {
	if bareNumberRegex.MatchString(text) {
		return true
	}
	for _, p := range quantPatterns {
		if p.regex.MatchString(text) {
			return true
		}
	}
	return false
}

// QuantificationScore returns the percentage of bullet lines (longer than 10 chars)
// that contain at least one quantification. Empty input scores 0.
func QuantificationScore(text string) float64 {
	total, quantified := 0, 0
	for _, line := range textutil.SplitLines(text) {
		if len(line) <= minScoredLineLength {
			continue
		}
		total++
		if HasQuantification(line) {
			quantified++
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(quantified) / float64(total)
}

func overlapsAny(loc []int, spans [][]int) bool {
	for _, span := range spans {
		if loc[0] < span[1] && span[0] < loc[1] {
			return true
		}
	}
	return false
}
